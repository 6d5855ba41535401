package panchanga

import "context"

// JulianDay is a floating point instant in the UT Julian Day convention. The
// fractional-day component carries hours and minutes only; seconds are dropped.
type JulianDay float64

// Body identifies a planetary point queried from the ephemeris. Ketu has no
// independent ephemeris entry: it is always derived as Rahu + 180 degrees.
type Body string

const (
	BodySun     Body = "Sun"
	BodyMoon    Body = "Moon"
	BodyMars    Body = "Mars"
	BodyMercury Body = "Mercury"
	BodyJupiter Body = "Jupiter"
	BodyVenus   Body = "Venus"
	BodySaturn  Body = "Saturn"
	BodyRahu    Body = "Rahu"
	BodyKetu    Body = "Ketu"
)

// RiseSetKind selects which horizon event a rise/set lookup resolves.
type RiseSetKind string

const (
	KindRise RiseSetKind = "rise"
	KindSet  RiseSetKind = "set"
)

// EclipticPosition is the longitude/latitude/distance triple returned by the
// ephemeris for one body at one instant.
type EclipticPosition struct {
	Longitude float64
	Latitude  float64
	Distance  float64
}

// Ephemeris is the contract the calendrical pipeline depends on. Longitudes
// are sidereal (Lahiri) for every body; mixing reference frames within one
// computation would corrupt every derived quantity. Implementations must be
// safe for concurrent read-only use.
type Ephemeris interface {
	// Longitude returns the sidereal position of body at jd.
	Longitude(ctx context.Context, jd JulianDay, body Body) (EclipticPosition, error)
	// RiseSet returns the first rise or set instant of body at or after jd for
	// the given observer, or nil when no event occurs (circumpolar case).
	RiseSet(ctx context.Context, jd JulianDay, body Body, lat, lon float64, kind RiseSetKind) (*JulianDay, error)
	// Ascendant returns the sidereal longitude of the first Placidus house
	// cusp at jd for the given observer.
	Ascendant(ctx context.Context, jd JulianDay, lat, lon float64) (float64, error)
}

// Request captures the payload accepted by the panchanga service.
type Request struct {
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Timezone string   `json:"timezone"`
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
}

// RashiResult places a longitude within one of the twelve zodiac signs.
type RashiResult struct {
	Rashi     string  `json:"rashi"`
	Degree    float64 `json:"degree"`
	Longitude float64 `json:"longitude"`
}

// TithiResult is the lunar day derived from the Moon-Sun elongation.
type TithiResult struct {
	Index   int     `json:"index"`
	Name    string  `json:"name"`
	Paksha  string  `json:"paksha"`
	Degrees float64 `json:"degrees_elapsed"`
}

// NakshatraResult is the lunar mansion the Moon occupies.
type NakshatraResult struct {
	Index   int     `json:"index"`
	Name    string  `json:"name"`
	Lord    string  `json:"lord"`
	Degrees float64 `json:"degrees_elapsed"`
}

// YogaResult is the luni-solar combination from the summed longitudes.
type YogaResult struct {
	Index   int     `json:"index"`
	Name    string  `json:"name"`
	Degrees float64 `json:"degrees_elapsed"`
}

// KaranaResult is the half-tithi division.
type KaranaResult struct {
	Index   int     `json:"index"`
	Name    string  `json:"name"`
	Degrees float64 `json:"degrees_elapsed"`
}

// Window bounds one auspicious or inauspicious period, formatted in the
// request timezone.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MuhurtaTimings groups the daytime windows derived from sunrise and sunset.
type MuhurtaTimings struct {
	Abhijit    Window `json:"abhijit"`
	RahuKaal   Window `json:"rahu_kaal"`
	GulikaKaal Window `json:"gulika_kaal"`
}

// DishaShoolResult names the direction to avoid for the weekday.
type DishaShoolResult struct {
	Direction string `json:"direction"`
	Remedy    string `json:"remedy"`
	Duration  string `json:"duration"`
}

// Timings carries nullable rise/set instants for one body.
type Timings struct {
	Rise *string `json:"rise"`
	Set  *string `json:"set"`
}

// Response is serialized back to API consumers.
type Response struct {
	Date        string                 `json:"date"`
	Day         string                 `json:"day"`
	BirthChart  map[string]RashiResult `json:"birth_chart"`
	Tithi       TithiResult            `json:"tithi"`
	Nakshatra   NakshatraResult        `json:"nakshatra"`
	Yoga        YogaResult             `json:"yoga"`
	Karana      KaranaResult           `json:"karana"`
	Muhurta     *MuhurtaTimings        `json:"muhurta"`
	DishaShool  DishaShoolResult       `json:"disha_shool"`
	SunTimings  Timings                `json:"sun_timings"`
	MoonTimings Timings                `json:"moon_timings"`
}

// Config wires runtime defaults for the panchanga domain.
type Config struct {
	DefaultTimezone  string
	DefaultLatitude  float64
	DefaultLongitude float64
}
