package kundli

// PersonInput identifies one birth instant.
type PersonInput struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}

// Request captures the payload accepted by the kundli matching service.
type Request struct {
	Boy  PersonInput `json:"boy"`
	Girl PersonInput `json:"girl"`
}

// KootaScore is the points value for one compatibility factor.
type KootaScore struct {
	Points    int    `json:"points"`
	MaxPoints int    `json:"max_points"`
	BoySign   string `json:"boy_sign"`
	GirlSign  string `json:"girl_sign"`
}

// Response reports the partial Ashtakoot Milan score. Only two of the eight
// traditional factors are implemented; the percentage is still reported
// against the full 36-point scale, and the factors_* fields make the
// incompleteness visible rather than papering over it.
type Response struct {
	TotalPoints             int                   `json:"total_points"`
	MaximumPoints           int                   `json:"maximum_points"`
	CompatibilityPercentage float64               `json:"compatibility_percentage"`
	FactorsImplemented      int                   `json:"factors_implemented"`
	FactorsTotal            int                   `json:"factors_total"`
	Kootas                  map[string]KootaScore `json:"kootas"`
}

// Config wires runtime defaults for the kundli domain.
type Config struct {
	DefaultTimezone string
}
