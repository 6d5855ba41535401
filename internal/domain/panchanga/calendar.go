package panchanga

import (
	"fmt"

	apperrors "github.com/vedicastro/panchanga-api/pkg/errors"
)

var rashiNames = [12]string{
	"Mesha", "Vrishabha", "Mithuna", "Karka",
	"Simha", "Kanya", "Tula", "Vrishchika",
	"Dhanu", "Makara", "Kumbha", "Meena",
}

// The fifteen tithi names repeat across both pakshas; index 15 and 30 share
// the final table entry.
var tithiNames = [15]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
}

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira",
	"Ardra", "Punarvasu", "Pushya", "Ashlesha", "Magha",
	"Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati",
	"Vishakha", "Anuradha", "Jyeshtha", "Mula", "Purva Ashadha",
	"Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// Vimshottari lords cycle three times over the 27 mansions.
var nakshatraLords = [9]string{
	"Ketu", "Shukra", "Ravi", "Chandra", "Mangal",
	"Rahu", "Guru", "Shani", "Budha",
}

var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarman", "Dhriti", "Shula", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

// Ten-entry cyclic karana table indexed by index mod 10. The traditional
// scheme has 11 fixed karanas plus a 7-entry repeating cycle; this table
// undercounts it on purpose and must not be silently corrected.
var karanaNames = [10]string{
	"Kimstughna", "Bava", "Balava", "Kaulava", "Taitila",
	"Garija", "Vanija", "Vishti", "Shakuni", "Chatushpada",
}

// SignIndex returns the zodiac sign index 0..11 for a longitude.
func SignIndex(lon float64) int {
	return int(NormalizeDegrees(lon) / 30)
}

// RashiFromLongitude places a longitude within a zodiac sign.
func RashiFromLongitude(lon float64) (RashiResult, error) {
	norm := NormalizeDegrees(lon)
	idx := int(norm / 30)
	if idx < 0 || idx >= len(rashiNames) {
		return RashiResult{}, apperrors.Wrap(apperrors.CodeComputationError,
			fmt.Sprintf("rashi index %d out of range for longitude %f", idx, lon), nil)
	}
	return RashiResult{
		Rashi:     rashiNames[idx],
		Degree:    norm - float64(idx)*30,
		Longitude: norm,
	}, nil
}

// KetuLongitude derives Ketu from Rahu; the two nodes sit 180 degrees apart.
func KetuLongitude(rahuLon float64) float64 {
	return NormalizeDegrees(rahuLon + 180)
}

// TithiFromLongitudes derives the lunar day from the Moon-Sun elongation:
// one tithi per 12 degrees, waxing through index 15, waning after. The index
// increments as soon as a 12-degree boundary is passed, so the paksha flips
// exactly at 180 degrees.
func TithiFromLongitudes(sunLon, moonLon float64) (TithiResult, error) {
	diff := elongation(sunLon, moonLon)
	index := int(diff/12) + 1
	if index > 30 {
		index = 30
	}
	paksha := "Shukla"
	if index > 15 {
		paksha = "Krishna"
	}
	nameIdx := (index - 1) % 15
	if nameIdx < 0 || nameIdx >= len(tithiNames) {
		return TithiResult{}, apperrors.Wrap(apperrors.CodeComputationError,
			fmt.Sprintf("tithi name index %d out of range", nameIdx), nil)
	}
	return TithiResult{
		Index:   index,
		Name:    tithiNames[nameIdx],
		Paksha:  paksha,
		Degrees: diff - float64(index-1)*12,
	}, nil
}

// NakshatraFromLongitude divides the ecliptic into 27 equal mansions tracked
// by the Moon alone.
func NakshatraFromLongitude(moonLon float64) (NakshatraResult, error) {
	segment := NormalizeDegrees(moonLon) * 27 / 360
	idx := int(segment)
	if idx < 0 || idx >= len(nakshatraNames) {
		return NakshatraResult{}, apperrors.Wrap(apperrors.CodeComputationError,
			fmt.Sprintf("nakshatra index %d out of range for longitude %f", idx, moonLon), nil)
	}
	return NakshatraResult{
		Index:   idx + 1,
		Name:    nakshatraNames[idx],
		Lord:    nakshatraLords[idx%len(nakshatraLords)],
		Degrees: (segment - float64(idx)) * 360 / 27,
	}, nil
}

// YogaFromLongitudes applies the same segment math as Nakshatra to the summed
// Sun and Moon longitudes.
func YogaFromLongitudes(sunLon, moonLon float64) (YogaResult, error) {
	sum := NormalizeDegrees(sunLon + moonLon)
	segment := sum * 27 / 360
	idx := int(segment)
	if idx < 0 || idx >= len(yogaNames) {
		return YogaResult{}, apperrors.Wrap(apperrors.CodeComputationError,
			fmt.Sprintf("yoga index %d out of range", idx), nil)
	}
	return YogaResult{
		Index:   idx + 1,
		Name:    yogaNames[idx],
		Degrees: (segment - float64(idx)) * 360 / 27,
	}, nil
}

// KaranaFromLongitudes derives the half-tithi division: the same elongation
// as Tithi divided by 6, named from the cyclic ten-entry table.
func KaranaFromLongitudes(sunLon, moonLon float64) (KaranaResult, error) {
	diff := elongation(sunLon, moonLon)
	index := int(diff/6) + 1
	if index > 60 {
		index = 60
	}
	nameIdx := index % 10
	if nameIdx < 0 || nameIdx >= len(karanaNames) {
		return KaranaResult{}, apperrors.Wrap(apperrors.CodeComputationError,
			fmt.Sprintf("karana name index %d out of range", nameIdx), nil)
	}
	return KaranaResult{
		Index:   index,
		Name:    karanaNames[nameIdx],
		Degrees: diff - float64(index-1)*6,
	}, nil
}
