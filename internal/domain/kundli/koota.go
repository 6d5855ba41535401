package kundli

// Varna classes by sign index (0=Mesha..11=Meena). Higher value ranks higher
// in the classical ordering Brahmin > Kshatriya > Vaishya > Shudra.
const (
	varnaShudra = iota
	varnaVaishya
	varnaKshatriya
	varnaBrahmin
)

var varnaBySign = [12]int{
	varnaKshatriya, // Mesha
	varnaVaishya,   // Vrishabha
	varnaShudra,    // Mithuna
	varnaBrahmin,   // Karka
	varnaKshatriya, // Simha
	varnaVaishya,   // Kanya
	varnaShudra,    // Tula
	varnaBrahmin,   // Vrishchika
	varnaKshatriya, // Dhanu
	varnaVaishya,   // Makara
	varnaShudra,    // Kumbha
	varnaBrahmin,   // Meena
}

// Vashya categories, whole-sign approximation of the classical groupings.
const (
	vashyaQuadruped = iota
	vashyaHuman
	vashyaWater
	vashyaWild
	vashyaInsect
)

var vashyaBySign = [12]int{
	vashyaQuadruped, // Mesha
	vashyaQuadruped, // Vrishabha
	vashyaHuman,     // Mithuna
	vashyaWater,     // Karka
	vashyaWild,      // Simha
	vashyaHuman,     // Kanya
	vashyaHuman,     // Tula
	vashyaInsect,    // Vrishchika
	vashyaHuman,     // Dhanu
	vashyaWater,     // Makara
	vashyaHuman,     // Kumbha
	vashyaWater,     // Meena
}

// humans hold sway over quadrupeds and water signs in the classical scheme.
var vashyaControls = map[int][]int{
	vashyaHuman: {vashyaQuadruped, vashyaWater},
	vashyaWild:  {vashyaQuadruped},
}

const (
	varnaMaxPoints  = 1
	vashyaMaxPoints = 2
)

// varnaKoota scores social-class compatibility: full marks when the boy's
// varna ranks at or above the girl's.
func varnaKoota(boySign, girlSign int) int {
	if varnaBySign[boySign] >= varnaBySign[girlSign] {
		return varnaMaxPoints
	}
	return 0
}

// vashyaKoota scores dominance compatibility: full marks for a shared
// category, one point when either category holds sway over the other.
func vashyaKoota(boySign, girlSign int) int {
	boyGroup := vashyaBySign[boySign]
	girlGroup := vashyaBySign[girlSign]
	if boyGroup == girlGroup {
		return vashyaMaxPoints
	}
	if controls(boyGroup, girlGroup) || controls(girlGroup, boyGroup) {
		return 1
	}
	return 0
}

func controls(ruler, subject int) bool {
	for _, controlled := range vashyaControls[ruler] {
		if controlled == subject {
			return true
		}
	}
	return false
}
