// Package chemistry holds the standard seawater reference composition and the
// pure speciation, chloride and reference-total functions built on it.
//
// Every function here is deterministic and allocation-light; the reference
// table is read-only and safe to share between goroutines.
package chemistry

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SRRef is the Reference Salinity (g/kg) of standard seawater at SP = 35.
const SRRef = 35.16504

// Tiny floors denominators that could otherwise be zero.
const Tiny = 1e-20

// Molar masses in g/mol.
const (
	MolarMassNa     = 22.98976928
	MolarMassCa     = 40.078
	MolarMassMg     = 24.305
	MolarMassK      = 39.0983
	MolarMassSr     = 87.62
	MolarMassBr     = 79.904
	MolarMassCl     = 35.45
	MolarMassF      = 18.998403163
	MolarMassS      = 32.065
	MolarMassSO4    = 96.06
	MolarMassB      = 10.81
	MolarMassBoric  = 61.83 // B(OH)3
	MolarMassBorate = 60.83 // B(OH)4-
)

// Alkalinity and boron speciation parameters.
const (
	AlkFractionHCO3        = 0.89
	AlkFractionCO3         = 0.10
	AlkFractionOH          = 0.01
	BorateFractionDefault  = 0.20
	DKHToMeqL              = 0.357
	MgPerMeqAsCaCO3        = 50.043
	DefaultRefAlkalinityKH = 8.0
)

// Ion identifies one of the ten major ions of the reference composition.
type Ion int

// Reference ions, in table order.
const (
	Chloride Ion = iota
	Sodium
	Sulfate
	Magnesium
	Calcium
	Potassium
	Bromide
	Strontium
	Fluoride
	Boron
	ionCount
)

// ReferenceIon is one row of the reference composition.
type ReferenceIon struct {
	Ion       Ion     `json:"-"`
	Symbol    string  `json:"symbol"`
	MolarMass float64 `json:"molar_mass_g_mol"`
	MmolPerKg float64 `json:"mmol_per_kg"`
}

// GramsPerKg is the ion's contribution to the reference total in g/kg.
func (r ReferenceIon) GramsPerKg() float64 {
	return r.MmolPerKg * r.MolarMass / 1000
}

var reference = [ionCount]ReferenceIon{
	Chloride:  {Chloride, "Cl", MolarMassCl, 545.8696},
	Sodium:    {Sodium, "Na", MolarMassNa, 468.9674},
	Sulfate:   {Sulfate, "SO4", MolarMassSO4, 28.2359},
	Magnesium: {Magnesium, "Mg", MolarMassMg, 52.8116},
	Calcium:   {Calcium, "Ca", MolarMassCa, 10.2821},
	Potassium: {Potassium, "K", MolarMassK, 10.2070},
	Bromide:   {Bromide, "Br", MolarMassBr, 0.8434},
	Strontium: {Strontium, "Sr", MolarMassSr, 0.0906},
	Fluoride:  {Fluoride, "F", MolarMassF, 0.0680},
	Boron:     {Boron, "B", MolarMassB, 0.4160},
}

// Reference returns the reference row for ion.
func Reference(ion Ion) ReferenceIon {
	return reference[ion]
}

// ReferenceTable returns a copy of the full reference composition.
func ReferenceTable() []ReferenceIon {
	out := make([]ReferenceIon, len(reference))
	copy(out, reference[:])
	return out
}

// String returns the ion's chemical symbol.
func (i Ion) String() string {
	if i < 0 || i >= ionCount {
		return "unknown"
	}
	return reference[i].Symbol
}

// SumRefGkg is the total mass of the ten reference ions in g/kg.
func SumRefGkg() float64 {
	mmol := make([]float64, ionCount)
	mass := make([]float64, ionCount)
	for i, r := range reference {
		mmol[i] = r.MmolPerKg
		mass[i] = r.MolarMass
	}
	return floats.Dot(mmol, mass) / 1000
}

// RatioToChloride is the reference molar ratio of ion to chloride.
func RatioToChloride(ion Ion) float64 {
	return reference[ion].MmolPerKg / reference[Chloride].MmolPerKg
}

// MolPerL converts a mass concentration in mg/L to mol/L.
// Negative masses count as zero.
func MolPerL(mgL, molarMass float64) float64 {
	return math.Max(mgL, 0) / 1000 / math.Max(molarMass, Tiny)
}

// SulfateMgL converts elemental sulfur (mg/L as S) to sulfate mg/L.
func SulfateMgL(sMgL float64) float64 {
	return math.Max(sMgL/MolarMassS*MolarMassSO4, 0)
}

// RoundTo rounds x to the given number of decimal digits.
func RoundTo(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(x*p) / p
}
