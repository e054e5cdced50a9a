package chemistry

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/guttosm/salinity-service/internal/domain/model"
)

// ReferenceTotalGkg is the reference dissolved-solids total (g/kg) on the same
// species basis as a measured sample: elemental boron is replaced by boric
// acid and borate masses and the reference alkalinity mass is added.
//
// refAlkDKH <= 0 adds no alkalinity. borateFraction overrides the default
// fraction when assumeBorate is set; a nil alkMgPerMeq selects CaCO3.
func ReferenceTotalGkg(refAlkDKH float64, assumeBorate bool, borateFraction *float64, alkMgPerMeq *float64) float64 {
	bMolKg := reference[Boron].MmolPerKg / 1000
	alpha := EffectiveBorateFraction(assumeBorate, borateFraction)
	borate := alpha * bMolKg
	boric := bMolKg - borate

	elementGkg := bMolKg * MolarMassB
	speciesGkg := borate*MolarMassBorate + boric*MolarMassBoric

	var alkGkg float64
	if refAlkDKH > 0 {
		_, _, _, massMgL := AlkalinitySpecies(refAlkDKH, alkMgPerMeq)
		alkGkg = massMgL / 1000
	}
	return SumRefGkg() - elementGkg + speciesGkg + alkGkg
}

// ReferenceTotalFor applies ReferenceTotalGkg to a set of assumptions.
func ReferenceTotalFor(a model.Assumptions) float64 {
	var refAlk float64
	if a.RefAlkDKH != nil {
		refAlk = *a.RefAlkDKH
	}
	return ReferenceTotalGkg(refAlk, a.AssumeBorate, a.BorateFraction, a.AlkMgPerMeq)
}

// Species labels of the mass budget, in reporting order.
const (
	LabelNa     = "Na+"
	LabelCa     = "Ca2+"
	LabelMg     = "Mg2+"
	LabelK      = "K+"
	LabelSr     = "Sr2+"
	LabelBr     = "Br-"
	LabelSO4    = "SO4^2-"
	LabelF      = "F-"
	LabelAlk    = "Alk."
	LabelBoric  = "B(OH)3"
	LabelBorate = "B(OH)4-"
	LabelCl     = "Cl-"
)

// MassBudget lists every measured species' mass concentration in mg/L, with
// boron expressed as its species and sulfur as sulfate.
func MassBudget(calc model.Calculation, sp model.Speciation, chlorideMgL float64) []model.ComponentRow {
	ions := calc.Ions
	return []model.ComponentRow{
		{Species: LabelNa, Value: math.Max(ions.Na, 0)},
		{Species: LabelCa, Value: math.Max(ions.Ca, 0)},
		{Species: LabelMg, Value: math.Max(ions.Mg, 0)},
		{Species: LabelK, Value: math.Max(ions.K, 0)},
		{Species: LabelSr, Value: math.Max(ions.Sr, 0)},
		{Species: LabelBr, Value: math.Max(ions.Br, 0)},
		{Species: LabelSO4, Value: SulfateMgL(ions.S)},
		{Species: LabelF, Value: math.Max(calc.FluorideMgL(), 0)},
		{Species: LabelAlk, Value: sp.AlkMassMgL},
		{Species: LabelBoric, Value: sp.BoricAcid * MolarMassBoric * 1000},
		{Species: LabelBorate, Value: sp.Borate * MolarMassBorate * 1000},
		{Species: LabelCl, Value: math.Max(chlorideMgL, 0)},
	}
}

// TotalGramsPerL sums a mass budget and returns g/L.
func TotalGramsPerL(rows []model.ComponentRow) float64 {
	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = r.Value
	}
	return floats.Sum(values) / 1000
}
