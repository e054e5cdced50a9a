package chemistry

import (
	"math"

	"github.com/guttosm/salinity-service/internal/domain/model"
)

// BoronPartition splits total boron (mg/L as B) into boric acid and borate
// moles (mol/L). The fraction is clamped to [0, 1]; non-positive boron yields zeros.
func BoronPartition(bMgL, borateFraction float64) (boric, borate float64) {
	if bMgL <= 0 {
		return 0, 0
	}
	total := MolPerL(bMgL, MolarMassB)
	borate = clampFraction(borateFraction) * total
	return total - borate, borate
}

// AlkalinitySpecies converts alkalinity in dKH into bicarbonate, carbonate
// and hydroxide moles (mol/L) plus the equivalent alkalinity mass in mg/L.
// A nil mgPerMeq selects the CaCO3 equivalent mass; an explicit value is used
// as given, with negative or NaN values counting as zero mass.
func AlkalinitySpecies(alkDKH float64, mgPerMeq *float64) (hco3, co3, oh, massMgL float64) {
	if alkDKH <= 0 || math.IsNaN(alkDKH) {
		return 0, 0, 0, 0
	}
	perMeq := MgPerMeqAsCaCO3
	if mgPerMeq != nil {
		perMeq = *mgPerMeq
		if perMeq < 0 || math.IsNaN(perMeq) {
			perMeq = 0
		}
	}
	meqL := alkDKH * DKHToMeqL
	eqL := meqL / 1000

	hco3 = AlkFractionHCO3 * eqL
	co3 = AlkFractionCO3 * eqL / 2
	oh = AlkFractionOH * eqL
	return hco3, co3, oh, meqL * perMeq
}

// EffectiveBorateFraction is the borate fraction applied under the given policy.
func EffectiveBorateFraction(assumeBorate bool, override *float64) float64 {
	if !assumeBorate {
		return 0
	}
	if override != nil {
		return clampFraction(*override)
	}
	return BorateFractionDefault
}

// Speciate derives the boron and alkalinity species of a calculation.
func Speciate(calc model.Calculation) model.Speciation {
	a := calc.Assumptions
	boric, borate := BoronPartition(calc.Ions.B, EffectiveBorateFraction(a.AssumeBorate, a.BorateFraction))
	hco3, co3, oh, mass := AlkalinitySpecies(calc.AlkalinityDKH(), a.AlkMgPerMeq)
	return model.Speciation{
		BoricAcid:   boric,
		Borate:      borate,
		Bicarbonate: hco3,
		Carbonate:   co3,
		Hydroxide:   oh,
		AlkMassMgL:  mass,
	}
}

func clampFraction(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Min(math.Max(f, 0), 1)
}
