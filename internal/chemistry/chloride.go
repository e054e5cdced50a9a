package chemistry

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/guttosm/salinity-service/internal/domain/model"
)

// Blend thresholds of the chloride estimator.
const (
	chargeUnderestimateRatio = 0.8
	chargeBlendWeight        = 0.6
)

// ChlorideEstimate carries both chloride estimates and their blend, in mol/L.
type ChlorideEstimate struct {
	ChargeBalance float64
	Ratio         float64
	Blended       float64
	// RatioAvailable is false when no measured species had a usable ratio.
	RatioAvailable bool
}

// MgL returns the blended chloride as mg/L.
func (e ChlorideEstimate) MgL() float64 {
	return molToMgL(e.Blended)
}

// ChargeBalanceChlorideMgL treats chloride as the balancing monovalent anion.
// fluorideMgL is the measured or defaulted fluoride. The result is never negative.
func ChargeBalanceChlorideMgL(ions model.IonMeasurement, fluorideMgL float64, sp model.Speciation) float64 {
	return molToMgL(chargeBalanceMol(ions, fluorideMgL, sp))
}

func chargeBalanceMol(ions model.IonMeasurement, fluorideMgL float64, sp model.Speciation) float64 {
	pos := MolPerL(ions.Na, MolarMassNa) +
		2*MolPerL(ions.Mg, MolarMassMg) +
		2*MolPerL(ions.Ca, MolarMassCa) +
		MolPerL(ions.K, MolarMassK) +
		2*MolPerL(ions.Sr, MolarMassSr)

	neg := 2*MolPerL(SulfateMgL(ions.S), MolarMassSO4) +
		MolPerL(ions.Br, MolarMassBr) +
		MolPerL(fluorideMgL, MolarMassF) +
		sp.Borate +
		sp.Bicarbonate + 2*sp.Carbonate + sp.Hydroxide

	return math.Max(pos-neg, 0)
}

// ratioSpecies are the ions with a dependable reference ratio to chloride.
var ratioSpecies = [...]Ion{Sodium, Magnesium, Calcium, Potassium, Strontium, Bromide, Sulfate}

// RatioChlorideMol estimates chloride moles (mol/L) from the reference molar
// ratios of the measured species, weighting each candidate by that species'
// reference abundance. ok is false when no species contributed.
func RatioChlorideMol(ions model.IonMeasurement) (mol float64, ok bool) {
	weights := make([]float64, 0, len(ratioSpecies))
	candidates := make([]float64, 0, len(ratioSpecies))
	for _, ion := range ratioSpecies {
		n := measuredMol(ions, ion)
		r := RatioToChloride(ion)
		w := reference[ion].MmolPerKg
		if w <= 0 || r <= 0 || n <= 0 {
			continue
		}
		weights = append(weights, w)
		candidates = append(candidates, n/r)
	}
	if len(weights) == 0 {
		return 0, false
	}
	return math.Max(floats.Dot(weights, candidates)/floats.Sum(weights), 0), true
}

// EstimateChloride combines the charge-balance and ratio estimates.
// When the charge balance falls below 80% of the ratio estimate the ratio
// estimate is used alone, otherwise they are blended 60/40.
func EstimateChloride(ions model.IonMeasurement, fluorideMgL float64, sp model.Speciation) ChlorideEstimate {
	est := ChlorideEstimate{ChargeBalance: chargeBalanceMol(ions, fluorideMgL, sp)}
	est.Ratio, est.RatioAvailable = RatioChlorideMol(ions)

	switch {
	case !est.RatioAvailable || est.Ratio <= 0:
		est.Blended = est.ChargeBalance
	case est.ChargeBalance < chargeUnderestimateRatio*est.Ratio:
		est.Blended = est.Ratio
	default:
		est.Blended = chargeBlendWeight*est.ChargeBalance + (1-chargeBlendWeight)*est.Ratio
	}
	return est
}

// EstimateChlorideMgL is EstimateChloride reduced to mg/L.
func EstimateChlorideMgL(ions model.IonMeasurement, fluorideMgL float64, sp model.Speciation) float64 {
	return EstimateChloride(ions, fluorideMgL, sp).MgL()
}

func measuredMol(ions model.IonMeasurement, ion Ion) float64 {
	switch ion {
	case Sodium:
		return MolPerL(ions.Na, MolarMassNa)
	case Magnesium:
		return MolPerL(ions.Mg, MolarMassMg)
	case Calcium:
		return MolPerL(ions.Ca, MolarMassCa)
	case Potassium:
		return MolPerL(ions.K, MolarMassK)
	case Strontium:
		return MolPerL(ions.Sr, MolarMassSr)
	case Bromide:
		return MolPerL(ions.Br, MolarMassBr)
	case Sulfate:
		return MolPerL(SulfateMgL(ions.S), MolarMassSO4)
	default:
		return 0
	}
}

func molToMgL(mol float64) float64 {
	return math.Max(mol, 0) * MolarMassCl * 1000
}
