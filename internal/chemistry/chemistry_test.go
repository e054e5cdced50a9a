package chemistry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/salinity-service/internal/domain/model"
)

func sampleIons() model.IonMeasurement {
	return model.IonMeasurement{
		Na: 11980, Ca: 357, Mg: 1246, K: 464, Sr: 6.96, Br: 73.2,
		Cl: model.Float(19570), F: model.Float(1.14), S: 814, B: 5.57,
	}
}

func TestMolPerL(t *testing.T) {
	tests := []struct {
		name      string
		mgL       float64
		molarMass float64
		expected  float64
	}{
		{"sodium", 22989.76928, MolarMassNa, 1},
		{"negative mass clamped", -10, MolarMassNa, 0},
		{"zero molar mass guarded", 1, 0, 1e-3 / Tiny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, MolPerL(tt.mgL, tt.molarMass), tt.expected*1e-12+1e-15)
		})
	}
}

func TestReferenceTable(t *testing.T) {
	table := ReferenceTable()
	require.Len(t, table, 10)
	assert.Equal(t, "Cl", table[0].Symbol)
	assert.Equal(t, Boron, table[9].Ion)

	// The returned slice is a copy.
	table[0].MmolPerKg = 0
	assert.Equal(t, 545.8696, Reference(Chloride).MmolPerKg)

	assert.Equal(t, "Na", Sodium.String())
	assert.Equal(t, "unknown", Ion(42).String())
}

func TestSumRefGkg(t *testing.T) {
	var expected float64
	for _, r := range ReferenceTable() {
		expected += r.GramsPerKg()
	}
	assert.InDelta(t, expected, SumRefGkg(), 1e-12)
	assert.InDelta(t, 35.02, SumRefGkg(), 0.01)
}

func TestBoronPartition(t *testing.T) {
	tests := []struct {
		name     string
		bMgL     float64
		fraction float64
	}{
		{"default fraction", 5.57, BorateFractionDefault},
		{"all boric acid", 5.57, 0},
		{"all borate", 4.4, 1},
		{"fraction clamped high", 4.4, 1.7},
		{"fraction clamped low", 4.4, -0.3},
		{"large boron", 1e4, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boric, borate := BoronPartition(tt.bMgL, tt.fraction)
			total := MolPerL(tt.bMgL, MolarMassB)
			assert.InDelta(t, total, boric+borate, total*1e-12)
			assert.GreaterOrEqual(t, boric, 0.0)
			assert.GreaterOrEqual(t, borate, 0.0)
		})
	}

	t.Run("non-positive boron yields zeros", func(t *testing.T) {
		boric, borate := BoronPartition(0, 0.2)
		assert.Zero(t, boric)
		assert.Zero(t, borate)
		boric, borate = BoronPartition(-1, 0.2)
		assert.Zero(t, boric)
		assert.Zero(t, borate)
	})
}

func TestAlkalinitySpecies(t *testing.T) {
	t.Run("zero alkalinity", func(t *testing.T) {
		hco3, co3, oh, mass := AlkalinitySpecies(0, nil)
		assert.Zero(t, hco3)
		assert.Zero(t, co3)
		assert.Zero(t, oh)
		assert.Zero(t, mass)
	})

	t.Run("negative alkalinity", func(t *testing.T) {
		hco3, co3, oh, mass := AlkalinitySpecies(-3, nil)
		assert.Zero(t, hco3+co3+oh+mass)
	})

	for _, dkh := range []float64{0.5, 6.2, 8, 12.3} {
		hco3, co3, oh, mass := AlkalinitySpecies(dkh, nil)
		require.Greater(t, oh, 0.0)
		assert.InDelta(t, 89.0, hco3/oh, 1e-9)
		assert.InDelta(t, 5.0, co3/oh, 1e-9)
		assert.InDelta(t, dkh*DKHToMeqL*MgPerMeqAsCaCO3, mass, 1e-9)
	}

	t.Run("mg per meq override", func(t *testing.T) {
		_, _, _, mass := AlkalinitySpecies(8, model.Float(61.0168))
		assert.InDelta(t, 8*DKHToMeqL*61.0168, mass, 1e-9)
	})

	t.Run("explicit zero mg per meq keeps species but no mass", func(t *testing.T) {
		hco3, _, _, mass := AlkalinitySpecies(8, model.Float(0))
		assert.Greater(t, hco3, 0.0)
		assert.Zero(t, mass)
	})

	t.Run("negative mg per meq counts as zero", func(t *testing.T) {
		_, _, _, mass := AlkalinitySpecies(8, model.Float(-5))
		assert.Zero(t, mass)
	})
}

func TestSpeciate(t *testing.T) {
	assumptions := model.DefaultAssumptions()
	calc := model.NewCalculation(sampleIons(), assumptions)

	sp := Speciate(calc)
	boric, borate := BoronPartition(5.57, BorateFractionDefault)
	assert.Equal(t, boric, sp.BoricAcid)
	assert.Equal(t, borate, sp.Borate)
	assert.Greater(t, sp.AlkMassMgL, 0.0)

	assumptions.AssumeBorate = false
	noBorate := Speciate(model.NewCalculation(sampleIons(), assumptions))
	assert.Zero(t, noBorate.Borate)

	assumptions.Alkalinity = nil
	noAlk := Speciate(model.NewCalculation(sampleIons(), assumptions))
	assert.Zero(t, noAlk.AlkMassMgL)
	assert.Zero(t, noAlk.Bicarbonate)
}

func TestChargeBalanceChlorideMgL_NonNegative(t *testing.T) {
	tests := []struct {
		name string
		ions model.IonMeasurement
	}{
		{"empty sample", model.IonMeasurement{}},
		{"anion heavy", model.IonMeasurement{S: 5000, Br: 2000}},
		{"seawater", sampleIons()},
		{"only sodium", model.IonMeasurement{Na: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := Speciate(model.NewCalculation(tt.ions, model.DefaultAssumptions()))
			assert.GreaterOrEqual(t, ChargeBalanceChlorideMgL(tt.ions, 1.296, sp), 0.0)
			assert.GreaterOrEqual(t, EstimateChlorideMgL(tt.ions, 1.296, sp), 0.0)
		})
	}
}

func TestChargeBalanceChlorideMgL_Monotonic(t *testing.T) {
	base := sampleIons()
	base.Cl = nil
	sp := Speciate(model.NewCalculation(base, model.DefaultAssumptions()))
	baseline := ChargeBalanceChlorideMgL(base, 1.14, sp)

	bumps := map[string]func(*model.IonMeasurement){
		"Na": func(m *model.IonMeasurement) { m.Na += 500 },
		"Mg": func(m *model.IonMeasurement) { m.Mg += 100 },
		"Ca": func(m *model.IonMeasurement) { m.Ca += 50 },
		"K":  func(m *model.IonMeasurement) { m.K += 40 },
		"Sr": func(m *model.IonMeasurement) { m.Sr += 5 },
	}

	for name, bump := range bumps {
		t.Run(name, func(t *testing.T) {
			ions := base
			bump(&ions)
			assert.GreaterOrEqual(t, ChargeBalanceChlorideMgL(ions, 1.14, sp), baseline)
		})
	}
}

func TestRatioChlorideMol(t *testing.T) {
	t.Run("no species", func(t *testing.T) {
		mol, ok := RatioChlorideMol(model.IonMeasurement{})
		assert.False(t, ok)
		assert.Zero(t, mol)
	})

	t.Run("exact reference proportions recover chloride", func(t *testing.T) {
		// 1 kg-ish of reference seawater expressed per litre.
		ions := model.IonMeasurement{
			Na: Reference(Sodium).GramsPerKg() * 1000,
			Mg: Reference(Magnesium).GramsPerKg() * 1000,
			Ca: Reference(Calcium).GramsPerKg() * 1000,
			K:  Reference(Potassium).GramsPerKg() * 1000,
			Sr: Reference(Strontium).GramsPerKg() * 1000,
			Br: Reference(Bromide).GramsPerKg() * 1000,
			S:  Reference(Sulfate).MmolPerKg * MolarMassS,
		}
		mol, ok := RatioChlorideMol(ions)
		require.True(t, ok)
		assert.InDelta(t, Reference(Chloride).MmolPerKg/1000, mol, 1e-9)
	})
}

func TestEstimateChloride_Blend(t *testing.T) {
	t.Run("falls back to charge balance without ratio species", func(t *testing.T) {
		est := EstimateChloride(model.IonMeasurement{}, 0, model.Speciation{})
		assert.False(t, est.RatioAvailable)
		assert.Equal(t, est.ChargeBalance, est.Blended)
	})

	t.Run("ratio only when charge balance underestimates", func(t *testing.T) {
		// Heavy sulfate drags the charge balance to zero.
		ions := model.IonMeasurement{Na: 10000, S: 20000}
		est := EstimateChloride(ions, 0, model.Speciation{})
		require.True(t, est.RatioAvailable)
		assert.Zero(t, est.ChargeBalance)
		assert.Equal(t, est.Ratio, est.Blended)
	})

	t.Run("sixty forty blend otherwise", func(t *testing.T) {
		ions := sampleIons()
		ions.Cl = nil
		sp := Speciate(model.NewCalculation(ions, model.DefaultAssumptions()))
		est := EstimateChloride(ions, 1.14, sp)
		require.True(t, est.RatioAvailable)
		require.GreaterOrEqual(t, est.ChargeBalance, 0.8*est.Ratio)
		assert.InDelta(t, 0.6*est.ChargeBalance+0.4*est.Ratio, est.Blended, 1e-15)
	})
}

func TestEstimateChlorideMgL_SeawaterRange(t *testing.T) {
	ions := sampleIons()
	ions.Cl = nil
	calc := model.NewCalculation(ions, model.DefaultAssumptions())
	sp := Speciate(calc)

	cl := EstimateChlorideMgL(calc.Ions, calc.FluorideMgL(), sp)
	assert.GreaterOrEqual(t, cl, 18000.0)
	assert.LessOrEqual(t, cl, 23000.0)
}

func TestReferenceTotalGkg(t *testing.T) {
	bMolKg := Reference(Boron).MmolPerKg / 1000

	t.Run("no borate no alkalinity", func(t *testing.T) {
		expected := SumRefGkg() - bMolKg*MolarMassB + bMolKg*MolarMassBoric
		assert.InDelta(t, expected, ReferenceTotalGkg(0, false, nil, nil), 1e-12)
	})

	t.Run("borate override ignored when borate not assumed", func(t *testing.T) {
		assert.Equal(t, ReferenceTotalGkg(0, false, nil, nil), ReferenceTotalGkg(0, false, model.Float(0.9), nil))
	})

	t.Run("default borate fraction", func(t *testing.T) {
		expected := SumRefGkg() - bMolKg*MolarMassB +
			0.2*bMolKg*MolarMassBorate + 0.8*bMolKg*MolarMassBoric
		assert.InDelta(t, expected, ReferenceTotalGkg(0, true, nil, nil), 1e-12)
	})

	t.Run("reference alkalinity adds mass", func(t *testing.T) {
		base := ReferenceTotalGkg(0, true, nil, nil)
		withAlk := ReferenceTotalGkg(8, true, nil, nil)
		assert.InDelta(t, 8*DKHToMeqL*MgPerMeqAsCaCO3/1000, withAlk-base, 1e-12)
	})

	t.Run("assumptions helper", func(t *testing.T) {
		a := model.DefaultAssumptions()
		assert.Equal(t, ReferenceTotalGkg(8, true, nil, nil), ReferenceTotalFor(a))
		a.RefAlkDKH = nil
		assert.Equal(t, ReferenceTotalGkg(0, true, nil, nil), ReferenceTotalFor(a))
	})
}

func TestMassBudget(t *testing.T) {
	calc := model.NewCalculation(sampleIons(), model.DefaultAssumptions())
	sp := Speciate(calc)

	rows := MassBudget(calc, sp, 19570)
	require.Len(t, rows, 12)
	assert.Equal(t, LabelNa, rows[0].Species)
	assert.Equal(t, LabelCl, rows[11].Species)
	assert.InDelta(t, 814/MolarMassS*MolarMassSO4, rows[6].Value, 1e-9)

	boronMass := rows[9].Value/MolarMassBoric + rows[10].Value/MolarMassBorate
	assert.InDelta(t, 5.57/MolarMassB, boronMass, 1e-9)

	total := TotalGramsPerL(rows)
	assert.InDelta(t, 36.3, total, 0.2)
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 35.1235, RoundTo(35.123456, 4))
	assert.Equal(t, 35.0, RoundTo(34.99999, 3))
	assert.True(t, math.IsNaN(RoundTo(math.NaN(), 4)))
}
