// Package model defines the core domain entities for the salinity service.
package model

import (
	"encoding/json"
	"math"
)

// Default values applied to Assumptions when a field is not supplied.
const (
	DefaultTempC           = 20.0
	DefaultPressureDbar    = 0.0
	DefaultAlkalinityDKH   = 8.0
	DefaultRefAlkDKH       = 8.0
	DefaultFluorideMgL     = 1.296
	DefaultSalinityNorm    = 35.0
	RNCompatRefAlkDKH      = 6.2
	DefaultSolverMaxIter   = 30
	DefaultSolverTolerance = 1e-8
)

// IonMeasurement is the measured major-ion composition of a water sample.
// All concentrations are mass concentrations in mg/L. Cl and F are optional;
// a nil Cl is estimated and a nil F falls back to the assumed default.
//
// @Description Measured ion concentrations in mg/L
type IonMeasurement struct {
	Na float64 `json:"na" bson:"na" example:"11980"`
	Ca float64 `json:"ca" bson:"ca" example:"357"`
	Mg float64 `json:"mg" bson:"mg" example:"1246"`
	K  float64 `json:"k" bson:"k" example:"464"`
	Sr float64 `json:"sr" bson:"sr" example:"6.96"`
	Br float64 `json:"br" bson:"br" example:"73.2"`
	// Cl is optional; when nil or non-positive it is estimated.
	Cl *float64 `json:"cl,omitempty" bson:"cl,omitempty" example:"19570"`
	// F is optional; when nil the assumed default fluoride is used.
	F *float64 `json:"f,omitempty" bson:"f,omitempty" example:"1.14"`
	// S is total sulfur as elemental S; it is converted to sulfate.
	S float64 `json:"s" bson:"s" example:"814"`
	B float64 `json:"b" bson:"b" example:"5.57"`
	// AlkDKH is the sample's own total alkalinity in dKH.
	AlkDKH *float64 `json:"alk_dkh,omitempty" bson:"alk_dkh,omitempty"`
} // @name IonMeasurement

// Sanitized returns a copy with every negative or non-finite concentration
// clamped to zero. Optional values stay optional.
func (m IonMeasurement) Sanitized() IonMeasurement {
	out := IonMeasurement{
		Na: nonNegative(m.Na),
		Ca: nonNegative(m.Ca),
		Mg: nonNegative(m.Mg),
		K:  nonNegative(m.K),
		Sr: nonNegative(m.Sr),
		Br: nonNegative(m.Br),
		S:  nonNegative(m.S),
		B:  nonNegative(m.B),
	}
	if m.Cl != nil {
		out.Cl = Float(nonNegative(*m.Cl))
	}
	if m.F != nil {
		out.F = Float(nonNegative(*m.F))
	}
	if m.AlkDKH != nil {
		out.AlkDKH = Float(nonNegative(*m.AlkDKH))
	}
	return out
}

// HasFiniteValues reports whether every supplied concentration is a finite number.
func (m IonMeasurement) HasFiniteValues() bool {
	values := []float64{m.Na, m.Ca, m.Mg, m.K, m.Sr, m.Br, m.S, m.B}
	for _, p := range []*float64{m.Cl, m.F, m.AlkDKH} {
		if p != nil {
			values = append(values, *p)
		}
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MeasuredChloride returns the measured chloride when it is present and positive.
func (m IonMeasurement) MeasuredChloride() (float64, bool) {
	if m.Cl != nil && *m.Cl > 0 {
		return *m.Cl, true
	}
	return 0, false
}

// Assumptions holds the environmental conditions and speciation policy of a calculation.
//
// @Description Calculation assumptions; omitted fields take built-in defaults
type Assumptions struct {
	// Temp is the in-situ temperature in °C.
	Temp float64 `json:"temp" bson:"temp" example:"20"`
	// PressureDbar is the sea pressure in dbar.
	PressureDbar float64 `json:"pressure_dbar" bson:"pressure_dbar" example:"0"`
	// Alkalinity is the sample alkalinity in dKH used when the measurement carries none.
	Alkalinity *float64 `json:"alkalinity" bson:"alkalinity,omitempty" example:"8"`
	// AssumeBorate enables partial conversion of boric acid to borate.
	AssumeBorate bool `json:"assume_borate" bson:"assume_borate" example:"true"`
	// DefaultFMgL is the fluoride fallback in mg/L.
	DefaultFMgL float64 `json:"default_f_mg_l" bson:"default_f_mg_l" example:"1.296"`
	// RefAlkDKH is the alkalinity of the reference composition in dKH.
	RefAlkDKH *float64 `json:"ref_alk_dkh" bson:"ref_alk_dkh,omitempty" example:"8"`
	// SalinityNorm is the practical salinity the component tables are renormalised to.
	SalinityNorm float64 `json:"salinity_norm" bson:"salinity_norm" example:"35"`
	// ReturnComponents requests the per-species breakdown.
	ReturnComponents bool `json:"return_components" bson:"return_components"`
	// BorateFraction overrides the default borate fraction (0.20).
	BorateFraction *float64 `json:"borate_fraction" bson:"borate_fraction,omitempty"`
	// AlkMgPerMeq overrides the CaCO3 mg-per-meq alkalinity mass factor.
	AlkMgPerMeq *float64 `json:"alk_mg_per_meq" bson:"alk_mg_per_meq,omitempty"`
	// RNCompat switches the reference alkalinity to 6.2 dKH when it is unset or left at default.
	RNCompat bool `json:"rn_compat" bson:"rn_compat"`
} // @name Assumptions

// DefaultAssumptions returns the built-in calculation assumptions.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Temp:         DefaultTempC,
		PressureDbar: DefaultPressureDbar,
		Alkalinity:   Float(DefaultAlkalinityDKH),
		AssumeBorate: true,
		DefaultFMgL:  DefaultFluorideMgL,
		RefAlkDKH:    Float(DefaultRefAlkDKH),
		SalinityNorm: DefaultSalinityNorm,
	}
}

// Normalized resolves compatibility switches and returns the effective assumptions.
func (a Assumptions) Normalized() Assumptions {
	if a.RNCompat {
		if a.RefAlkDKH == nil || math.Abs(*a.RefAlkDKH-DefaultRefAlkDKH) < 1e-12 {
			a.RefAlkDKH = Float(RNCompatRefAlkDKH)
		}
	}
	if a.SalinityNorm <= 0 {
		a.SalinityNorm = DefaultSalinityNorm
	}
	return a
}

// Overlay decodes a partial JSON assumptions document on top of a copy of a.
// Fields absent from raw keep the value from a; explicit nulls clear optional fields.
func (a Assumptions) Overlay(raw json.RawMessage) (Assumptions, error) {
	out := a.clone()
	if len(raw) == 0 || string(raw) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return a, err
	}
	return out, nil
}

// clone copies the optional fields so the result never aliases a.
func (a Assumptions) clone() Assumptions {
	out := a
	out.Alkalinity = copyFloat(a.Alkalinity)
	out.RefAlkDKH = copyFloat(a.RefAlkDKH)
	out.BorateFraction = copyFloat(a.BorateFraction)
	out.AlkMgPerMeq = copyFloat(a.AlkMgPerMeq)
	return out
}

// Calculation is an immutable measurement record merged with its configuration.
// Build it with NewCalculation; the zero value is not meaningful.
type Calculation struct {
	Ions        IonMeasurement `json:"inputs"`
	Assumptions Assumptions    `json:"assumptions"`
}

// NewCalculation sanitizes the measurement and normalizes the assumptions.
func NewCalculation(ions IonMeasurement, assumptions Assumptions) Calculation {
	return Calculation{
		Ions:        ions.Sanitized(),
		Assumptions: assumptions.clone().Normalized(),
	}
}

// AlkalinityDKH returns the sample alkalinity: the measured value when present,
// otherwise the assumed one, otherwise zero.
func (c Calculation) AlkalinityDKH() float64 {
	if c.Ions.AlkDKH != nil {
		return *c.Ions.AlkDKH
	}
	if c.Assumptions.Alkalinity != nil {
		return math.Max(*c.Assumptions.Alkalinity, 0)
	}
	return 0
}

// FluorideMgL returns the measured fluoride or the assumed default.
func (c Calculation) FluorideMgL() float64 {
	if c.Ions.F != nil {
		return *c.Ions.F
	}
	return math.Max(c.Assumptions.DefaultFMgL, 0)
}

// Fingerprint returns a stable key identifying the calculation's inputs.
func (c Calculation) Fingerprint() string {
	b, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return string(b)
}

// Speciation holds the molar concentrations (mol/L) of the boron and
// alkalinity species and the alkalinity equivalent mass (mg/L).
type Speciation struct {
	BoricAcid   float64 `json:"boric_acid_mol_l"`
	Borate      float64 `json:"borate_mol_l"`
	Bicarbonate float64 `json:"bicarbonate_mol_l"`
	Carbonate   float64 `json:"carbonate_mol_l"`
	Hydroxide   float64 `json:"hydroxide_mol_l"`
	AlkMassMgL  float64 `json:"alk_mass_mg_l"`
}

// SolverOptions tunes the iterative salinity solver.
type SolverOptions struct {
	MaxIter   int
	Tolerance float64
	// Seed, when set, replaces the SP=35 starting point.
	Seed *SolverState
	// Detailed requests the components breakdown regardless of the assumptions.
	Detailed bool
}

// DefaultSolverOptions returns the solver tuning used for summaries.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIter:   DefaultSolverMaxIter,
		Tolerance: DefaultSolverTolerance,
	}
}

// SolverState is the (SP, SA) pair updated once per solver iteration.
type SolverState struct {
	SP float64 `json:"sp"`
	SA float64 `json:"sa"`
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return Float(*p)
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}
