package model

// ComponentRow is one species line of a components table.
//
// @Description Per-species concentration
// @Example {"species": "Na+", "value": 11980}
type ComponentRow struct {
	// Species is the display label, e.g. "Na+" or "SO4^2-".
	Species string  `json:"species" example:"Na+"`
	Value   float64 `json:"value" example:"11980"`
} // @name ComponentRow

// Components is the per-species breakdown at the converged state, as measured
// and renormalised to the configured salinity norm.
//
// @Description Component tables in mg/L and mg/kg, raw and normalised
type Components struct {
	MgL           []ComponentRow `json:"mg_l"`
	MgKg          []ComponentRow `json:"mg_kg"`
	MgLNorm       []ComponentRow `json:"mg_l_norm"`
	MgKgNorm      []ComponentRow `json:"mg_kg_norm"`
	NormFactor    float64        `json:"norm_factor" example:"0.9943"`
	DensityKgM3   float64        `json:"density_kg_per_m3" example:"1024.9"`
	ReferenceGkg  float64        `json:"reference_total_g_kg" example:"35.1847"`
	MeasuredTotal float64        `json:"measured_total_g_l" example:"36.31"`
} // @name Components

// SalinityResult is the outcome of one solver run.
//
// @Description Salinity solver result
// @Example {"sp": 35.2011, "sa": 35.3678, "density_kg_per_m3": 1024.93, "iterations": 4, "converged": true}
type SalinityResult struct {
	SP          float64 `json:"sp" example:"35.2011"`
	SA          float64 `json:"sa" example:"35.3678"`
	DensityKgM3 float64 `json:"density_kg_per_m3" example:"1024.93"`
	// Iterations is the number of solver passes actually run.
	Iterations int `json:"iterations" example:"4"`
	// Converged is false when the iteration cap was reached first.
	Converged bool `json:"converged" example:"true"`
	// ChlorideMgL is the chloride used, measured or estimated.
	ChlorideMgL       float64     `json:"chloride_mg_l" example:"19570"`
	ChlorideEstimated bool        `json:"chloride_estimated" example:"false"`
	Speciation        Speciation  `json:"speciation"`
	Final             SolverState `json:"-"`
	Components        *Components `json:"components,omitempty"`
} // @name SalinityResult

// CalculationSummary is the compact, flat output of a summary run.
//
// @Description Salinity summary with specific gravities
// @Example {"sp": 35.2011, "sa": 35.3678, "density_kg_per_m3": 1024.93, "sg_20_20": 1.02637, "sg_25_25": 1.02651, "converged": true}
type CalculationSummary struct {
	SP          float64 `json:"sp" bson:"sp" example:"35.2011"`
	SA          float64 `json:"sa" bson:"sa" example:"35.3678"`
	DensityKgM3 float64 `json:"density_kg_per_m3" bson:"density_kg_per_m3" example:"1024.93"`
	SG2020      float64 `json:"sg_20_20" bson:"sg_20_20" example:"1.02637"`
	SG2525      float64 `json:"sg_25_25" bson:"sg_25_25" example:"1.02651"`
	Converged   bool    `json:"converged" bson:"converged" example:"true"`
} // @name CalculationSummary
