package thermo

import "math"

// Density returns in-situ seawater density (kg/m³) from Absolute Salinity
// (g/kg), Conservative Temperature (°C) and sea pressure (dbar).
//
// It evaluates the UNESCO 1981 equation of state with its secant bulk
// modulus. Salinity is taken on the practical scale, temperature on IPTS-68
// and pressure in bar.
func Density(sa, ct, p float64) (float64, error) {
	s := math.Max(PracticalSalinity(sa), 0)
	t := 1.00024 * ct
	pbar := p / 10

	rho0 := densityAtSurface(s, t)
	k := secantBulkModulus(s, t, pbar)
	rho := rho0 / (1 - pbar/k)
	if math.IsNaN(rho) || math.IsInf(rho, 0) || rho <= 0 {
		return 0, ErrDensityUndefined
	}
	return rho, nil
}

func pureWaterDensity(t float64) float64 {
	return 999.842594 +
		t*(6.793952e-2+
			t*(-9.095290e-3+
				t*(1.001685e-4+
					t*(-1.120083e-6+
						t*6.536332e-9))))
}

func densityAtSurface(s, t float64) float64 {
	s15 := s * math.Sqrt(s)
	return pureWaterDensity(t) +
		s*(0.824493+t*(-4.0899e-3+t*(7.6438e-5+t*(-8.2467e-7+t*5.3875e-9)))) +
		s15*(-5.72466e-3+t*(1.0227e-4-t*1.6546e-6)) +
		4.8314e-4*s*s
}

func secantBulkModulus(s, t, p float64) float64 {
	s15 := s * math.Sqrt(s)

	kw := 19652.21 + t*(148.4206+t*(-2.327105+t*(1.360477e-2-t*5.155288e-5)))
	aw := 3.239908 + t*(1.43713e-3+t*(1.16092e-4-t*5.77905e-7))
	bw := 8.50935e-5 + t*(-6.12293e-6+t*5.2787e-8)

	k0 := kw +
		s*(54.6746+t*(-0.603459+t*(1.09987e-2-t*6.1670e-5))) +
		s15*(7.944e-2+t*(1.6483e-2-t*5.3009e-4))
	a := aw + s*(2.2838e-3+t*(-1.0981e-5-t*1.6078e-6)) + 1.91075e-4*s15
	b := bw + s*(-9.9348e-7+t*(2.0816e-8+t*9.1697e-10))

	return k0 + p*(a+p*b)
}
