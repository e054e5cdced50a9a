package thermo

import "math"

// TEOS-10 constants used by the reduced potential-temperature path.
const (
	sfac = 0.0248826675584615
	cp0  = 3991.86795711963 // J/(kg K)
	t0   = 273.15           // K
	sso  = 35.16504         // Standard Ocean Salinity, g/kg
	ups  = 35.0
)

// Reduced is the reduced TEOS-10 strategy: potential temperature referenced to
// 0 dbar is found with two modified Newton steps on the entropy function and
// conservative temperature is taken equal to it.
type Reduced struct{}

// Name implements Provider.
func (Reduced) Name() string { return StrategyReduced }

// ConservativeTemperature implements Provider.
func (Reduced) ConservativeTemperature(sa, t, p float64) float64 {
	return PotentialTemperature(sa, t, p)
}

// InSituDensity implements Provider.
func (Reduced) InSituDensity(sa, ct, p float64) (float64, error) {
	return Density(sa, ct, p)
}

// ReferenceSalinity implements Provider.
func (Reduced) ReferenceSalinity(sp float64) float64 {
	return ReferenceSalinity(sp)
}

// Approx is the fast strategy: conservative temperature is the polynomial
// first guess of potential temperature, without Newton refinement.
type Approx struct{}

// Name implements Provider.
func (Approx) Name() string { return StrategyApprox }

// ConservativeTemperature implements Provider.
func (Approx) ConservativeTemperature(sa, t, p float64) float64 {
	return pt0Guess(sa, t, p)
}

// InSituDensity implements Provider.
func (Approx) InSituDensity(sa, ct, p float64) (float64, error) {
	return Density(sa, ct, p)
}

// ReferenceSalinity implements Provider.
func (Approx) ReferenceSalinity(sp float64) float64 {
	return ReferenceSalinity(sp)
}

// ReferenceSalinity converts practical salinity to Reference Salinity (g/kg).
func ReferenceSalinity(sp float64) float64 {
	return sp * sso / ups
}

// PracticalSalinity is the inverse of ReferenceSalinity.
func PracticalSalinity(sr float64) float64 {
	return sr * ups / sso
}

// PotentialTemperature returns potential temperature (°C) referenced to 0 dbar.
func PotentialTemperature(sa, t, p float64) float64 {
	pt0 := pt0Guess(sa, t, p)
	dentropyDt := cp0 / ((t0 + pt0) * (1 - 0.05*(1-sa/sso)))
	trueEntropy := entropyPart(sa, t, p)

	for i := 0; i < 2; i++ {
		old := pt0
		dentropy := entropyPart(sa, old, 0) - trueEntropy
		pt0 = old - dentropy/dentropyDt
		mid := 0.5 * (pt0 + old)
		dentropyDt = -gibbsPt0Pt0(sa, mid)
		pt0 = old - dentropy/dentropyDt
	}
	return pt0
}

func pt0Guess(sa, t, p float64) float64 {
	s1 := sa / ups
	return t + p*(8.65483913395442e-6-
		s1*1.41636299744881e-6-
		p*7.38286467135737e-9+
		t*(-8.38241357039698e-6+
			s1*2.83933368585534e-8+
			t*1.77803965218656e-8+
			p*1.71155619208233e-10))
}

// gibbsPt0Pt0 is the second temperature derivative of the Gibbs function at p = 0.
func gibbsPt0Pt0(sa, pt0 float64) float64 {
	x2 := sfac * math.Max(sa, 0)
	x := math.Sqrt(x2)
	y := pt0 * 0.025

	g03 := -24715.571866078 +
		y*(4420.4472249096725+
			y*(-1778.231237203896+
				y*(1160.5182516851419+
					y*(-569.531539542516+y*128.13429152494615))))
	g08 := x2 * (1760.062705994408 +
		x*(-86.1329351956084+
			x*(-137.1145018408982+
				y*(296.20061691375236+
					y*(-205.67709290374563+49.9394019139016*y)))+
			y*(-60.136422517125+y*10.50720794170734)) +
		y*(-1351.605895580406+
			y*(1097.1125373015109+
				y*(-433.20648175062206+63.905091254154904*y))))
	return (g03 + g08) * 0.000625
}

// entropyPart is the part of specific entropy that depends on temperature.
func entropyPart(sa, t, p float64) float64 {
	x2 := sfac * math.Max(sa, 0)
	x := math.Sqrt(x2)
	y := t * 0.025
	z := p * 1e-4

	g03 := z*(-270.983805184062+
		z*(776.153611613101+
			z*(-196.51255088122+
				(28.9796526294175-2.13290083518327*z)*z))) +
		y*(-24715.571866078+
			z*(2910.0729080936+
				z*(-1513.116771538718+
					z*(546.959324647056+
						z*(-111.1208127634436+8.68841343834394*z))))) +
		y*y*(2210.2236124548363+
			z*(-2017.52334943521+
				z*(1498.081172457456+
					z*(-718.6359919632359+
						(146.4037555781616-4.9892131862671505*z)*z)))) +
		y*y*y*(-592.743745734632+
			z*(1591.873781627888+
				z*(-1207.261522487504+
					(608.785486935364-105.4993508931208*z)*z))) +
		y*y*y*y*(290.12956292128547+
			z*(-973.091553087975+
				z*(602.603274510125+
					z*(-276.361526170076+32.40953340386105*z)))) +
		y*y*y*y*y*(-113.90630790850321+
			y*(21.35571525415769-67.41756835751434*z)+
			z*(381.06836198507096+
				z*(-133.7383902842754+49.023632509086724*z)))

	g08 := x2 * (z*(729.116529735046+
		z*(-343.956902961561+
			z*(124.687671116248+
				z*(-31.656964386073+7.04658803315449*z)))) +
		x*(x*(y*(-137.1145018408982+
			y*(148.10030845687618+
				y*(-68.5590309679152+12.4848504784754*y)))-
			22.6683558512829*z)+
			z*(-175.292041186547+
				(83.1923927801819-29.483064349429*z)*z)+
			y*(-86.1329351956084+
				z*(766.116132004952+
					z*(-108.3834525034224+51.2796974779828*z))+
				y*(-30.0682112585625-1380.9597954037708*z+
					y*(3.50240264723578+938.26075044542*z)))) +
		y*(1760.062705994408+
			y*(-675.802947790203+
				y*(365.7041791005036+
					y*(-108.30162043765552+12.78101825083098*y)+
					z*(-1190.914967948748+
						(298.904564555024-145.9491676006352*z)*z))+
				z*(2082.7344423998043+
					z*(-614.668925894709+
						(340.685093521782-33.3848202979239*z)*z)))+
			z*(-1721.528607567954+
				z*(674.819060538734+
					z*(-356.629112415276+
						(88.4080716616-15.84003094423364*z)*z)))))

	return -(g03 + g08) * 0.025
}
