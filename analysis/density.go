package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DensityPoint is one evaluation of the smoothed deviation distribution.
type DensityPoint struct {
	X       float64 `json:"x"`
	Density float64 `json:"density"`
}

// densityResolution is the number of points a curve is evaluated at.
const densityResolution = 80

// EstimateDensity fits a Gaussian kernel density estimate to the press
// deviations of hit notes and evaluates it across the profile's whole
// timing range, -miss to +miss inclusive. The bandwidth follows
// Silverman's rule with a 1ms floor, so a cluster of near-identical
// deviations still comes out as a curve instead of a spike. With no
// hit notes in the view there is no distribution and the result is nil.
func EstimateDensity(samples []TimingSample, p Profile) []DensityPoint {
	var devs []float64
	for _, s := range samples {
		if !s.NeverHit {
			devs = append(devs, s.Deviation)
		}
	}
	if len(devs) == 0 {
		return nil
	}

	n := float64(len(devs))
	h := max(1, 1.06*stat.PopStdDev(devs, nil)*math.Pow(n, -0.2))
	kernel := distuv.Normal{Mu: 0, Sigma: h}

	w := p.MissWindow()
	out := make([]DensityPoint, densityResolution)
	for i := 0; i < densityResolution; i++ {
		x := -w + 2*w*float64(i)/(densityResolution-1)
		sum := 0.0
		for _, d := range devs {
			sum += kernel.Prob(x - d)
		}
		out[i] = DensityPoint{X: x, Density: sum / n}
	}
	return out
}
