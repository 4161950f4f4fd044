package ec2

import "math"

// Rectangular stress block design aids

const (
	// MuLimit is the limiting normalised moment for beams and slabs
	MuLimit = 0.374

	// Ratio limits (Section 9.2.1.1)
	minRatioTension = 0.26
	minRatioAbs     = 0.0013
	maxRatio        = 0.04
)

// NormalizedMoment returns mu = M / (b d² fcd). Inputs in kNm, m, kPa.
func NormalizedMoment(m, b, d, fcd float64) float64 {
	return m / (b * d * d * fcd)
}

// Alpha returns the relative compression zone height for a normalised
// moment, 0.973 - sqrt(0.974 - 1.95 mu). It reports false when the
// discriminant is negative.
func Alpha(mu float64) (float64, bool) {
	disc := 0.974 - 1.95*mu
	if disc < 0 {
		return 0, false
	}
	return 0.973 - math.Sqrt(disc), true
}

// MinFlexuralArea returns max(0.26 fctm/fyk b d, 0.0013 b d) in m²
func MinFlexuralArea(c Concrete, s Steel, b, d float64) float64 {
	return math.Max(minRatioTension*c.Fctm/s.Fyk*b*d, minRatioAbs*b*d)
}

// MaxFlexuralArea returns 0.04 b h in m²
func MaxFlexuralArea(b, h float64) float64 {
	return maxRatio * b * h
}

// MomentRatio inverts Alpha: the normalised moment carried by a relative
// compression zone height. Heights beyond the value reached at MuLimit
// are capped at MuLimit.
func MomentRatio(alpha float64) float64 {
	limit, _ := Alpha(MuLimit)
	if alpha >= limit {
		return MuLimit
	}
	r := 0.973 - alpha
	return (0.974 - r*r) / 1.95
}
