package beam

import (
	"math"

	"github.com/alexiusacademia/rcalc/internal/ec2"
)

// Capacity holds the moment resistance of a provided tension area
type Capacity struct {
	Area             float64 `json:"area"`  // m²
	Alpha            float64 `json:"alpha"` // relative compression zone height
	CompressionDepth float64 `json:"compression_depth"`
	RealT            bool    `json:"real_t"`
	FlangeMoment     float64 `json:"flange_moment"`
	MomentResistance float64 `json:"moment_resistance"` // M_Rd (kNm)
	Utilization      float64 `json:"utilization"`       // M_Ed / M_Rd
	OverReinforced   bool    `json:"over_reinforced"`
}

// Analyze calculates the moment resistance of a given reinforcement area
// with the same stress block as the design. A span section designed as a
// real T keeps the flange overhangs at full stress and checks the web for
// the remainder.
func (s *State) Analyze(area float64) Capacity {
	c := Capacity{Area: area}
	d := s.EffectiveDepth
	force := area * s.Fyd
	limit, _ := ec2.Alpha(ec2.MuLimit)

	if !s.RealT {
		b := s.Width
		if s.Section == Span {
			b = s.FlangeWidth
		}
		c.Alpha = force / (b * d * s.Fcd)
		c.MomentResistance = ec2.MomentRatio(c.Alpha) * b * d * d * s.Fcd
	} else {
		c.RealT = true
		overhang := (s.FlangeWidth - s.Width) * s.FlangeThickness * s.Fcd
		c.FlangeMoment = overhang * (d - s.FlangeThickness/2)
		c.Alpha = math.Max(force-overhang, 0) / (s.Width * d * s.Fcd)
		c.MomentResistance = c.FlangeMoment + ec2.MomentRatio(c.Alpha)*s.Width*d*d*s.Fcd
	}

	c.CompressionDepth = c.Alpha * d
	c.OverReinforced = c.Alpha > limit
	if c.MomentResistance > 0 {
		c.Utilization = s.Moment / c.MomentResistance
	}
	return c
}
