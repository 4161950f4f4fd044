package beam

import (
	"github.com/alexiusacademia/rcalc/internal/design"
	"github.com/alexiusacademia/rcalc/internal/ec2"
)

// designSpan sizes the bottom reinforcement of a T-section. When the
// compression zone stays in the flange the section is an apparent T and
// is designed as a rectangle of flange width. Otherwise the moment is
// split into the part carried by the flange overhangs and the residual
// carried by the web.
func (s *State) designSpan(res *design.Result) bool {
	d := s.EffectiveDepth

	s.Mu = ec2.NormalizedMoment(s.Moment, s.FlangeWidth, d, s.Fcd)
	s.MuCorrect = s.Mu <= ec2.MuLimit
	res.SetCheck(design.CheckMu, s.MuCorrect)
	if !s.MuCorrect {
		res.Remark("mu = %.4f exceeds the limit %.3f, section capacity exceeded - increase the section", s.Mu, ec2.MuLimit)
		return false
	}

	s.Alpha1, _ = ec2.Alpha(s.Mu)
	s.NeutralAxis = s.Alpha1 * d

	if s.NeutralAxis <= s.FlangeThickness {
		// Apparent T
		s.RequiredArea = max(s.Alpha1*s.FlangeWidth*d*s.Fcd/s.Fyd, s.MinArea)
		res.Remark("Apparent T-section: compression zone %.1f cm within flange %.1f cm",
			s.NeutralAxis*100, s.FlangeThickness*100)
		return true
	}

	// Real T: flange overhangs first
	s.RealT = true
	overhang := (s.FlangeWidth - s.Width) * s.FlangeThickness
	s.FlangeMoment = overhang * s.Fcd * (d - s.FlangeThickness/2)
	s.FlangeArea = overhang * s.Fcd / s.Fyd

	// Residual moment on the web
	s.WebMoment = s.Moment - s.FlangeMoment
	if s.WebMoment > 0 {
		s.Mu2 = ec2.NormalizedMoment(s.WebMoment, s.Width, d, s.Fcd)
	}
	s.Mu2Correct = s.Mu2 <= ec2.MuLimit
	res.SetCheck(design.CheckMu2, s.Mu2Correct)
	if !s.Mu2Correct {
		res.Remark("mu2 = %.4f of the web exceeds the limit %.3f, section capacity exceeded - increase the section", s.Mu2, ec2.MuLimit)
		return false
	}

	if s.WebMoment > 0 {
		s.Alpha2, _ = ec2.Alpha(s.Mu2)
		s.WebArea = max(s.Alpha2*s.Width*d*s.Fcd/s.Fyd, 0)
	}

	s.RequiredArea = max(s.FlangeArea+s.WebArea, s.MinArea)
	res.Remark("Real T-section: compression zone %.1f cm below flange %.1f cm",
		s.NeutralAxis*100, s.FlangeThickness*100)
	return true
}
