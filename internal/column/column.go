// Package column designs symmetrically reinforced rectangular columns
// under eccentric compression.
package column

import (
	"math"

	"github.com/alexiusacademia/rcalc/internal/design"
	"github.com/alexiusacademia/rcalc/internal/ec2"
	"github.com/alexiusacademia/rcalc/internal/rebar"
)

const (
	// Limiting normalised moment of the compression zone
	limitMoment = 0.371

	// Minimum eccentricity: max(h/30, 20 mm) (Section 6.1(4))
	minEccentricityRatio = 30.0
	minEccentricity      = 0.02

	// Minimum longitudinal reinforcement (Section 9.5.2(2))
	minRatioGross = 0.002
	minRatioForce = 0.1

	// Maximum longitudinal reinforcement (Section 9.5.2(3))
	maxRatioGross = 0.04
)

// Position labels of the two reinforced faces
const (
	FaceTension     = "face 1"
	FaceCompression = "face 2"
)

// Params is the column input record (boundary units)
type Params struct {
	// Geometry (cm); bars are placed along Width, bending acts over Height
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`

	// Reinforcement (mm)
	Cover           float64 `json:"cover" yaml:"cover"`
	StirrupDiameter float64 `json:"stirrup_diameter" yaml:"stirrup_diameter"`
	BarDiameter     float64 `json:"bar_diameter" yaml:"bar_diameter"`

	// Loading
	AxialForce float64 `json:"axial_force" yaml:"axial_force"` // N_Ed, compression positive (kN)
	Moment     float64 `json:"moment" yaml:"moment"`           // M_Ed (kNm)

	// Materials
	ConcreteClass string `json:"concrete_class" yaml:"concrete_class"`
	SteelGrade    string `json:"steel_grade" yaml:"steel_grade"`
	ExposureClass string `json:"exposure_class" yaml:"exposure_class"`
}

// Validate checks the column input
func (p Params) Validate() error {
	err := design.First(
		design.Positive("width", p.Width),
		design.Positive("height", p.Height),
		design.Positive("cover", p.Cover),
		design.NonNegative("stirrup_diameter", p.StirrupDiameter),
		design.Positive("bar_diameter", p.BarDiameter),
		design.NonNegative("axial_force", p.AxialForce),
		design.NonNegative("moment", p.Moment),
		design.Materials(p.ConcreteClass, p.SteelGrade, p.ExposureClass),
	)
	if err != nil {
		return err
	}
	if p.Height*10 <= 2*(p.Cover+p.StirrupDiameter+p.BarDiameter/2) {
		return design.Invalidf("height", "leaves no room between the reinforced faces")
	}
	return nil
}

// State holds every intermediate value of a column design (m, kN, kPa)
type State struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Cover          float64 `json:"cover"`
	Stirrup        float64 `json:"stirrup_diameter"`
	Bar            float64 `json:"bar_diameter"`
	A              float64 `json:"a"` // distance from face to bar centroid
	EffectiveDepth float64 `json:"effective_depth"`
	Delta          float64 `json:"delta"`

	Fcd float64 `json:"fcd"`
	Fyd float64 `json:"fyd"`

	AxialForce     float64 `json:"axial_force"`
	AppliedMoment  float64 `json:"applied_moment"`
	MinMoment      float64 `json:"min_moment"`
	Moment         float64 `json:"moment"`
	MomentIncrease bool    `json:"moment_increased"`

	NEd       float64 `json:"n_ed"`
	MEd       float64 `json:"m_ed"`
	MEd1      float64 `json:"m_ed_1"`
	AlphaMin  float64 `json:"alpha_min"`
	Threshold float64 `json:"threshold"`

	Alpha1       float64 `json:"alpha_1"`
	Alpha2       float64 `json:"alpha_2"`
	Xi           float64 `json:"xi"`
	Discriminant float64 `json:"discriminant"`
	Fallback     bool    `json:"fallback"`

	MinArea       float64 `json:"min_area"`
	MaxArea       float64 `json:"max_area"`
	RequiredArea1 float64 `json:"required_area_1"`
	RequiredArea2 float64 `json:"required_area_2"`
	Redistributed bool    `json:"redistributed"`

	NominalCover ec2.CoverResult `json:"nominal_cover"`
}

// compressionZone solves 0.973 - sqrt(0.947 - 1.95 m) for the relative
// compression zone; ok is false when the discriminant is negative
func compressionZone(m float64) (xi, disc float64, ok bool) {
	disc = 0.947 - 1.95*m
	if disc < 0 {
		return 0, disc, false
	}
	return 0.973 - math.Sqrt(disc), disc, true
}

// NewState converts the input to metres and applies the minimum
// eccentricity
func NewState(p Params, concrete ec2.Concrete, steel ec2.Steel) *State {
	s := &State{
		Width:         p.Width / 100,
		Height:        p.Height / 100,
		Cover:         p.Cover / 1000,
		Stirrup:       p.StirrupDiameter / 1000,
		Bar:           p.BarDiameter / 1000,
		AxialForce:    p.AxialForce,
		AppliedMoment: p.Moment,
		Fcd:           concrete.Fcd(),
		Fyd:           steel.FydKPa(),
	}
	s.A = s.Cover + s.Stirrup + s.Bar/2
	s.EffectiveDepth = s.Height - s.A
	s.Delta = s.A / s.EffectiveDepth

	s.MinMoment = s.AxialForce * math.Max(s.Height/minEccentricityRatio, minEccentricity)
	s.Moment = s.AppliedMoment
	if s.Moment < s.MinMoment {
		s.Moment = s.MinMoment
		s.MomentIncrease = true
	}

	s.MinArea = math.Max(minRatioGross*s.Width*s.Height, minRatioForce*s.AxialForce/s.Fyd)
	s.MaxArea = maxRatioGross * s.Width * s.Height
	return s
}

// Design calculates the reinforcement of both column faces
func Design(p Params) (*design.Result, error) {
	faces := []string{FaceTension, FaceCompression}
	if err := p.Validate(); err != nil {
		res := design.Invalid(faces, err)
		return &res, nil
	}

	concrete, steel, err := ec2.Properties(ec2.Column, p.ConcreteClass, p.SteelGrade)
	if err != nil {
		return nil, err
	}

	s := NewState(p, concrete, steel)
	res := &design.Result{State: s}
	res.SetCheck(design.CheckInput, true)

	if p.ExposureClass != "" {
		cover, remarks, err := ec2.NominalCover(p.ExposureClass, concrete, ec2.Column, s.Bar, s.Cover)
		if err != nil {
			return nil, err
		}
		s.NominalCover = cover
		res.Remarks = append(res.Remarks, remarks...)
	}

	if s.MomentIncrease {
		res.Remark("Moment %.2f kNm raised to %.2f kNm for minimum eccentricity %.1f cm",
			s.AppliedMoment, s.Moment, math.Max(s.Height/minEccentricityRatio, minEccentricity)*100)
	}

	s.solve()
	s.faceAreas()
	if s.Redistributed {
		res.Remark("Face areas raised to at least half the code minimum (%.2f cm²)", s.MinArea/2*1e4)
	}

	areas := []float64{s.RequiredArea1, s.RequiredArea2}
	allFound := true
	for i, face := range faces {
		required := design.Float(areas[i])
		layout, found := rebar.SelectBarLayout(areas[i], s.MinArea/2, s.MaxArea/2, s.Bar, s.Stirrup, s.Width, s.Cover)
		if !found {
			allFound = false
			res.Remark("No bar layout of ø%.0f satisfies %s (%.2f cm² required, limits %.2f-%.2f cm²), redesign the section",
				p.BarDiameter, face, areas[i]*1e4, s.MinArea/2*1e4, s.MaxArea/2*1e4)
			res.AddPosition(face, required, nil, nil)
			continue
		}
		res.AddPosition(face, required, design.Float(layout.Area), design.FromBars(layout))
	}
	res.SetCheck(design.CheckLayout, allFound)
	return res, nil
}

// solve finds the normalised reinforcement of both faces
func (s *State) solve() {
	b, d := s.Width, s.EffectiveDepth

	s.NEd = s.AxialForce / (b * d * s.Fcd)
	s.MEd = s.Moment / (b * d * d * s.Fcd)
	// Moment about the tension reinforcement
	s.MEd1 = s.MEd + s.NEd*(1-s.Delta)/2

	s.AlphaMin = math.Max(minRatioGross*(1+s.Delta)*s.Fyd/s.Fcd, minRatioForce*s.NEd)
	s.Threshold = limitMoment/(1-s.Delta) + s.AlphaMin

	if s.MEd1 > s.Threshold {
		// Compression reinforcement needed beyond the minimum
		s.Alpha2 = (s.MEd1 - limitMoment) / (1 - s.Delta)
		s.Xi, s.Discriminant, _ = compressionZone(limitMoment)
		s.Alpha1 = s.Xi + s.Alpha2 - s.NEd
		return
	}

	s.Alpha2 = s.AlphaMin
	xi, disc, ok := compressionZone(s.MEd1)
	s.Discriminant = disc
	if !ok {
		// Symmetric minimum reinforcement suffices
		s.Fallback = true
		s.Alpha1 = s.AlphaMin
		return
	}
	s.Xi = xi
	// Negative under high axial force; faceAreas restores the minimum
	s.Alpha1 = s.Xi + s.Alpha2 - s.NEd
}

// faceAreas converts the normalised values to areas. When their sum is
// below the code minimum, each face is raised to at least half of it.
func (s *State) faceAreas() {
	unit := s.Width * s.EffectiveDepth * s.Fcd / s.Fyd
	s.RequiredArea1 = s.Alpha1 * unit
	s.RequiredArea2 = s.Alpha2 * unit

	if s.RequiredArea1+s.RequiredArea2 >= s.MinArea {
		return
	}
	s.Redistributed = true
	half := s.MinArea / 2
	s.RequiredArea1 = math.Max(s.RequiredArea1, half)
	s.RequiredArea2 = math.Max(s.RequiredArea2, half)
}
