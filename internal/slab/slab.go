// Package slab designs one-way and two-way slab strips per metre width.
package slab

import (
	"math"

	"github.com/alexiusacademia/rcalc/internal/design"
	"github.com/alexiusacademia/rcalc/internal/ec2"
	"github.com/alexiusacademia/rcalc/internal/rebar"
)

const (
	// Design strip width (m)
	stripWidth = 1.0

	// Secondary reinforcement share of the main reinforcement (Section 9.3.1.1(2))
	distributionShare = 0.2

	// Maximum bar spacing (Section 9.3.1.1(3)), as multiples of h and absolute (m)
	maxSpacingMainRatio      = 3.0
	maxSpacingMain           = 0.400
	maxSpacingSecondaryRatio = 3.5
	maxSpacingSecondary      = 0.450
)

// Position labels of the two bar directions
const (
	DirectionMain      = "main"
	DirectionSecondary = "secondary"
)

// Params is the slab input record (boundary units)
type Params struct {
	Thickness float64 `json:"thickness" yaml:"thickness"` // h (cm)

	// Reinforcement (mm)
	Cover       float64 `json:"cover" yaml:"cover"`
	BarDiameter float64 `json:"bar_diameter" yaml:"bar_diameter"`

	// Loading per metre width (kNm/m)
	Moment          float64 `json:"moment" yaml:"moment"`
	SecondaryMoment float64 `json:"secondary_moment" yaml:"secondary_moment"`

	// Materials
	ConcreteClass string `json:"concrete_class" yaml:"concrete_class"`
	SteelGrade    string `json:"steel_grade" yaml:"steel_grade"`
	ExposureClass string `json:"exposure_class" yaml:"exposure_class"`
}

// Validate checks the slab input
func (p Params) Validate() error {
	err := design.First(
		design.Positive("thickness", p.Thickness),
		design.Positive("cover", p.Cover),
		design.Positive("bar_diameter", p.BarDiameter),
		design.NonNegative("moment", p.Moment),
		design.NonNegative("secondary_moment", p.SecondaryMoment),
		design.Materials(p.ConcreteClass, p.SteelGrade, p.ExposureClass),
	)
	if err != nil {
		return err
	}
	if p.Thickness*10 <= p.Cover+1.5*p.BarDiameter {
		return design.Invalidf("thickness", "leaves no effective depth for two bar layers")
	}
	return nil
}

// Direction holds the flexural values of one bar direction
type Direction struct {
	Moment         float64 `json:"moment"`
	EffectiveDepth float64 `json:"effective_depth"`
	MinArea        float64 `json:"min_area"`
	MaxArea        float64 `json:"max_area"`
	Mu             float64 `json:"mu"`
	MuCorrect      bool    `json:"mu_correct"`
	Alpha1         float64 `json:"alpha_1"`
	RequiredArea   float64 `json:"required_area"`
	MaxSpacing     float64 `json:"max_spacing"`
}

// State holds every intermediate value of a slab design (m, kN, kPa)
type State struct {
	Thickness float64 `json:"thickness"`
	Cover     float64 `json:"cover"`
	Bar       float64 `json:"bar_diameter"`
	Fcd       float64 `json:"fcd"`
	Fyd       float64 `json:"fyd"`

	Main      Direction `json:"main"`
	Secondary Direction `json:"secondary"`

	Distribution bool `json:"distribution"` // secondary bars sized as distribution steel

	NominalCover ec2.CoverResult `json:"nominal_cover"`
}

// NewState converts the input and derives both effective depths; the
// secondary bars lie on top of the main bars
func NewState(p Params, concrete ec2.Concrete, steel ec2.Steel) *State {
	s := &State{
		Thickness: p.Thickness / 100,
		Cover:     p.Cover / 1000,
		Bar:       p.BarDiameter / 1000,
		Fcd:       concrete.Fcd(),
		Fyd:       steel.FydKPa(),
	}

	s.Main.Moment = p.Moment
	s.Main.EffectiveDepth = s.Thickness - s.Cover - s.Bar/2
	s.Main.MaxSpacing = math.Min(maxSpacingMainRatio*s.Thickness, maxSpacingMain)

	s.Secondary.Moment = p.SecondaryMoment
	s.Secondary.EffectiveDepth = s.Main.EffectiveDepth - s.Bar
	s.Secondary.MaxSpacing = math.Min(maxSpacingSecondaryRatio*s.Thickness, maxSpacingSecondary)

	for _, dir := range []*Direction{&s.Main, &s.Secondary} {
		dir.MinArea = ec2.MinFlexuralArea(concrete, steel, stripWidth, dir.EffectiveDepth)
		dir.MaxArea = ec2.MaxFlexuralArea(stripWidth, s.Thickness)
	}
	return s
}

// flexure sizes one direction; false when mu exceeds the limit
func (s *State) flexure(dir *Direction) bool {
	dir.Mu = ec2.NormalizedMoment(dir.Moment, stripWidth, dir.EffectiveDepth, s.Fcd)
	dir.MuCorrect = dir.Mu <= ec2.MuLimit
	if !dir.MuCorrect {
		return false
	}
	dir.Alpha1, _ = ec2.Alpha(dir.Mu)
	dir.RequiredArea = max(dir.Alpha1*stripWidth*dir.EffectiveDepth*s.Fcd/s.Fyd, dir.MinArea)
	return true
}

// Design calculates the reinforcement per metre of both bar directions
func Design(p Params) (*design.Result, error) {
	directions := []string{DirectionMain, DirectionSecondary}
	if err := p.Validate(); err != nil {
		res := design.Invalid(directions, err)
		return &res, nil
	}

	concrete, steel, err := ec2.Properties(ec2.Slab, p.ConcreteClass, p.SteelGrade)
	if err != nil {
		return nil, err
	}

	s := NewState(p, concrete, steel)
	res := &design.Result{State: s}
	res.SetCheck(design.CheckInput, true)

	if p.ExposureClass != "" {
		cover, remarks, err := ec2.NominalCover(p.ExposureClass, concrete, ec2.Slab, s.Bar, s.Cover)
		if err != nil {
			return nil, err
		}
		s.NominalCover = cover
		res.Remarks = append(res.Remarks, remarks...)
	}
	if !ec2.IsStandardDiameter(p.BarDiameter) {
		res.Remark("Bar diameter %.0f mm is not a standard diameter", p.BarDiameter)
	}

	// Main direction
	if !s.flexure(&s.Main) {
		res.SetCheck(design.CheckMu, false)
		res.Remark("mu = %.4f in the main direction exceeds the limit %.3f, increase the slab thickness", s.Main.Mu, ec2.MuLimit)
		for _, dir := range directions {
			res.AddPosition(dir, nil, nil, nil)
		}
		return res, nil
	}
	mainLayout, mainFound := s.place(res, DirectionMain, &s.Main)

	// Secondary direction
	if s.Secondary.Moment > 0 {
		if !s.flexure(&s.Secondary) {
			res.SetCheck(design.CheckMu, false)
			res.Remark("mu = %.4f in the secondary direction exceeds the limit %.3f, increase the slab thickness", s.Secondary.Mu, ec2.MuLimit)
			res.AddPosition(DirectionSecondary, nil, nil, nil)
			res.SetCheck(design.CheckLayout, false)
			return res, nil
		}
	} else {
		s.Distribution = true
		s.Secondary.RequiredArea = s.Secondary.MinArea
		if mainFound {
			s.Secondary.RequiredArea = max(distributionShare*mainLayout.Area, s.Secondary.MinArea)
		}
		res.Remark("No secondary moment, distribution reinforcement of at least %.0f%% of the main bars", distributionShare*100)
	}
	res.SetCheck(design.CheckMu, true)
	_, secondaryFound := s.place(res, DirectionSecondary, &s.Secondary)

	res.SetCheck(design.CheckLayout, mainFound && secondaryFound)
	return res, nil
}

// place runs the spacing search for one direction and appends its position
func (s *State) place(res *design.Result, label string, dir *Direction) (rebar.SpacingLayout, bool) {
	required := design.Float(dir.RequiredArea)
	layout, found := rebar.SelectSpacingLayout(dir.RequiredArea, dir.MinArea, dir.MaxArea, s.Bar, s.Cover)
	if !found {
		res.Remark("No spacing of ø%.0f satisfies %.2f cm²/m in the %s direction, redesign the slab",
			s.Bar*1000, dir.RequiredArea*1e4, label)
		res.AddPosition(label, required, nil, nil)
		return layout, false
	}

	withinLimit := layout.Spacing <= dir.MaxSpacing+1e-9
	if passed, ok := res.Check(design.CheckMaxSpacing); ok {
		withinLimit = withinLimit && passed
	}
	res.SetCheck(design.CheckMaxSpacing, withinLimit)
	if layout.Spacing > dir.MaxSpacing+1e-9 {
		res.Remark("Spacing %.0f mm in the %s direction exceeds the maximum %.0f mm",
			layout.Spacing*1000, label, dir.MaxSpacing*1000)
	}

	res.AddPosition(label, required, design.Float(layout.Area), design.FromSpacing(layout))
	return layout, true
}
