package beam

import (
	"github.com/alexiusacademia/rcalc/internal/design"
	"github.com/alexiusacademia/rcalc/internal/ec2"
	"github.com/alexiusacademia/rcalc/internal/rebar"
)

// Section selects the structural context of a beam cross-section
type Section string

const (
	// Support is the section over a support: top bars, negative moment,
	// rectangular web
	Support Section = "support"
	// Span is the midspan section: bottom bars, T-section with flange
	Span Section = "span"
)

// Params is the beam input record (boundary units)
type Params struct {
	Section Section `json:"section" yaml:"section"`

	// Geometry (cm)
	Width           float64 `json:"width" yaml:"width"`                       // b_w - web width
	Height          float64 `json:"height" yaml:"height"`                     // h - total depth
	FlangeWidth     float64 `json:"flange_width" yaml:"flange_width"`         // b_eff - effective flange width, span only
	FlangeThickness float64 `json:"flange_thickness" yaml:"flange_thickness"` // h_f - span only

	// Reinforcement (mm)
	Cover           float64 `json:"cover" yaml:"cover"`
	StirrupDiameter float64 `json:"stirrup_diameter" yaml:"stirrup_diameter"`
	BarDiameter     float64 `json:"bar_diameter" yaml:"bar_diameter"`

	// Loading (kNm)
	Moment float64 `json:"moment" yaml:"moment"`

	// Materials
	ConcreteClass string `json:"concrete_class" yaml:"concrete_class"`
	SteelGrade    string `json:"steel_grade" yaml:"steel_grade"`
	ExposureClass string `json:"exposure_class" yaml:"exposure_class"`
}

// Validate checks the beam input
func (p Params) Validate() error {
	if p.Section != Support && p.Section != Span {
		return design.Invalidf("section", "must be %q or %q, got %q", Support, Span, p.Section)
	}
	err := design.First(
		design.Positive("width", p.Width),
		design.Positive("height", p.Height),
		design.Positive("cover", p.Cover),
		design.NonNegative("stirrup_diameter", p.StirrupDiameter),
		design.Positive("bar_diameter", p.BarDiameter),
		design.NonNegative("moment", p.Moment),
		design.Materials(p.ConcreteClass, p.SteelGrade, p.ExposureClass),
	)
	if err != nil {
		return err
	}
	if p.Section == Span && p.FlangeWidth > 0 {
		if p.FlangeWidth < p.Width {
			return design.Invalidf("flange_width", "must not be smaller than the web width")
		}
		if !(p.FlangeThickness > 0) || p.FlangeThickness >= p.Height {
			return design.Invalidf("flange_thickness", "must be between 0 and the beam height")
		}
	}
	if p.Height*10 <= p.Cover+p.StirrupDiameter+p.BarDiameter/2 {
		return design.Invalidf("height", "leaves no effective depth after cover and bars")
	}
	return nil
}

// State holds every intermediate value of a beam design (m, kN, kPa)
type State struct {
	Section Section `json:"section"`

	// Geometry
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	FlangeWidth     float64 `json:"flange_width"`
	FlangeThickness float64 `json:"flange_thickness"`
	Cover           float64 `json:"cover"`
	Stirrup         float64 `json:"stirrup_diameter"`
	Bar             float64 `json:"bar_diameter"`
	EffectiveDepth  float64 `json:"effective_depth"`

	// Materials
	Fcd float64 `json:"fcd"`
	Fyd float64 `json:"fyd"`

	// Limits
	MinArea float64 `json:"min_area"`
	MaxArea float64 `json:"max_area"`

	// Flexure
	Moment       float64 `json:"moment"`
	Mu           float64 `json:"mu"`
	MuCorrect    bool    `json:"mu_correct"`
	Alpha1       float64 `json:"alpha_1"`
	NeutralAxis  float64 `json:"neutral_axis"` // λx
	RealT        bool    `json:"real_t"`
	FlangeMoment float64 `json:"flange_moment"`
	FlangeArea   float64 `json:"flange_area"`
	WebMoment    float64 `json:"web_moment"`
	Mu2          float64 `json:"mu_2"`
	Mu2Correct   bool    `json:"mu_2_correct"`
	Alpha2       float64 `json:"alpha_2"`
	WebArea      float64 `json:"web_area"`
	RequiredArea float64 `json:"required_area"`

	Capacity *Capacity `json:"capacity,omitempty"`

	NominalCover ec2.CoverResult `json:"nominal_cover"`
}

// NewState converts the input to metres and computes effective depth and
// reinforcement limits
func NewState(p Params, concrete ec2.Concrete, steel ec2.Steel) *State {
	s := &State{
		Section:         p.Section,
		Width:           p.Width / 100,
		Height:          p.Height / 100,
		FlangeWidth:     p.FlangeWidth / 100,
		FlangeThickness: p.FlangeThickness / 100,
		Cover:           p.Cover / 1000,
		Stirrup:         p.StirrupDiameter / 1000,
		Bar:             p.BarDiameter / 1000,
		Moment:          p.Moment,
		Fcd:             concrete.Fcd(),
		Fyd:             steel.FydKPa(),
	}

	// d = h - (c + ø_s + ø/2)
	s.EffectiveDepth = s.Height - (s.Cover + s.Stirrup + s.Bar/2)

	s.MinArea = ec2.MinFlexuralArea(concrete, steel, s.Width, s.EffectiveDepth)
	s.MaxArea = ec2.MaxFlexuralArea(s.Width, s.Height)

	// Rectangular span section when no flange is given
	if s.FlangeWidth == 0 {
		s.FlangeWidth = s.Width
		s.FlangeThickness = s.Height
	}
	return s
}

// Design calculates the required and provided reinforcement of a beam
// section. Capacity problems are reported through remarks and checks;
// the error is reserved for catalog inconsistencies.
func Design(p Params) (*design.Result, error) {
	label := string(p.Section)
	if err := p.Validate(); err != nil {
		res := design.Invalid([]string{label}, err)
		return &res, nil
	}

	concrete, steel, err := ec2.Properties(ec2.Beam, p.ConcreteClass, p.SteelGrade)
	if err != nil {
		return nil, err
	}

	s := NewState(p, concrete, steel)
	res := &design.Result{State: s}
	res.SetCheck(design.CheckInput, true)

	if p.ExposureClass != "" {
		cover, remarks, err := ec2.NominalCover(p.ExposureClass, concrete, ec2.Beam, s.Bar, s.Cover)
		if err != nil {
			return nil, err
		}
		s.NominalCover = cover
		res.Remarks = append(res.Remarks, remarks...)
	}
	if !ec2.IsStandardDiameter(p.BarDiameter) {
		res.Remark("Bar diameter %.0f mm is not a standard diameter", p.BarDiameter)
	}

	var ok bool
	switch p.Section {
	case Support:
		ok = s.designSupport(res)
	case Span:
		ok = s.designSpan(res)
	}
	if !ok {
		res.AddPosition(label, nil, nil, nil)
		return res, nil
	}

	required := design.Float(s.RequiredArea)
	layout, found := rebar.SelectBarLayout(s.RequiredArea, s.MinArea, s.MaxArea, s.Bar, s.Stirrup, s.Width, s.Cover)
	res.SetCheck(design.CheckLayout, found)
	if !found {
		res.Remark("No bar layout of ø%.0f fits between %.2f and %.2f cm² in a %.0f cm web, redesign the section",
			p.BarDiameter, s.MinArea*1e4, s.MaxArea*1e4, p.Width)
		res.AddPosition(label, required, nil, nil)
		return res, nil
	}

	res.AddPosition(label, required, design.Float(layout.Area), design.FromBars(layout))

	capacity := s.Analyze(layout.Area)
	s.Capacity = &capacity
	res.SetCheck(design.CheckCapacity, capacity.MomentResistance >= s.Moment)
	res.Remark("M_Rd = %.1f kNm for %s, utilization %.0f%%",
		capacity.MomentResistance, layout, capacity.Utilization*100)
	return res, nil
}

// designSupport sizes the top reinforcement over a support
func (s *State) designSupport(res *design.Result) bool {
	// mu = M / (b d² fcd)
	s.Mu = ec2.NormalizedMoment(s.Moment, s.Width, s.EffectiveDepth, s.Fcd)
	s.MuCorrect = s.Mu <= ec2.MuLimit
	res.SetCheck(design.CheckMu, s.MuCorrect)
	if !s.MuCorrect {
		res.Remark("mu = %.4f exceeds the limit %.3f, section capacity exceeded - increase the section", s.Mu, ec2.MuLimit)
		return false
	}

	s.Alpha1, _ = ec2.Alpha(s.Mu)
	s.NeutralAxis = s.Alpha1 * s.EffectiveDepth
	s.RequiredArea = max(s.Alpha1*s.Width*s.EffectiveDepth*s.Fcd/s.Fyd, s.MinArea)
	return true
}
