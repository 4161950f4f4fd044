// Package footing designs isolated pad footings under a centric column
// load: bottom mesh in both directions, column bar anchorage and punching
// shear.
package footing

import (
	"math"

	"github.com/alexiusacademia/rcalc/internal/design"
	"github.com/alexiusacademia/rcalc/internal/ec2"
	"github.com/alexiusacademia/rcalc/internal/rebar"
)

// RemarkIncorrectHeight starts the remark of a footing that is too shallow
const RemarkIncorrectHeight = "Incorrect footing height"

const (
	// Bond strength factor 2.25 η1 η2 (Section 8.4.2)
	bondFactor = 2.25

	// Minimum anchorage length (Section 8.4.4): 0.6 lb,rqd, 10 ø, 100 mm
	minAnchorageRatio = 0.6
	minAnchorageBars  = 10.0
	minAnchorage      = 0.100

	// Load spread allowance beyond the column face
	spreadAllowance = 0.15

	// Lever arm z = 0.9 d
	leverArm = 0.9

	// Maximum reinforcement ratio of the strip
	maxRatio = 0.04
)

// Position labels of the two mesh directions
const (
	DirectionX = "x"
	DirectionY = "y"
)

// Params is the footing input record (boundary units)
type Params struct {
	// Geometry (cm); x runs along Length, y along Width
	Length       float64 `json:"length" yaml:"length"`
	Width        float64 `json:"width" yaml:"width"`
	Height       float64 `json:"height" yaml:"height"`
	ColumnLength float64 `json:"column_length" yaml:"column_length"` // c1, along x
	ColumnWidth  float64 `json:"column_width" yaml:"column_width"`   // c2, along y

	// Reinforcement (mm)
	Cover             float64 `json:"cover" yaml:"cover"`
	BarDiameter       float64 `json:"bar_diameter" yaml:"bar_diameter"`
	ColumnBarDiameter float64 `json:"column_bar_diameter" yaml:"column_bar_diameter"`

	// Loading (kN)
	AxialForce float64 `json:"axial_force" yaml:"axial_force"`

	// Materials
	ConcreteClass string `json:"concrete_class" yaml:"concrete_class"`
	SteelGrade    string `json:"steel_grade" yaml:"steel_grade"`
	ExposureClass string `json:"exposure_class" yaml:"exposure_class"`
}

// Validate checks the footing input
func (p Params) Validate() error {
	err := design.First(
		design.Positive("length", p.Length),
		design.Positive("width", p.Width),
		design.Positive("height", p.Height),
		design.Positive("column_length", p.ColumnLength),
		design.Positive("column_width", p.ColumnWidth),
		design.Positive("cover", p.Cover),
		design.Positive("bar_diameter", p.BarDiameter),
		design.Positive("column_bar_diameter", p.ColumnBarDiameter),
		design.Positive("axial_force", p.AxialForce),
		design.Materials(p.ConcreteClass, p.SteelGrade, p.ExposureClass),
	)
	if err != nil {
		return err
	}
	if p.ColumnLength > p.Length {
		return design.Invalidf("column_length", "column is longer than the footing")
	}
	if p.ColumnWidth > p.Width {
		return design.Invalidf("column_width", "column is wider than the footing")
	}
	if p.Height*10 <= p.Cover+2*p.BarDiameter {
		return design.Invalidf("height", "leaves no effective depth for the bottom mesh")
	}
	return nil
}

// Strip holds the flexural design of one mesh direction
type Strip struct {
	Cantilever     float64 `json:"cantilever"`      // effective cantilever length
	Moment         float64 `json:"moment"`          // kNm/m
	EffectiveDepth float64 `json:"effective_depth"` // m
	MinArea        float64 `json:"min_area"`        // m²/m
	MaxArea        float64 `json:"max_area"`        // m²/m
	RequiredArea   float64 `json:"required_area"`   // m²/m
	ProvidedArea   float64 `json:"provided_area"`   // m²/m
	Distribution   float64 `json:"distribution"`    // plan dimension the bars are spread across
}

// State holds every intermediate value of a footing design (m, kN, kPa)
type State struct {
	Length            float64 `json:"length"`
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
	ColumnLength      float64 `json:"column_length"`
	ColumnWidth       float64 `json:"column_width"`
	Cover             float64 `json:"cover"`
	Bar               float64 `json:"bar_diameter"`
	ColumnBar         float64 `json:"column_bar_diameter"`
	AxialForce        float64 `json:"axial_force"`
	Fck               float64 `json:"fck"` // MPa
	Fcd               float64 `json:"fcd"`
	Fctd              float64 `json:"fctd"`
	Fyd               float64 `json:"fyd"`
	AreaCoefficient   float64 `json:"area_coefficient"`
	Fbd               float64 `json:"fbd"`
	AnchorageRequired float64 `json:"anchorage_required"`
	Anchorage         float64 `json:"anchorage"`
	Nu                float64 `json:"nu"`
	VRdMax            float64 `json:"v_rd_max"`
	U0                float64 `json:"u0"`
	DMin              float64 `json:"d_min"`
	HMin              float64 `json:"h_min"`
	HCover            float64 `json:"h_cover"`
	HeightCorrect     bool    `json:"height_correct"`
	BearingStress     float64 `json:"bearing_stress"`

	X Strip `json:"x"`
	Y Strip `json:"y"`

	Punching *Punching `json:"punching,omitempty"`

	NominalCover ec2.CoverResult `json:"nominal_cover"`
}

// ceilCentimetre rounds a length in metres up to a whole centimetre
func ceilCentimetre(v float64) float64 {
	return math.Ceil(v*100-1e-9) / 100
}

// NewState converts the input to metres and evaluates anchorage and the
// minimum heights
func NewState(p Params, concrete ec2.Concrete, steel ec2.Steel) *State {
	s := &State{
		Length:          p.Length / 100,
		Width:           p.Width / 100,
		Height:          p.Height / 100,
		ColumnLength:    p.ColumnLength / 100,
		ColumnWidth:     p.ColumnWidth / 100,
		Cover:           p.Cover / 1000,
		Bar:             p.BarDiameter / 1000,
		ColumnBar:       p.ColumnBarDiameter / 1000,
		AxialForce:      p.AxialForce,
		Fck:             concrete.Fck,
		Fcd:             concrete.Fcd(),
		Fctd:            concrete.Fctd(),
		Fyd:             steel.FydKPa(),
		AreaCoefficient: concrete.AreaCoefficient,
	}

	// Anchorage of the column bars
	s.Fbd = bondFactor * s.Fctd
	s.AnchorageRequired = s.ColumnBar / 4 * s.Fyd / s.Fbd
	s.Anchorage = ceilCentimetre(math.Max(math.Max(minAnchorageRatio*s.AnchorageRequired, minAnchorageBars*s.ColumnBar), minAnchorage))

	// Punching resistance at the column face
	s.Nu = 0.6 * (1 - s.Fck/250)
	s.VRdMax = 0.4 * s.Nu * s.Fcd
	s.U0 = 2 * (s.ColumnLength + s.ColumnWidth)

	s.DMin = s.AxialForce / (s.U0 * s.VRdMax)
	s.HMin = s.DMin + s.Cover + s.Bar
	s.HCover = s.Anchorage + s.Cover + 2*s.Bar
	s.HeightCorrect = s.Height >= s.HMin && s.Height >= s.HCover

	s.X.EffectiveDepth = s.Height - s.Cover - s.Bar/2
	s.Y.EffectiveDepth = s.X.EffectiveDepth - s.Bar
	return s
}

// Design calculates the bottom mesh of a footing and verifies punching
func Design(p Params) (*design.Result, error) {
	directions := []string{DirectionX, DirectionY}
	if err := p.Validate(); err != nil {
		res := design.Invalid(directions, err)
		return &res, nil
	}

	concrete, steel, err := ec2.Properties(ec2.Footing, p.ConcreteClass, p.SteelGrade)
	if err != nil {
		return nil, err
	}

	s := NewState(p, concrete, steel)
	res := &design.Result{State: s}
	res.SetCheck(design.CheckInput, true)

	if p.ExposureClass != "" {
		cover, remarks, err := ec2.NominalCover(p.ExposureClass, concrete, ec2.Footing, s.Bar, s.Cover)
		if err != nil {
			return nil, err
		}
		s.NominalCover = cover
		res.Remarks = append(res.Remarks, remarks...)
	}

	res.SetCheck(design.CheckHeight, s.HeightCorrect)
	if !s.HeightCorrect {
		res.Remark("%s: h = %.0f cm, required at least %.0f cm for punching and %.0f cm for anchorage of %.0f cm",
			RemarkIncorrectHeight, s.Height*100, math.Ceil(s.HMin*100), math.Ceil(s.HCover*100), s.Anchorage*100)
		for _, dir := range directions {
			res.AddPosition(dir, nil, nil, nil)
		}
		return res, nil
	}

	s.BearingStress = s.AxialForce / (s.Length * s.Width)

	xFound := s.flexure(res, DirectionX, &s.X, s.Length, s.ColumnLength, s.Width)
	yFound := s.flexure(res, DirectionY, &s.Y, s.Width, s.ColumnWidth, s.Length)
	res.SetCheck(design.CheckLayout, xFound && yFound)

	if xFound && yFound {
		s.Punching = s.verifyPunching(res)
	} else {
		res.Remark("Punching shear not verified, bottom mesh not found")
	}
	return res, nil
}

// flexure designs one mesh direction as a cantilever from the column
// face. span is the footing dimension in the bar direction, column the
// column dimension in the same direction, across the dimension the bars
// are spread over.
func (s *State) flexure(res *design.Result, label string, strip *Strip, span, column, across float64) bool {
	strip.Distribution = across
	strip.Cantilever = (span-column)/2 + spreadAllowance*column
	strip.Moment = s.BearingStress * strip.Cantilever * strip.Cantilever / 2

	d := strip.EffectiveDepth
	strip.MinArea = s.AreaCoefficient * d
	strip.MaxArea = maxRatio * s.Height
	strip.RequiredArea = math.Max(strip.Moment/(leverArm*d*s.Fyd), strip.MinArea)

	required := design.Float(strip.RequiredArea * across)
	layout, found := rebar.SelectSpacingLayout(strip.RequiredArea, strip.MinArea, strip.MaxArea, s.Bar, s.Cover)
	if !found {
		res.Remark("No spacing of ø%.0f satisfies %.2f cm²/m in direction %s, redesign the footing",
			s.Bar*1000, strip.RequiredArea*1e4, label)
		res.AddPosition(label, required, nil, nil)
		return false
	}

	strip.ProvidedArea = layout.Area
	res.AddPosition(label, required, design.Float(layout.Area*across), design.FromSpacing(layout))
	return true
}
