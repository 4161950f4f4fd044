package footing

import (
	"math"

	"github.com/alexiusacademia/rcalc/internal/design"
	"github.com/alexiusacademia/rcalc/internal/ec2"
)

// segment is one piece of the control perimeter curve:
// k(x) = c[0] + c[1] x + c[2] x² for x up to upTo
type segment struct {
	upTo float64
	c    [3]float64
}

// controlCurve approximates the design chart of the critical control
// perimeter distance a = k(d/c)·c, with c the column width. Values of
// d/c above the last breakpoint use the last breakpoint.
var controlCurve = []segment{
	{0.5, [3]float64{0, 1.9, -0.6}},
	{1.0, [3]float64{0.1, 1.5, -0.2}},
	{2.0, [3]float64{0.35, 1.15, -0.1}},
}

// ControlCoefficient evaluates the control perimeter curve at x = d/c
func ControlCoefficient(x float64) float64 {
	if x < 0 {
		x = 0
	}
	last := controlCurve[len(controlCurve)-1]
	if x > last.upTo {
		x = last.upTo
	}
	for _, seg := range controlCurve {
		if x <= seg.upTo {
			return seg.c[0] + x*(seg.c[1]+x*seg.c[2])
		}
	}
	return 0
}

const (
	// C_Rd,c = 0.18 / γc (Section 6.2.2)
	cRdc = 0.18 / ec2.GammaC

	// Limit of the size effect factor k
	maxSizeFactor = 2.0

	// Limit of the longitudinal reinforcement ratio
	maxRhoL = 0.02

	// Control perimeter at most 2d from the column face
	maxControlDistance = 2.0
)

// Punching holds the punching shear verification (m, kN, kPa)
type Punching struct {
	EffectiveDepth float64 `json:"effective_depth"`
	VEd0           float64 `json:"v_ed_0"`
	VRdMax         float64 `json:"v_rd_max"`
	MaxCorrect     bool    `json:"max_correct"`

	// Control perimeter at distance A from the column face, Ratio = d / c
	Ratio        float64 `json:"ratio"`
	Coefficient  float64 `json:"coefficient"`
	A            float64 `json:"a"`
	U            float64 `json:"u"`
	AreaInside   float64 `json:"area_inside"`
	ReducedForce float64 `json:"reduced_force"`
	VEdRed       float64 `json:"v_ed_red"`
	SizeFactor   float64 `json:"k"`
	RhoX         float64 `json:"rho_x"`
	RhoY         float64 `json:"rho_y"`
	RhoL         float64 `json:"rho_l"`
	VRdc         float64 `json:"v_rd_c"`
	VMin         float64 `json:"v_min"`
	VRd          float64 `json:"v_rd"`
	Correct      bool    `json:"correct"`
}

// verifyPunching checks the column face and the control perimeter. Both
// outcomes are remarks and checks only.
func (s *State) verifyPunching(res *design.Result) *Punching {
	p := &Punching{VRdMax: s.VRdMax}
	p.EffectiveDepth = (s.X.EffectiveDepth + s.Y.EffectiveDepth) / 2
	d := p.EffectiveDepth

	// Column face perimeter u0
	p.VEd0 = s.AxialForce / (s.U0 * d)
	p.MaxCorrect = p.VEd0 <= p.VRdMax
	res.SetCheck(design.CheckPunchingMax, p.MaxCorrect)
	if p.MaxCorrect {
		res.Remark("Punching at column face: v_Ed = %.0f kPa <= v_Rd,max = %.0f kPa", p.VEd0, p.VRdMax)
	} else {
		res.Remark("Punching at column face failed: v_Ed = %.0f kPa > v_Rd,max = %.0f kPa", p.VEd0, p.VRdMax)
	}

	// Control perimeter at distance a
	c := s.ColumnWidth
	p.Ratio = d / c
	p.Coefficient = ControlCoefficient(p.Ratio)
	p.A = math.Min(p.Coefficient*c, maxControlDistance*d)
	if p.A <= 0 {
		res.Remark("Punching control perimeter could not be located")
		res.SetCheck(design.CheckPunching, false)
		return p
	}

	c1, c2 := s.ColumnLength, s.ColumnWidth
	p.U = 2*(c1+c2) + 2*math.Pi*p.A
	p.AreaInside = math.Min(c1*c2+2*p.A*(c1+c2)+math.Pi*p.A*p.A, s.Length*s.Width)
	p.ReducedForce = math.Max(s.AxialForce-s.BearingStress*p.AreaInside, 0)
	p.VEdRed = p.ReducedForce / (p.U * d)

	// Resistance without shear reinforcement (MPa inside the bracket)
	p.SizeFactor = math.Min(1+math.Sqrt(200/(d*1000)), maxSizeFactor)
	p.RhoX = s.X.ProvidedArea / s.X.EffectiveDepth
	p.RhoY = s.Y.ProvidedArea / s.Y.EffectiveDepth
	p.RhoL = math.Min(math.Sqrt(p.RhoX*p.RhoY), maxRhoL)
	p.VRdc = cRdc * p.SizeFactor * math.Cbrt(100*p.RhoL*s.Fck)
	p.VMin = 0.035 * math.Pow(p.SizeFactor, 1.5) * math.Sqrt(s.Fck)
	p.VRd = math.Max(p.VRdc, p.VMin) * 2 * d / p.A * 1000

	p.Correct = p.VEdRed <= p.VRd
	res.SetCheck(design.CheckPunching, p.Correct)
	if p.Correct {
		res.Remark("Punching at control perimeter a = %.1f cm: v_Ed,red = %.0f kPa <= v_Rd = %.0f kPa",
			p.A*100, p.VEdRed, p.VRd)
	} else {
		res.Remark("Punching at control perimeter a = %.1f cm failed: v_Ed,red = %.0f kPa > v_Rd = %.0f kPa",
			p.A*100, p.VEdRed, p.VRd)
	}
	return p
}
