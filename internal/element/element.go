// Package element loads structural element descriptions and dispatches
// them to the section design procedures.
package element

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/alexiusacademia/rcalc/internal/beam"
	"github.com/alexiusacademia/rcalc/internal/column"
	"github.com/alexiusacademia/rcalc/internal/design"
	"github.com/alexiusacademia/rcalc/internal/ec2"
	"github.com/alexiusacademia/rcalc/internal/footing"
	"github.com/alexiusacademia/rcalc/internal/slab"
)

// Element is one structural element. Exactly one of the parameter
// records matches Kind; the others are nil.
type Element struct {
	Kind ec2.ElementKind
	Info map[string]any

	Beam    *beam.Params
	Column  *column.Params
	Slab    *slab.Params
	Footing *footing.Params
}

// NewBeam wraps beam parameters
func NewBeam(p beam.Params) Element { return Element{Kind: ec2.Beam, Beam: &p} }

// NewColumn wraps column parameters
func NewColumn(p column.Params) Element { return Element{Kind: ec2.Column, Column: &p} }

// NewSlab wraps slab parameters
func NewSlab(p slab.Params) Element { return Element{Kind: ec2.Slab, Slab: &p} }

// NewFooting wraps footing parameters
func NewFooting(p footing.Params) Element { return Element{Kind: ec2.Footing, Footing: &p} }

// Positions returns the reinforcement position labels of the element kind
func Positions(e Element) []string {
	switch e.Kind {
	case ec2.Beam:
		if e.Beam != nil {
			return []string{string(e.Beam.Section)}
		}
		return []string{string(beam.Support)}
	case ec2.Column:
		return []string{column.FaceTension, column.FaceCompression}
	case ec2.Slab:
		return []string{slab.DirectionMain, slab.DirectionSecondary}
	case ec2.Footing:
		return []string{footing.DirectionX, footing.DirectionY}
	}
	return nil
}

// Output is the calculation record of one element
type Output struct {
	Kind       ec2.ElementKind `json:"kind"`
	Info       map[string]any  `json:"info,omitempty"`
	Results    *design.Result  `json:"results"`
	Parameters any             `json:"parameters"`
}

// Name returns the element name from its metadata, or the kind
func (o Output) Name() string {
	if name, ok := o.Info["name"]; ok {
		return fmt.Sprint(name)
	}
	return o.Kind.String()
}

// Calculate runs the design procedure of the element. Invalid input yields
// an Output whose remarks explain the failure; the error is reserved for
// catalog inconsistencies and unknown kinds.
func Calculate(e Element) (Output, error) {
	var (
		res *design.Result
		err error
	)

	switch e.Kind {
	case ec2.Beam:
		if e.Beam == nil {
			res = missing(e)
			break
		}
		res, err = beam.Design(*e.Beam)
	case ec2.Column:
		if e.Column == nil {
			res = missing(e)
			break
		}
		res, err = column.Design(*e.Column)
	case ec2.Slab:
		if e.Slab == nil {
			res = missing(e)
			break
		}
		res, err = slab.Design(*e.Slab)
	case ec2.Footing:
		if e.Footing == nil {
			res = missing(e)
			break
		}
		res, err = footing.Design(*e.Footing)
	default:
		return Output{}, fmt.Errorf("unsupported element kind %v", e.Kind)
	}
	if err != nil {
		return Output{}, fmt.Errorf("calculating %s: %w", e.Kind, err)
	}

	log.WithFields(log.Fields{
		"kind":      e.Kind.String(),
		"positions": res.Positions,
		"remarks":   len(res.Remarks),
	}).Debug("element calculated")

	return Output{Kind: e.Kind, Info: e.Info, Results: res, Parameters: res.State}, nil
}

func missing(e Element) *design.Result {
	res := design.Invalid(Positions(e), design.Invalidf("data", "no %s parameters", e.Kind))
	return &res
}

// CalculateAll runs every element independently. It stops at the first
// catalog inconsistency.
func CalculateAll(elements []Element) ([]Output, error) {
	out := make([]Output, 0, len(elements))
	for i, e := range elements {
		o, err := Calculate(e)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i+1, err)
		}
		out = append(out, o)
	}
	return out, nil
}
