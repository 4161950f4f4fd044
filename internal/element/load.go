package element

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/rcalc/internal/beam"
	"github.com/alexiusacademia/rcalc/internal/column"
	"github.com/alexiusacademia/rcalc/internal/ec2"
	"github.com/alexiusacademia/rcalc/internal/footing"
	"github.com/alexiusacademia/rcalc/internal/slab"
)

// Format is the encoding of an element file
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatOf picks the format from the file extension; .rcalc save files
// are JSON
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// jsonFile is the save file envelope
type jsonFile struct {
	Element string          `json:"element"`
	Info    map[string]any  `json:"info"`
	Data    json.RawMessage `json:"data"`
}

type yamlFile struct {
	Element string         `yaml:"element"`
	Info    map[string]any `yaml:"info"`
	Data    yaml.Node      `yaml:"data"`
}

// kindOf strips a save file suffix such as ".rcalc" from the element field
func kindOf(element string) (ec2.ElementKind, error) {
	name := strings.TrimSpace(element)
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	return ec2.ParseKind(strings.ToLower(name))
}

// LoadFromFile loads an element from a JSON, .rcalc or YAML file
func LoadFromFile(path string) (Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Element{}, err
	}
	e, err := Parse(data, FormatOf(path))
	if err != nil {
		return Element{}, fmt.Errorf("%s: %w", path, err)
	}
	return e, nil
}

// Parse decodes an element. Unknown data fields are rejected so that
// misspelt inputs do not silently fall back to zero.
func Parse(data []byte, format Format) (Element, error) {
	if format == YAML {
		return parseYAML(data)
	}
	return parseJSON(data)
}

func parseJSON(data []byte) (Element, error) {
	var f jsonFile
	if err := json.Unmarshal(data, &f); err != nil {
		return Element{}, err
	}
	kind, err := kindOf(f.Element)
	if err != nil {
		return Element{}, err
	}
	if len(f.Data) == 0 {
		return Element{}, fmt.Errorf("missing data section")
	}

	e := Element{Kind: kind, Info: f.Info}
	decode := func(v any) error {
		dec := json.NewDecoder(bytes.NewReader(f.Data))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	}
	if err := e.decodeParams(decode); err != nil {
		return Element{}, fmt.Errorf("%s data: %w", kind, err)
	}
	return e, nil
}

func parseYAML(data []byte) (Element, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Element{}, err
	}
	kind, err := kindOf(f.Element)
	if err != nil {
		return Element{}, err
	}
	if f.Data.Kind == 0 {
		return Element{}, fmt.Errorf("missing data section")
	}

	raw, err := yaml.Marshal(&f.Data)
	if err != nil {
		return Element{}, err
	}
	e := Element{Kind: kind, Info: f.Info}
	decode := func(v any) error {
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		return dec.Decode(v)
	}
	if err := e.decodeParams(decode); err != nil {
		return Element{}, fmt.Errorf("%s data: %w", kind, err)
	}
	return e, nil
}

// decodeParams fills the parameter record matching e.Kind
func (e *Element) decodeParams(decode func(any) error) error {
	switch e.Kind {
	case ec2.Beam:
		e.Beam = new(beam.Params)
		return decode(e.Beam)
	case ec2.Column:
		e.Column = new(column.Params)
		return decode(e.Column)
	case ec2.Slab:
		e.Slab = new(slab.Params)
		return decode(e.Slab)
	case ec2.Footing:
		e.Footing = new(footing.Params)
		return decode(e.Footing)
	}
	return fmt.Errorf("unsupported element kind %v", e.Kind)
}
