package ec2

import "fmt"

// ElementKind identifies a structural element type
type ElementKind int

const (
	Beam ElementKind = iota
	Column
	Slab
	Footing
)

var kindNames = [...]string{"beam", "column", "slab", "footing"}

func (k ElementKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ElementKind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves an element kind name. Save files use the short
// names col, foot and plate.
func ParseKind(s string) (ElementKind, error) {
	switch s {
	case "beam":
		return Beam, nil
	case "column", "col":
		return Column, nil
	case "slab", "plate":
		return Slab, nil
	case "footing", "foot":
		return Footing, nil
	}
	return 0, fmt.Errorf("unknown element kind %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (k ElementKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *ElementKind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
