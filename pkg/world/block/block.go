package block

import (
	"fmt"
	"strings"
)

// Type identifies a block kind. The zero value is Air.
type Type uint8

const (
	Air Type = iota
	Grass
	Dirt
	Stone
	Sand
	Water

	count
)

var names = [count]string{
	Air:   "air",
	Grass: "grass",
	Dirt:  "dirt",
	Stone: "stone",
	Sand:  "sand",
	Water: "water",
}

// IsTransparent reports whether t lets neighboring faces show through.
// Water is the only transparent type.
func IsTransparent(t Type) bool {
	return t == Water
}

// IsSolid reports whether t is a terrain block (anything but air and water).
func IsSolid(t Type) bool {
	return t != Air && t != Water && t < count
}

// Valid reports whether t is a registered block type.
func Valid(t Type) bool {
	return t < count
}

func (t Type) String() string {
	if t < count {
		return names[t]
	}
	return fmt.Sprintf("block(%d)", uint8(t))
}

// Parse returns the block type with the given name.
func Parse(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range names {
		if s == n {
			return Type(i), nil
		}
	}
	return Air, fmt.Errorf("unknown block %q", name)
}

// All returns every registered block type in id order.
func All() []Type {
	out := make([]Type, 0, count)
	for t := Air; t < count; t++ {
		out = append(out, t)
	}
	return out
}
