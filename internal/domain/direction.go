package domain

import "fmt"

// Direction selects which field is the prompt and which is the answer
type Direction string

const (
	NativeToForeign Direction = "native-foreign"
	ForeignToNative Direction = "foreign-native"
)

// ParseDirection converts a config or callback value into a Direction
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case NativeToForeign, ForeignToNative:
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	if d == ForeignToNative {
		return NativeToForeign
	}
	return ForeignToNative
}

// Label returns a short arrow form for display
func (d Direction) Label() string {
	if d == ForeignToNative {
		return "foreign → native"
	}
	return "native → foreign"
}
