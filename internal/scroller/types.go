package scroller

import "fmt"

// Vec is a position in content space.
type Vec struct {
	X, Y float64
}

// Axis returns the component of v along the scroll direction.
func (v Vec) Axis(dir Direction) float64 {
	if dir == Horizontal {
		return v.X
	}
	return v.Y
}

// Direction is the axis the list scrolls along.
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

// String implements [fmt.Stringer].
func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "vertical", "v", "":
		*d = Vertical
	case "horizontal", "h":
		*d = Horizontal
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// Movement is how the host surface treats scrolling past the content bounds.
type Movement uint8

const (
	// Unrestricted lets the offset move freely. Looped lists require it.
	Unrestricted Movement = iota
	// Elastic lets the host overshoot the bounds and settle back.
	Elastic
	// Clamped stops the offset at the bounds.
	Clamped
)

// String implements [fmt.Stringer].
func (m Movement) String() string {
	switch m {
	case Unrestricted:
		return "unrestricted"
	case Elastic:
		return "elastic"
	case Clamped:
		return "clamped"
	default:
		return fmt.Sprintf("Movement(%d)", m)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (m Movement) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Movement) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unrestricted":
		*m = Unrestricted
	case "elastic", "":
		*m = Elastic
	case "clamped":
		*m = Clamped
	default:
		return fmt.Errorf("unknown movement %q", text)
	}
	return nil
}

// Config holds the construction-time settings of a [Controller].
type Config struct {
	Direction Direction
	// Loop wraps display indices modulo Count while the scroll position
	// grows without bound.
	Loop bool
	// Count is the number of virtual items.
	Count int
	// Spacing is the gap between two consecutive items.
	Spacing float64
	// Staggered creates one pooled widget per [Controller.Step] call instead
	// of building the whole pool at once.
	Staggered bool
}
