package layout

import "math"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitFixed               // Absolute layout units
	UnitPercent             // Percentage of parent's available space
)

// Value represents a dimension that can be fixed, percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of layout units.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual integer value given available space.
// For UnitAuto, returns the fallback value.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// fixedOr returns the fixed amount of v, or fallback when v depends on
// available space. Used where no available space is known yet.
func (v Value) fixedOr(fallback int) int {
	if v.Unit == UnitFixed {
		return int(v.Amount)
	}
	return fallback
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// valid reports whether v can be resolved: known unit, finite, non-negative.
func (v Value) valid() bool {
	switch v.Unit {
	case UnitAuto:
		return true
	case UnitFixed, UnitPercent:
		return !math.IsNaN(v.Amount) && !math.IsInf(v.Amount, 0) && v.Amount >= 0
	default:
		return false
	}
}
