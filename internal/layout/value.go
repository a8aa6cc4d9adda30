package layout

import "math"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content
	UnitFixed               // Absolute terminal cells
	UnitPercent             // Percentage of parent's available space
	UnitStar                // Weighted share of the space left after other tracks
)

// Value represents a dimension that can be fixed, percentage, star, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Star returns a Value that takes a share of the remaining space
// proportional to weight. A weight that is not a positive finite
// number yields Auto.
func Star(weight float64) Value {
	if !(weight > 0) || math.IsInf(weight, 0) {
		return Auto()
	}
	return Value{Amount: weight, Unit: UnitStar}
}

// Resolve computes the actual integer value given available space.
// For UnitAuto and UnitStar, returns the fallback value; star tracks are
// only meaningful relative to their siblings.
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

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsStar returns true if this value is a weighted share.
func (v Value) IsStar() bool {
	return v.Unit == UnitStar
}
