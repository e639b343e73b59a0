package layout

import (
	"math"
	"strconv"
	"strings"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Fills the parent's corresponding dimension
	UnitFixed               // Absolute terminal cells
	UnitPercent             // Percentage of parent's available space
)

// Value represents a dimension that can be fixed, percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that resolves to the whole available space.
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

// ParseValue interprets a width/height property value.
// Accepted forms: ints and floats (cells), "12" (cells), "50%" and "auto".
// The second result is false when the value cannot be interpreted.
func ParseValue(v any) (Value, bool) {
	switch val := v.(type) {
	case Value:
		return val, true
	case int:
		return Fixed(val), true
	case int64:
		return Fixed(int(val)), true
	case float64:
		return Fixed(int(val)), true
	case string:
		s := strings.TrimSpace(strings.ToLower(val))
		if s == "auto" || s == "" {
			return Auto(), s == "auto"
		}
		if pct, ok := strings.CutSuffix(s, "%"); ok {
			p, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
			if err != nil {
				return Value{}, false
			}
			return Percent(p), true
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return Value{}, false
		}
		return Fixed(n), true
	}
	return Value{}, false
}

// Resolve computes the actual integer value given available space.
// Percentages round down. Auto resolves to all of available.
func (v Value) Resolve(available int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		if v.Amount == math.Trunc(v.Amount) {
			return available * int(v.Amount) / 100
		}
		return int(math.Floor(float64(available) * v.Amount / 100.0))
	default:
		return available
	}
}

// IsAuto returns true if this value fills the available space.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// String renders the value in the same syntax ParseValue accepts.
func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return strconv.Itoa(int(v.Amount))
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64) + "%"
	default:
		return "auto"
	}
}
