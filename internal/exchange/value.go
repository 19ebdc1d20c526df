package exchange

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Kind identifies the type held by a Value.
type Kind int

const (
	KindNumber Kind = iota + 1
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is a single capability value. Numbers are kept as decimals so that
// values read from YAML ("0.1") compare exactly against Go literals.
type Value struct {
	kind Kind
	num  decimal.Decimal
	str  string
	b    bool
}

// Number wraps a decimal capability value.
func Number(d decimal.Decimal) Value {
	return Value{kind: KindNumber, num: d}
}

// Int wraps an integer capability value.
func Int(i int64) Value {
	return Value{kind: KindNumber, num: decimal.NewFromInt(i)}
}

// String wraps a string capability value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bool wraps a boolean capability value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v was never assigned.
func (v Value) IsZero() bool { return v.kind == 0 }

// Decimal returns the numeric value. ok is false for non-numbers.
func (v Value) Decimal() (d decimal.Decimal, ok bool) {
	return v.num, v.kind == KindNumber
}

// Int64 returns the value as an integer. Fractional numbers are rejected
// rather than truncated.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindNumber || !v.num.IsInteger() {
		return 0, false
	}
	return v.num.IntPart(), true
}

func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) Boolean() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Equal compares kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num.Equal(o.num)
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return v.num.String()
	case KindString:
		return strconv.Quote(v.str)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}

// valueFromScalar converts a decoded YAML scalar into a Value.
func valueFromScalar(raw any) (Value, error) {
	switch x := raw.(type) {
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint64:
		d, err := decimal.NewFromString(strconv.FormatUint(x, 10))
		if err != nil {
			return Value{}, err
		}
		return Number(d), nil
	case float64:
		// Re-parse through the shortest textual form so 0.1 stays 0.1.
		d, err := decimal.NewFromString(strconv.FormatFloat(x, 'f', -1, 64))
		if err != nil {
			return Value{}, err
		}
		return Number(d), nil
	case nil:
		return Value{}, fmt.Errorf("null value")
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}
