package lang

import "strconv"

// ValueType enumerates the different runtime value categories.
type ValueType int

const (
	TypeNil ValueType = iota
	TypeBool
	TypeNumber
	TypeString
)

// Value represents any runtime object in the interpreter.
type Value struct {
	Type    ValueType
	payload interface{}
}

// Nil is the singleton nil value.
var Nil = Value{Type: TypeNil}

// BoolValue returns the boolean Value equivalent.
func BoolValue(b bool) Value {
	return Value{Type: TypeBool, payload: b}
}

// NumberValue constructs a numeric Value.
func NumberValue(f float32) Value {
	return Value{Type: TypeNumber, payload: f}
}

// StringValue constructs a string Value.
func StringValue(s string) Value {
	return Value{Type: TypeString, payload: s}
}

func (v Value) Bool() bool {
	if b, ok := v.payload.(bool); ok {
		return b
	}
	return false
}

func (v Value) Num() float32 {
	if f, ok := v.payload.(float32); ok {
		return f
	}
	return 0
}

func (v Value) Str() string {
	if s, ok := v.payload.(string); ok {
		return s
	}
	return ""
}

// Equal reports structural equality. Values of different types are never
// equal to each other.
func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case TypeNil:
		return true
	case TypeBool:
		return v.Bool() == other.Bool()
	case TypeNumber:
		return v.Num() == other.Num()
	case TypeString:
		return v.Str() == other.Str()
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.Type {
	case TypeNil:
		return "nil"
	case TypeBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case TypeNumber:
		return strconv.FormatFloat(float64(v.Num()), 'g', -1, 32)
	case TypeString:
		return v.Str()
	default:
		return "<unknown>"
	}
}
