package duckno

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is a sealed interface over JSON's type system.
// Only Null, Bool, Number, String, Array and Object implement it.
// The store accepts and returns Values; anything a Value can express
// round-trips through Set/Get under JSON equality.
type Value interface {
	jsonValue() // Sealed - only these types implement it
}

// Null represents a JSON null.
// An explicit type (rather than a nil Value) keeps the interface sealed.
type Null struct{}

func (Null) jsonValue() {}

// MarshalJSON implements json.Marshaler for Null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// Bool represents a JSON boolean.
type Bool bool

func (Bool) jsonValue() {}

// Number represents a JSON number. It is backed by the number's decimal
// text so integers beyond 2^53 survive a round trip without float64
// precision loss.
type Number string

func (Number) jsonValue() {}

// MarshalJSON implements json.Marshaler for Number.
// The stored text is emitted verbatim after validation.
func (n Number) MarshalJSON() ([]byte, error) {
	if len(n) == 0 || !(n[0] == '-' || (n[0] >= '0' && n[0] <= '9')) || !json.Valid([]byte(n)) {
		return nil, fmt.Errorf("invalid number literal: %q", string(n))
	}
	return []byte(n), nil
}

// Int creates a Number from an int64.
func Int(n int64) Number {
	return Number(strconv.FormatInt(n, 10))
}

// Float creates a Number from a float64. NaN and infinities have no
// JSON representation; the resulting Number fails to marshal.
func Float(f float64) Number {
	data, err := json.Marshal(f)
	if err != nil {
		return Number("")
	}
	return Number(data)
}

// Int64 returns the number as an int64, if it is one.
func (n Number) Int64() (int64, error) {
	return json.Number(n).Int64()
}

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return json.Number(n).Float64()
}

// String represents a JSON string.
type String string

func (String) jsonValue() {}

// Array represents a JSON array of Values.
type Array []Value

func (Array) jsonValue() {}

// Object represents a JSON object mapping string keys to Values.
type Object map[string]Value

func (Object) jsonValue() {}

// MarshalValue encodes a Value as UTF-8 JSON text.
// A nil Value encodes as null, matching the none default of Get.
func MarshalValue(v Value) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal value: %w", err)
	}
	return data, nil
}

// UnmarshalValue decodes JSON text into a Value.
// Numbers keep their decimal text; objects and arrays decode recursively.
func UnmarshalValue(data []byte) (Value, error) {
	v, err := unmarshalValue(data)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// UnmarshalJSON implements json.Unmarshaler for Object.
func (obj *Object) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*obj = make(Object, len(raw))
	for k, v := range raw {
		val, err := unmarshalValue(v)
		if err != nil {
			return fmt.Errorf("object key %q: %w", k, err)
		}
		(*obj)[k] = val
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for Array.
func (arr *Array) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*arr = make(Array, len(raw))
	for i, v := range raw {
		val, err := unmarshalValue(v)
		if err != nil {
			return fmt.Errorf("array index %d: %w", i, err)
		}
		(*arr)[i] = val
	}
	return nil
}

// unmarshalValue decodes a JSON value into the matching Value type,
// dispatching on the first byte.
func unmarshalValue(data []byte) (Value, error) {
	for len(data) > 0 && (data[0] == ' ' || data[0] == '\t' || data[0] == '\n' || data[0] == '\r') {
		data = data[1:]
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty JSON value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return String(s), nil

	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, err
		}
		return Bool(b), nil

	case 'n':
		var raw any
		if err := json.Unmarshal(data, &raw); err != nil || raw != nil {
			return nil, fmt.Errorf("invalid JSON literal: %q", string(data))
		}
		return Null{}, nil

	case '[':
		var arr Array
		if err := json.Unmarshal(data, &arr); err != nil {
			return nil, err
		}
		return arr, nil

	case '{':
		var obj Object
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, err
		}
		return obj, nil

	default:
		// Must be a number - keep the decimal text
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		return Number(n), nil
	}
}

// FromGoValue converts an ordinary Go value to a Value. Supported inputs
// are nil, bool, string, Go numeric kinds, json.Number, []any,
// map[string]any, and anything already a Value. Everything else is not
// JSON-encodable and returns an error.
func FromGoValue(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case json.Number:
		return Number(val), nil
	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case uint:
		return Number(strconv.FormatUint(uint64(val), 10)), nil
	case uint8:
		return Int(int64(val)), nil
	case uint16:
		return Int(int64(val)), nil
	case uint32:
		return Int(int64(val)), nil
	case uint64:
		return Number(strconv.FormatUint(val, 10)), nil
	case float32:
		return Float(float64(val)), nil
	case float64:
		return Float(val), nil
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			ve, err := FromGoValue(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr[i] = ve
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			ve, err := FromGoValue(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			obj[k] = ve
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}
