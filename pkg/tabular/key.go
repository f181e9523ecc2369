package tabular

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Key is a normalized grouping key.
type Key string

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}

// KeyOf normalizes a scalar value into a Key.
// The second result is false for nil, NaN, infinities and compound values;
// callers treat such values as an absent field.
func KeyOf(v any) (Key, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case Key:
		return val, true
	case string:
		return Key(val), true
	case []byte:
		return Key(val), true
	case json.Number:
		return numberKey(val)
	case bool:
		if val {
			return "1", true
		}
		return "0", true
	case int:
		return Key(strconv.FormatInt(int64(val), 10)), true
	case int8:
		return Key(strconv.FormatInt(int64(val), 10)), true
	case int16:
		return Key(strconv.FormatInt(int64(val), 10)), true
	case int32:
		return Key(strconv.FormatInt(int64(val), 10)), true
	case int64:
		return Key(strconv.FormatInt(val, 10)), true
	case uint:
		return Key(strconv.FormatUint(uint64(val), 10)), true
	case uint8:
		return Key(strconv.FormatUint(uint64(val), 10)), true
	case uint16:
		return Key(strconv.FormatUint(uint64(val), 10)), true
	case uint32:
		return Key(strconv.FormatUint(uint64(val), 10)), true
	case uint64:
		return Key(strconv.FormatUint(val, 10)), true
	case float32:
		return floatKey(float64(val), 32)
	case float64:
		return floatKey(val, 64)
	case fmt.Stringer:
		return Key(val.String()), true
	default:
		return "", false
	}
}

// numberKey keeps integers exact, including those past int64, and routes
// fractions and exponents through floatKey so 5.0 and 1e1 match 5 and 10.
func numberKey(n json.Number) (Key, bool) {
	if i, err := n.Int64(); err == nil {
		return Key(strconv.FormatInt(i, 10)), true
	}
	if strings.ContainsAny(n.String(), ".eE") {
		if f, err := n.Float64(); err == nil {
			return floatKey(f, 64)
		}
	}
	return Key(n.String()), true
}

func floatKey(f float64, bitSize int) (Key, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}
	return Key(strconv.FormatFloat(f, 'f', -1, bitSize)), true
}

// Equal reports whether a and b normalize to the same key.
// Values that cannot be keys are never equal, not even to themselves.
func Equal(a, b any) bool {
	ka, ok := KeyOf(a)
	if !ok {
		return false
	}
	kb, ok := KeyOf(b)
	return ok && ka == kb
}
