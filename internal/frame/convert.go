package frame

import (
	"fmt"
	"strconv"
	"strings"

	derrors "github.com/leengari/babybear/internal/domain/errors"
)

// MissingText is the literal the codec uses for a missing value.
// It is kept as text unless a conversion handles it.
const MissingText = "nan"

// Built-in conversions. Each accepts its own output unchanged, so applying one
// twice gives the same cells as applying it once.

// ToFloat parses text cells as float64. "nan" parses to NaN.
func ToFloat(v interface{}) (interface{}, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil, conversionFailure(v, "FLOAT", err)
		}
		return f, nil
	default:
		return nil, conversionFailure(v, "FLOAT", nil)
	}
}

// ToInt parses text cells as int64
func ToInt(v interface{}) (interface{}, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return nil, conversionFailure(v, "INT", err)
		}
		return i, nil
	default:
		return nil, conversionFailure(v, "INT", nil)
	}
}

// ToBool parses text cells with strconv.ParseBool
func ToBool(v interface{}) (interface{}, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return nil, conversionFailure(v, "BOOL", err)
		}
		return b, nil
	default:
		return nil, conversionFailure(v, "BOOL", nil)
	}
}

// ToText formats any cell back to text. Missing (nil) cells become "nan".
func ToText(v interface{}) (interface{}, error) {
	return FormatCell(v), nil
}

// Missing wraps conv so that the "nan" literal becomes nil instead of being
// handed to conv. nil cells stay nil.
func Missing(conv Conversion) Conversion {
	return func(v interface{}) (interface{}, error) {
		if v == nil {
			return nil, nil
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == MissingText {
			return nil, nil
		}
		return conv(v)
	}
}

// FormatCell renders a cell as codec text
func FormatCell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return MissingText
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

func conversionFailure(v interface{}, target string, err error) error {
	if err == nil {
		err = fmt.Errorf("cannot convert %T to %s", v, target)
	} else {
		err = fmt.Errorf("expected %s: %w", target, err)
	}
	return &derrors.ConversionError{RowIndex: -1, Value: v, Err: err}
}
