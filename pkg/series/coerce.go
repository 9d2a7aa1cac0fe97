package series

import "fmt"

// Coerce lifts v into a series. A *Series is returned unchanged and any Go
// integer or floating-point scalar becomes a constant series.
func Coerce(v any) (*Series, error) {
	switch x := v.(type) {
	case *Series:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *Series", ErrTypeMismatch)
		}
		return x, nil
	case int:
		return Constant(float64(x)), nil
	case int8:
		return Constant(float64(x)), nil
	case int16:
		return Constant(float64(x)), nil
	case int32:
		return Constant(float64(x)), nil
	case int64:
		return Constant(float64(x)), nil
	case uint:
		return Constant(float64(x)), nil
	case uint8:
		return Constant(float64(x)), nil
	case uint16:
		return Constant(float64(x)), nil
	case uint32:
		return Constant(float64(x)), nil
	case uint64:
		return Constant(float64(x)), nil
	case float32:
		return Constant(float64(x)), nil
	case float64:
		return Constant(x), nil
	default:
		return nil, fmt.Errorf("%w: cannot use %T as a series", ErrTypeMismatch, v)
	}
}

func coercePair(a, b any) (*Series, *Series, error) {
	l, err := Coerce(a)
	if err != nil {
		return nil, nil, err
	}
	r, err := Coerce(b)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}
