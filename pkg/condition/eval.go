package condition

import (
	"errors"
	"fmt"
)

// Resolver returns the current value for an attribute id. ok false means the
// attribute has no answer yet; an unanswered operand makes the whole
// comparison false rather than an error, matching how screens progressively
// fill in.
type Resolver func(id string) (value any, ok bool)

// ErrNotComparable is returned when an ordering operator meets operands of
// mixed or non-orderable types.
var ErrNotComparable = errors.New("condition: operands are not comparable")

// Evaluate resolves the expression against the supplied attribute values.
// And/or short-circuit left to right in element order.
func Evaluate(expr Expression, resolve Resolver) (bool, error) {
	if resolve == nil {
		resolve = func(string) (any, bool) { return nil, false }
	}
	if err := expr.Validate(); err != nil {
		return false, err
	}
	return eval(expr, resolve)
}

func eval(expr Expression, resolve Resolver) (bool, error) {
	switch expr.Type {
	case And, Or:
		for _, elem := range expr.Elements {
			child, ok := elem.(Expression)
			if !ok {
				return false, fmt.Errorf("condition: %s holds a non-expression element", expr.Type)
			}
			result, err := eval(child, resolve)
			if err != nil {
				return false, err
			}
			if expr.Type == And && !result {
				return false, nil
			}
			if expr.Type == Or && result {
				return true, nil
			}
		}
		return expr.Type == And, nil
	default:
		return evalComparison(expr, resolve)
	}
}

func evalComparison(expr Expression, resolve Resolver) (bool, error) {
	left, leftOK := resolveOperand(expr.Elements[0].(Value), resolve)
	right, rightOK := resolveOperand(expr.Elements[1].(Value), resolve)

	switch expr.Type {
	case Equals:
		if !leftOK || !rightOK {
			return false, nil
		}
		return scalarEqual(left, right), nil
	case NotEquals:
		if !leftOK || !rightOK {
			return false, nil
		}
		return !scalarEqual(left, right), nil
	}

	// Ordering operators need both sides answered and mutually orderable.
	if !leftOK || !rightOK || left == nil || right == nil {
		return false, nil
	}
	cmp, err := scalarCompare(left, right)
	if err != nil {
		return false, err
	}
	switch expr.Type {
	case LessThan:
		return cmp < 0, nil
	case LessThanEquals:
		return cmp <= 0, nil
	case GreaterThan:
		return cmp > 0, nil
	case GreaterThanEquals:
		return cmp >= 0, nil
	default:
		return false, fmt.Errorf("condition: unknown type %q", expr.Type)
	}
}

func resolveOperand(operand Value, resolve Resolver) (any, bool) {
	if operand.Kind == KindAttribute {
		return resolve(operand.AttributeID)
	}
	return normalizeScalar(operand.Value), true
}

func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return v
	}
}

func scalarEqual(left, right any) bool {
	return normalizeScalar(left) == normalizeScalar(right)
}

func scalarCompare(left, right any) (int, error) {
	switch l := normalizeScalar(left).(type) {
	case float64:
		r, ok := normalizeScalar(right).(float64)
		if !ok {
			return 0, fmt.Errorf("%w: number against %T", ErrNotComparable, right)
		}
		switch {
		case l < r:
			return -1, nil
		case l > r:
			return 1, nil
		default:
			return 0, nil
		}
	case string:
		r, ok := right.(string)
		if !ok {
			return 0, fmt.Errorf("%w: string against %T", ErrNotComparable, right)
		}
		switch {
		case l < r:
			return -1, nil
		case l > r:
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotComparable, left)
	}
}
