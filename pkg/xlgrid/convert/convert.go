// Package convert coerces raw cell values into typed Go values under a
// caller-selected failure policy.
//
// Coercion is culture-neutral: text is parsed with invariant rules, numbers
// become booleans as zero/non-zero, booleans become numbers as 1/0, and every
// value can become a string. Anything else fails with ErrConversionFailed.
package convert

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

// Scalar is the set of supported conversion targets.
type Scalar interface {
	constraints.Integer | constraints.Float | ~bool | ~string | time.Time | decimal.Decimal
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})

	errUnsupported = errors.New("unsupported coercion")
	errNotFinite   = errors.New("value is not finite")
	errOverflow    = errors.New("value out of range for target type")
	errBlank       = errors.New("blank text")
)

// To converts v to T. Under RaiseOnError a failure returns a
// *ConversionError; under DefaultOnError it returns T's zero value with
// Outcome Defaulted; under NullOnError it returns an Absent result.
func To[T Scalar](v models.Value, policy Policy) (Result[T], error) {
	var out T
	err := coerce(v, reflect.ValueOf(&out).Elem())
	if err == nil {
		return Result[T]{Value: out, Outcome: Converted}, nil
	}

	var zero T
	switch policy {
	case RaiseOnError:
		return Result[T]{Value: zero, Outcome: Absent}, err
	case NullOnError:
		return Result[T]{Value: zero, Outcome: Absent}, nil
	}
	return Result[T]{Value: zero, Outcome: Defaulted}, nil
}

// TryParse reports whether v can be converted to T. Empty values and blank
// or whitespace-only text are never parseable.
func TryParse[T Scalar](v models.Value) bool {
	if IsBlank(v) {
		return false
	}
	var out T
	return coerce(v, reflect.ValueOf(&out).Elem()) == nil
}

// IsBlank reports whether v is empty or renders as whitespace only.
func IsBlank(v models.Value) bool {
	if v.IsEmpty() {
		return true
	}
	return strings.TrimSpace(v.String()) == ""
}

// As converts v to another Value of the given kind. It is the kind-tag form
// of To, used where the target is only known at runtime.
func As(v models.Value, kind models.Kind, policy Policy) (Result[models.Value], error) {
	switch kind {
	case models.KindText:
		return wrap(To[string](v, policy))(models.Text)
	case models.KindNumber:
		return wrap(To[float64](v, policy))(models.Number)
	case models.KindBool:
		return wrap(To[bool](v, policy))(models.Bool)
	case models.KindTime:
		return wrap(To[time.Time](v, policy))(models.Time)
	case models.KindEmpty:
		return Result[models.Value]{Outcome: Converted}, nil
	}

	err := fail(v, kind.String(), errUnsupported)
	switch policy {
	case RaiseOnError:
		return Result[models.Value]{Outcome: Absent}, err
	case NullOnError:
		return Result[models.Value]{Outcome: Absent}, nil
	}
	return Result[models.Value]{Outcome: Defaulted}, nil
}

func wrap[T any](r Result[T], err error) func(func(T) models.Value) (Result[models.Value], error) {
	return func(mk func(T) models.Value) (Result[models.Value], error) {
		if r.Outcome == Absent {
			return Result[models.Value]{Outcome: Absent}, err
		}
		return Result[models.Value]{Value: mk(r.Value), Outcome: r.Outcome}, err
	}
}

func fail(v models.Value, to string, err error) *ConversionError {
	return &ConversionError{From: v.Kind(), To: to, Input: v.String(), Err: err}
}

func coerce(v models.Value, dst reflect.Value) error {
	t := dst.Type()

	switch t {
	case timeType:
		tm, err := toTime(v)
		if err != nil {
			return fail(v, t.String(), err)
		}
		dst.Set(reflect.ValueOf(tm))
		return nil
	case decimalType:
		d, err := toDecimal(v)
		if err != nil {
			return fail(v, t.String(), err)
		}
		dst.Set(reflect.ValueOf(d))
		return nil
	}

	switch t.Kind() {
	case reflect.String:
		dst.SetString(v.String())
		return nil

	case reflect.Bool:
		b, err := toBool(v)
		if err != nil {
			return fail(v, t.String(), err)
		}
		dst.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := toInt(v)
		if err == nil && dst.OverflowInt(i) {
			err = errOverflow
		}
		if err != nil {
			return fail(v, t.String(), err)
		}
		dst.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := toUint(v)
		if err == nil && dst.OverflowUint(u) {
			err = errOverflow
		}
		if err != nil {
			return fail(v, t.String(), err)
		}
		dst.SetUint(u)
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := toFloat(v)
		if err == nil && t.Kind() == reflect.Float32 && !math.IsInf(f, 0) && dst.OverflowFloat(f) {
			err = errOverflow
		}
		if err != nil {
			return fail(v, t.String(), err)
		}
		dst.SetFloat(f)
		return nil
	}

	return fail(v, t.String(), errUnsupported)
}

func toInt(v models.Value) (int64, error) {
	switch v.Kind() {
	case models.KindText:
		s, _ := v.Str()
		return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	case models.KindNumber:
		n, _ := v.Num()
		r, err := roundInteger(n)
		if err != nil {
			return 0, err
		}
		if r < math.MinInt64 || r >= math.MaxInt64 {
			return 0, errOverflow
		}
		return int64(r), nil
	case models.KindBool:
		if b, _ := v.Boolean(); b {
			return 1, nil
		}
		return 0, nil
	}
	return 0, errUnsupported
}

func toUint(v models.Value) (uint64, error) {
	switch v.Kind() {
	case models.KindText:
		s, _ := v.Str()
		return strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "+"), 10, 64)
	case models.KindNumber:
		n, _ := v.Num()
		r, err := roundInteger(n)
		if err != nil {
			return 0, err
		}
		if r < 0 || r >= math.MaxUint64 {
			return 0, errOverflow
		}
		return uint64(r), nil
	case models.KindBool:
		if b, _ := v.Boolean(); b {
			return 1, nil
		}
		return 0, nil
	}
	return 0, errUnsupported
}

// roundInteger rounds half to even, the rounding used by change-type
// coercions from floating point to integers.
func roundInteger(n float64) (float64, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, errNotFinite
	}
	return math.RoundToEven(n), nil
}

func toFloat(v models.Value) (float64, error) {
	switch v.Kind() {
	case models.KindText:
		s, _ := v.Str()
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	case models.KindNumber:
		n, _ := v.Num()
		return n, nil
	case models.KindBool:
		if b, _ := v.Boolean(); b {
			return 1, nil
		}
		return 0, nil
	}
	return 0, errUnsupported
}

func toBool(v models.Value) (bool, error) {
	switch v.Kind() {
	case models.KindText:
		s, _ := v.Str()
		s = strings.TrimSpace(s)
		switch {
		case strings.EqualFold(s, "true"):
			return true, nil
		case strings.EqualFold(s, "false"):
			return false, nil
		}
		return false, strconv.ErrSyntax
	case models.KindNumber:
		n, _ := v.Num()
		return n != 0, nil
	case models.KindBool:
		b, _ := v.Boolean()
		return b, nil
	}
	return false, errUnsupported
}

func toDecimal(v models.Value) (decimal.Decimal, error) {
	switch v.Kind() {
	case models.KindText:
		s, _ := v.Str()
		return decimal.NewFromString(strings.TrimSpace(s))
	case models.KindNumber:
		n, _ := v.Num()
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, errNotFinite
		}
		return decimal.NewFromFloat(n), nil
	case models.KindBool:
		if b, _ := v.Boolean(); b {
			return decimal.NewFromInt(1), nil
		}
		return decimal.Zero, nil
	}
	return decimal.Zero, errUnsupported
}
