package convert

// Policy selects what a failed conversion produces.
type Policy uint8

const (
	// DefaultOnError returns the zero value of the target type.
	DefaultOnError Policy = iota
	// RaiseOnError returns a *ConversionError.
	RaiseOnError
	// NullOnError returns an absent result.
	NullOnError
)

func (p Policy) String() string {
	switch p {
	case DefaultOnError:
		return "default"
	case RaiseOnError:
		return "raise"
	case NullOnError:
		return "null"
	}
	return "unknown"
}

// ParsePolicy maps "default", "raise" or "null" to a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "default", "":
		return DefaultOnError, true
	case "raise", "error":
		return RaiseOnError, true
	case "null", "none":
		return NullOnError, true
	}
	return DefaultOnError, false
}

// Outcome discriminates a Result.
type Outcome uint8

const (
	// Converted means the raw value was coerced successfully.
	Converted Outcome = iota
	// Defaulted means conversion failed and the zero value was substituted.
	Defaulted
	// Absent means conversion failed and no value is present.
	Absent
)

func (o Outcome) String() string {
	switch o {
	case Converted:
		return "converted"
	case Defaulted:
		return "defaulted"
	case Absent:
		return "absent"
	}
	return "unknown"
}

// Result is the outcome of a conversion under a policy.
type Result[T any] struct {
	Value   T
	Outcome Outcome
}

// Get returns the value and whether one is present. Defaulted results are
// present; absent results are not.
func (r Result[T]) Get() (T, bool) {
	return r.Value, r.Outcome != Absent
}

// Ok reports whether the raw value was converted without failure.
func (r Result[T]) Ok() bool {
	return r.Outcome == Converted
}
