package proxy

// Absent stands in for a key that does not exist, at any depth of a
// navigation chain. Every coercion yields a zero value and every
// navigation yields the receiver, so chains through missing keys never
// fail. Absent carries no state; all values are interchangeable.
type Absent struct{}

// NoValue is the shared Absent value returned for missing keys.
var NoValue = Absent{}

// IsAbsent reports whether v is Absent or a Go nil.
func IsAbsent(v any) bool {
	return KindOf(v) == AbsentKind
}

func (a Absent) Get(key any) any { return a }
func (a Absent) Set(key any, v any) {}
func (a Absent) Index(i int) any { return a }
func (a Absent) Has(key any) bool { return false }
func (a Absent) RespondsTo(string) bool { return false }

// Dispatch returns the receiver for any name, setters included.
func (a Absent) Dispatch(name string, args ...any) (any, error) {
	return a, nil
}

// Slice returns an empty, non-nil slice.
func (a Absent) Slice() []any { return []any{} }

// String returns "".
func (a Absent) String() string { return "" }

func (a Absent) Float64() float64 { return 0.0 }
func (a Absent) Int() int { return 0 }
func (a Absent) Int64() int64 { return 0 }

func (a Absent) IsAbsent() bool { return true }
func (a Absent) IsNil() bool { return true }
func (a Absent) IsEmpty() bool { return true }
func (a Absent) IsBlank() bool { return true }

func (a Absent) Size() int { return 0 }
func (a Absent) Keys() []string { return []string{} }
func (a Absent) Values() []any { return []any{} }

func (a Absent) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (a Absent) MarshalYAML() (any, error) {
	return nil, nil
}
