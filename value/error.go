package value

import "fmt"

// ThrownError wraps a thrown FTL value (spec §4.9 throw/catch) so it can
// propagate through ordinary Go error returns until a Catch frame
// intercepts it. Native Command/Function implementations that want to
// throw should return Frame.Throw(v)'s result rather than constructing
// this directly.
type ThrownError struct {
	Value Value
}

func (e *ThrownError) Error() string {
	if e.Value == nil {
		return "thrown: null"
	}
	return fmt.Sprintf("thrown: %s", e.Value.String(nil))
}

// AsThrown reports whether err is (or wraps) a ThrownError, returning
// the carried value.
func AsThrown(err error) (Value, bool) {
	if te, ok := err.(*ThrownError); ok {
		return te.Value, true
	}
	return nil, false
}
