package numformat

import "errors"

// ErrMalformed is returned by Check when a value is not a syntactically
// valid number under the resolved configuration. It signals a normal
// validation outcome, not a system failure.
var ErrMalformed = errors.New("numformat: value is not a valid number")
