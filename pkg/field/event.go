package field

import (
	"github.com/dmitrymomot/numentry/pkg/notify"
	"github.com/dmitrymomot/numentry/pkg/numformat"
)

// Code is a validation outcome.
type Code int

const (
	// CodeInvalid marks a value that is not a valid number.
	CodeInvalid Code = iota
	// CodeValid marks a value that passed validation.
	CodeValid
)

// Topic base names the dispatcher publishes under.
const (
	TopicValid   = "entry_valid"
	TopicInvalid = "entry_invalid"
)

// defaultMessages is the outcome message table, indexed by Code.
var defaultMessages = [2]string{
	CodeInvalid: "entry is not a valid number",
	CodeValid:   "entry is a valid number",
}

// DefaultMessage returns the built-in message for an outcome code.
func DefaultMessage(code Code) string {
	if code != CodeInvalid && code != CodeValid {
		return ""
	}
	return defaultMessages[code]
}

// ElementState is a snapshot of the bound element at dispatch time.
type ElementState struct {
	// Value is the field content the outcome refers to.
	Value string
	// Ref is the bound element itself.
	Ref Element
	// Config is the configuration the value was checked against.
	Config numformat.Config
}

// Event carries one validation outcome. Instances are built fresh per
// validation cycle and handed to subscribers and callbacks; they are
// not retained by the field.
type Event struct {
	Code    Code
	Message string
	Topic   notify.Topic
	Element ElementState
}

// Callback is invoked with the bound field and the outcome event after
// a validation cycle. Its return value becomes the dispatch result.
type Callback func(f *Field, e Event) any
