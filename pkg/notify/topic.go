package notify

// Namespace prefixes every topic string so listeners can distinguish
// these events from anything else flowing through a shared bus.
const Namespace = "numentry"

// Topic is a structured event key: a base event name plus an optional
// context label for finer-grained subscription. Subscribers to a bare
// base receive every context of that base; subscribers with a context
// receive only matching publishes.
type Topic struct {
	Base    string
	Context string
}

// String renders the dotted wire form, "numentry.<base>" or
// "numentry.<base>.<context>".
func (t Topic) String() string {
	s := Namespace + "." + t.Base
	if t.Context != "" {
		s += "." + t.Context
	}
	return s
}

// matches reports whether a subscription made with t receives a message
// published under published.
func (t Topic) matches(published Topic) bool {
	if t.Base != published.Base {
		return false
	}
	return t.Context == "" || t.Context == published.Context
}
