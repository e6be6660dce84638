package field

// Element is the minimal text-input surface a Field binds to. Hosts
// adapt their widget or DOM bridge to this interface; the package never
// assumes anything beyond a readable, writable string value and string
// attributes.
type Element interface {
	Value() string
	SetValue(string)
	// Attr returns the named attribute and whether it is present.
	Attr(name string) (string, bool)
}

// Input is a plain in-memory Element for hosts without a real widget
// tree, and for tests.
type Input struct {
	value string
	attrs map[string]string
}

// NewInput creates an Input with the given attributes. A nil map is
// fine.
func NewInput(attrs map[string]string) *Input {
	return &Input{attrs: attrs}
}

func (i *Input) Value() string { return i.value }

func (i *Input) SetValue(v string) { i.value = v }

func (i *Input) Attr(name string) (string, bool) {
	v, ok := i.attrs[name]
	return v, ok
}
