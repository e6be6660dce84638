package numformat

// UnlimitedPlaces disables the decimal-place limit.
const UnlimitedPlaces = -1

// Config is a fully-resolved numeric input format. Every field holds a
// valid value after resolution; instances are treated as immutable once
// a field is bound to them.
type Config struct {
	// Negative allows a single leading minus sign.
	Negative bool
	// Decimal is the character accepted as the decimal separator.
	Decimal rune
	// Places limits the number of digits after the separator.
	// UnlimitedPlaces (or any negative value) means no limit.
	Places int
	// StripInvalid makes the bound field rewrite the element value,
	// removing illegal characters, instead of only reporting them.
	StripInvalid bool
	// Realtime enables validation on keystroke-level events in
	// addition to change/blur events.
	Realtime bool
}

// Default returns the built-in configuration: negative values allowed,
// '.' separator, unlimited decimal places, strip and realtime enabled.
func Default() Config {
	return Config{
		Negative:     true,
		Decimal:      '.',
		Places:       UnlimitedPlaces,
		StripInvalid: true,
		Realtime:     true,
	}
}
