package numformat

import (
	"fmt"
	"strings"
)

// Check validates a complete field value against the configuration.
// This is the lazy path: the whole value must form a syntactically
// valid number. An empty value passes; an empty field is not an entry
// error. Returned errors wrap ErrMalformed.
func Check(value string, cfg Config) error {
	if value == "" {
		return nil
	}

	rest := value
	if strings.HasPrefix(rest, "-") {
		if !cfg.Negative {
			return fmt.Errorf("%w: negative sign not allowed", ErrMalformed)
		}
		rest = rest[1:]
		if rest == "" {
			return fmt.Errorf("%w: sign without digits", ErrMalformed)
		}
	}

	intPart, fracPart, hasSep := strings.Cut(rest, string(cfg.Decimal))
	if hasSep {
		if strings.ContainsRune(fracPart, cfg.Decimal) {
			return fmt.Errorf("%w: more than one %q separator", ErrMalformed, cfg.Decimal)
		}
		if fracPart == "" {
			return fmt.Errorf("%w: no digits after separator", ErrMalformed)
		}
		if cfg.Places >= 0 && len(fracPart) > cfg.Places {
			return fmt.Errorf("%w: more than %d decimal places", ErrMalformed, cfg.Places)
		}
	}
	if intPart == "" && !hasSep {
		return fmt.Errorf("%w: no digits", ErrMalformed)
	}

	for _, part := range []string{intPart, fracPart} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return fmt.Errorf("%w: unexpected character %q", ErrMalformed, r)
			}
		}
	}
	return nil
}

// CheckRune reports whether typing r after prefix is legal. This is
// the live path: a rune can be legal even when the value so far is not
// a well-formed number yet (a bare "-" while typing "-5").
func CheckRune(r rune, prefix string, cfg Config) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '-':
		return cfg.Negative && prefix == ""
	case r == cfg.Decimal:
		return !strings.ContainsRune(prefix, cfg.Decimal)
	default:
		return false
	}
}

// Strip removes every character Check would reject: anything that is
// not a digit, a leading sign (when allowed), or the first decimal
// separator (when enabled). Excess fraction digits are truncated when a
// place limit is set.
func Strip(value string, cfg Config) string {
	var b strings.Builder
	b.Grow(len(value))

	seenSep := false
	fracDigits := 0
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			if seenSep {
				if cfg.Places >= 0 && fracDigits >= cfg.Places {
					continue
				}
				fracDigits++
			}
			b.WriteRune(r)
		case r == '-':
			if cfg.Negative && b.Len() == 0 {
				b.WriteRune(r)
			}
		case r == cfg.Decimal:
			// A zero-place limit makes the separator itself dead weight.
			if !seenSep && cfg.Places != 0 {
				seenSep = true
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
