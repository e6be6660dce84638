// Package numformat resolves numeric input format configuration and
// checks field values against it.
//
// Configuration arrives from up to three sources with a fixed override
// order: built-in (or environment-tuned) defaults, a caller-supplied
// override Layer, and an element-attribute Layer parsed from a JSON
// payload. Resolve merges them permissively: a value of the wrong type
// never produces an error, it simply resolves to the default for that
// key. Malformed configuration must never break the form it decorates.
//
//	cfg := numformat.Resolve(numformat.FromEnv(),
//	    numformat.Layer{"negative": false},
//	    numformat.ParseAttr(`{"decimalPlaces": 2}`),
//	)
//	err := numformat.Check("-12.50", cfg)
//
// Check is the lazy, whole-value validation used on change/blur.
// CheckRune is the live, per-character legality test used on
// keystrokes, and Strip rewrites a value keeping only legal characters.
// All functions are pure and safe for concurrent use.
package numformat
