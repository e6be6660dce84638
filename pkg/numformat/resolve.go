package numformat

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Layer is one loosely-typed configuration source, e.g. a decoded
// data-attribute payload or a caller-supplied override map. Values are
// coerced permissively during Resolve; anything that does not coerce
// falls back to the base configuration for that key.
type Layer map[string]any

// Layer keys. They mirror the attribute payload field names.
const (
	KeyNegative         = "negative"
	KeyDecimal          = "decimal"
	KeyDecimalPlaces    = "decimalPlaces"
	KeyDelegateRemoval  = "delegateRemoval"
	KeyDelegateRealtime = "delegateRealtime"
)

// Resolve merges override layers on top of the base configuration.
// Later layers win for keys they both set. Invalid values never
// propagate: a key that fails coercion resolves to the base value, so
// malformed configuration degrades silently instead of erroring.
func Resolve(base Config, layers ...Layer) Config {
	merged := make(Layer)
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}

	cfg := base
	if v, ok := merged[KeyNegative]; ok {
		cfg.Negative = coerceBool(v, base.Negative)
	}
	if v, ok := merged[KeyDecimal]; ok {
		cfg.Decimal = coerceDecimal(v, base.Decimal)
	}
	if v, ok := merged[KeyDecimalPlaces]; ok {
		cfg.Places = coercePlaces(v)
	}
	if v, ok := merged[KeyDelegateRemoval]; ok {
		cfg.StripInvalid = coerceBool(v, base.StripInvalid)
	}
	if v, ok := merged[KeyDelegateRealtime]; ok {
		cfg.Realtime = coerceBool(v, base.Realtime)
	}
	return cfg
}

// ParseAttr decodes an element attribute payload (a JSON object) into a
// Layer. Malformed payloads yield an empty Layer; attribute typos must
// never break the page the field lives on.
func ParseAttr(raw string) Layer {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Layer{}
	}

	var layer Layer
	if err := json.Unmarshal([]byte(raw), &layer); err != nil {
		return Layer{}
	}
	return layer
}

func coerceBool(v any, fallback bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return fallback
}

// coerceDecimal accepts boolean true (resolves to '.'), a rune, or a
// single-character string. Everything else keeps the fallback.
func coerceDecimal(v any, fallback rune) rune {
	switch d := v.(type) {
	case bool:
		if d {
			return '.'
		}
		return fallback
	case rune:
		return d
	case string:
		if utf8.RuneCountInString(d) != 1 {
			return fallback
		}
		r, _ := utf8.DecodeRuneInString(d)
		return r
	default:
		return fallback
	}
}

// coercePlaces accepts anything that round-trips through integer
// coercion; true and everything non-coercible resolve to unlimited.
func coercePlaces(v any) int {
	switch n := v.(type) {
	case bool:
		return UnlimitedPlaces
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float32:
		return coercePlaces(float64(n))
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return UnlimitedPlaces
		}
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return UnlimitedPlaces
		}
		return i
	default:
		return UnlimitedPlaces
	}
}
