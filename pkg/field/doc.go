// Package field binds numeric input constraints to a text-input-like
// element and dispatches validation outcomes.
//
// A Field is created with Bind, which resolves its configuration once
// from three sources (defaults, a caller layer, the element's
// data-numeric-options attribute) and never reconfigures afterwards.
// The host drives the field from its own event wiring:
//
//	emitter := notify.NewEmitter[field.Event]()
//	f := field.Bind(el,
//	    field.WithConfig(numformat.Layer{"decimalPlaces": 2}),
//	    field.WithContext("pricing"),
//	    field.WithEmitter(emitter),
//	    field.WithOnInvalid(func(f *field.Field, e field.Event) any {
//	        return e.Message
//	    }),
//	).Init()
//
//	// host event loop
//	f.Keystroke() // after each live edit
//	f.Change()    // on change / focus loss
//
// Each qualifying event first runs change detection against the last
// recorded value; an unchanged value is a cheap no-op. A changed value
// is validated on the live path (per-character legality, optional
// stripping of illegal characters) or the lazy path (whole-value
// syntax), and the outcome is published as an Event under
// "numentry.entry_valid" or "numentry.entry_invalid", optionally
// suffixed with the field's context label, then handed to the matching
// callback.
//
// Nothing in this package raises on misuse: a nil element, malformed
// attribute configuration, or absent callbacks all degrade to no-ops. A
// misbehaving form field must never take the hosting page down with it.
package field
