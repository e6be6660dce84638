package notify

import "errors"

// ErrEmitterClosed is returned by Publish after Close.
var ErrEmitterClosed = errors.New("notify: emitter is closed")
