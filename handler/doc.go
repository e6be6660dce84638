// Package handler exposes the numeric format checks over HTTP for
// hosts that want server-side confirmation of what the client-side
// binding reported. Field rules come from a YAML schema and resolve
// through the same layer merge as element attributes, so both sides of
// the wire agree on what a valid entry is.
package handler
