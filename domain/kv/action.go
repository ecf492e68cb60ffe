package kv

// NamedAction is a string-named dispatch target used throughout this
// domain's tests; it marshals/unmarshals as a bare JSON string
// (e.g. "action": "allow"), not a nested object.
type NamedAction string
