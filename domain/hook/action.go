package hook

// NamedAction is a string-named dispatch target, decoded directly from
// a bare JSON string rather than a nested object.
type NamedAction string
