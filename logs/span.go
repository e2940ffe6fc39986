package logs

// Span identifies one machine run across log records and errors.
type Span string

type spanKey struct{}

var SpanKey spanKey
