package middleware

// contextKey is the type of values stored by this package in request and gin contexts.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

// requestIDHeader carries the request ID; an incoming value is reused.
const requestIDHeader = "X-Request-ID"
