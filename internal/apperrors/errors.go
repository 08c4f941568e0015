package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// It is detected before any network or database call is made.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNetwork indicates a transport-level failure talking to an upstream API
// (no connectivity, timeout, connection refused). It carries a human-readable
// cause and is always recoverable by user retry.
var ErrNetwork = errors.New("network error")

// ErrServer indicates the upstream API answered but refused the request:
// an HTTP status outside 200-299, or a success:false envelope. The message is
// taken from the embedded error info when present.
var ErrServer = errors.New("server error")

// ErrDecode indicates the upstream response body does not match the expected
// shape. Kept distinct from ErrServer so callers can tell "server said no"
// apart from "server said something we can't read".
var ErrDecode = errors.New("decode error")

// ErrCancelled indicates an in-flight request was superseded by a newer one.
// It is never surfaced to the user and must never mutate published state.
var ErrCancelled = errors.New("request cancelled")
