// Package gateway is the client's HTTP access layer for the account server.
// It normalizes every failure into a small error taxonomy so the rest of
// the client never inspects HTTP responses directly.
package gateway

import "context"

// Kind classifies a gateway failure.
type Kind int

const (
	// KindTransport means no HTTP response was received at all.
	KindTransport Kind = iota
	// KindValidation means the server rejected the input (422).
	KindValidation
	// KindUnauthenticated means the server rejected the credentials (401).
	KindUnauthenticated
	// KindServer covers any other non-2xx response.
	KindServer
)

// Error is the single failure type returned by Gateway implementations.
// Message carries the first server-provided error string when there is one.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Gateway performs account operations against the server. Implementations
// must not mutate local session state; reacting to an expired session is
// the caller's policy, optionally via OnUnauthenticated.
type Gateway interface {
	Register(ctx context.Context, email, password string) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, err error)
	UpdatePassword(ctx context.Context, currentPassword, newPassword, confirmation string) error
	DeleteAccount(ctx context.Context, currentPassword string) error
	Ping(ctx context.Context) error
}
