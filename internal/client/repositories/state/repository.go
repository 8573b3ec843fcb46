// Package state persists small key/value items for the client, such as the
// current session token and email, in a local SQLite database.
package state

import "context"

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
