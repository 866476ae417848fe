package settings

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a setting key has no value.
var ErrNotFound = errors.New("setting not found")

// Repo is a tiny key-value collection for planning-wide settings such as
// the shared active day.
type Repo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
