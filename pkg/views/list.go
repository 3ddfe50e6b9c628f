package views

import (
	"context"

	"go.uber.org/zap"
)

// Fetcher loads the items of a list view.
type Fetcher[T any] func(ctx context.Context) (items []T, err error)

// ListView is a read-only list screen. Read failures are logged and leave
// the list empty; they are never shown to the user.
type ListView[T any] struct {
	name    string
	fetch   Fetcher[T]
	logger  *zap.Logger
	items   []T
	loading bool
	loaded  bool
	err     error
}

// NewListView creates a list named name (used in diagnostics and
// placeholders). The view starts in the loading state.
func NewListView[T any](name string, fetch Fetcher[T], logger *zap.Logger) (view *ListView[T]) {
	if logger == nil {
		logger = zap.NewNop()
	}
	view = &ListView[T]{
		name:    name,
		fetch:   fetch,
		logger:  logger.Named("views"),
		loading: true,
	}
	return view
}

// Load fetches the list, replacing the current items.
func (v *ListView[T]) Load(ctx context.Context) {
	v.loading = true

	items, err := v.fetch(ctx)
	v.loading = false
	if err != nil {
		v.logger.Error("failed to load list", zap.String("view", v.name), zap.Error(err))
		v.items = nil
		v.err = err
		return
	}

	v.items = items
	v.loaded = true
	v.err = nil
}

// Name returns the resource name.
func (v *ListView[T]) Name() (name string) {
	name = v.name
	return name
}

// Items returns the loaded items.
func (v *ListView[T]) Items() (items []T) {
	items = v.items
	return items
}

// Count returns the number of loaded items.
func (v *ListView[T]) Count() (count int) {
	count = len(v.items)
	return count
}

// Loading reports whether a load is pending.
func (v *ListView[T]) Loading() (loading bool) {
	loading = v.loading
	return loading
}

// Loaded reports whether the last load succeeded.
func (v *ListView[T]) Loaded() (loaded bool) {
	loaded = v.loaded && v.err == nil
	return loaded
}

// Failed reports whether the last load failed.
func (v *ListView[T]) Failed() (failed bool) {
	failed = v.err != nil
	return failed
}

// Err returns the last load error, for diagnostics only.
func (v *ListView[T]) Err() (err error) {
	err = v.err
	return err
}
