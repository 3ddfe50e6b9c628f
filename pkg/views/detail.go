package views

import (
	"context"

	"go.uber.org/zap"
)

// Getter loads the value of a detail view.
type Getter[T any] func(ctx context.Context) (value T, err error)

// DetailView is a read-only single-record screen such as the profile.
type DetailView[T any] struct {
	name    string
	get     Getter[T]
	logger  *zap.Logger
	value   T
	loading bool
	loaded  bool
	err     error
}

// NewDetailView creates a detail view in the loading state.
func NewDetailView[T any](name string, get Getter[T], logger *zap.Logger) (view *DetailView[T]) {
	if logger == nil {
		logger = zap.NewNop()
	}
	view = &DetailView[T]{
		name:    name,
		get:     get,
		logger:  logger.Named("views"),
		loading: true,
	}
	return view
}

// Load fetches the value. On failure the previous value is dropped.
func (v *DetailView[T]) Load(ctx context.Context) {
	v.loading = true

	value, err := v.get(ctx)
	v.loading = false
	if err != nil {
		v.logger.Error("failed to load record", zap.String("view", v.name), zap.Error(err))
		var zero T
		v.value = zero
		v.loaded = false
		v.err = err
		return
	}

	v.value = value
	v.loaded = true
	v.err = nil
}

// Name returns the resource name.
func (v *DetailView[T]) Name() (name string) {
	name = v.name
	return name
}

// Value returns the loaded value, or the zero value.
func (v *DetailView[T]) Value() (value T) {
	value = v.value
	return value
}

// Loading reports whether a load is pending.
func (v *DetailView[T]) Loading() (loading bool) {
	loading = v.loading
	return loading
}

// Loaded reports whether a value is available.
func (v *DetailView[T]) Loaded() (loaded bool) {
	loaded = v.loaded
	return loaded
}

// Err returns the last load error, for diagnostics only.
func (v *DetailView[T]) Err() (err error) {
	err = v.err
	return err
}
