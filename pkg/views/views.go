// Package views holds the state behind each dashboard screen.
//
// A view loads its data through the API client, tracks loading and failure,
// and for the editable resources runs the add/edit/delete workflow. Views
// never print; the render package turns their state into terminal output.
package views

import (
	"context"

	"go.uber.org/zap"

	"github.com/faftech/portfolio-admin/pkg/activity"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(message string) (ok bool)
}

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

// TokenSource supplies the bearer token at the moment of each mutation.
type TokenSource interface {
	Token() (token string)
}

// Recorder appends to the activity log.
type Recorder interface {
	Record(ctx context.Context, entry activity.Entry) (saved activity.Entry, err error)
}

// ActivityLister reads the activity log.
type ActivityLister interface {
	Recent(ctx context.Context, limit int) (entries []activity.Entry, err error)
}

// Deps are the collaborators shared by the editors.
type Deps struct {
	Tokens    TokenSource
	Confirmer Confirmer
	Alerter   Alerter
	Recorder  Recorder
	Logger    *zap.Logger
}

func (d Deps) logger() (logger *zap.Logger) {
	logger = d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Mode is the editor state.
type Mode int

const (
	// ModeIdle shows the list.
	ModeIdle Mode = iota
	// ModeEditing has the add/edit form open.
	ModeEditing
)

func (m Mode) String() (name string) {
	switch m {
	case ModeEditing:
		name = "editing"
	default:
		name = "idle"
	}
	return name
}

// AutoConfirm answers every question with a fixed value.
type AutoConfirm bool

// Confirm returns the fixed answer.
func (a AutoConfirm) Confirm(string) (ok bool) {
	ok = bool(a)
	return ok
}

// StaticToken is a TokenSource with a fixed value.
type StaticToken string

// Token returns the fixed token.
func (s StaticToken) Token() (token string) {
	token = string(s)
	return token
}
