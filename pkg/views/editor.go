package views

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/faftech/portfolio-admin/pkg/activity"
	"github.com/faftech/portfolio-admin/pkg/api"
)

// ErrNotEditing is returned by Submit when no form is open.
var ErrNotEditing = errors.New("no form is open")

// Resource adapts one editable backend resource of entity T and form F.
type Resource[T any, F any] interface {
	// Name is the plural resource name, e.g. "articles".
	Name() (name string)
	// Noun is the singular used in prompts and alerts, e.g. "article".
	Noun() (noun string)
	List(ctx context.Context) (items []T, err error)
	Create(ctx context.Context, form F, token string) (raw json.RawMessage, err error)
	Update(ctx context.Context, id string, form F, token string) (raw json.RawMessage, err error)
	Delete(ctx context.Context, id, token string) (err error)
	ID(item T) (id string)
	// Label identifies an item in the activity log.
	Label(item T) (label string)
	// Form pre-fills a form from an existing item.
	Form(item T) (form F)
	// Blank returns the empty add form.
	Blank() (form F)
	// Prepare normalizes and validates a form before it is sent.
	Prepare(form F) (prepared F, err error)
}

// Editor runs the add/edit/delete workflow for one resource.
type Editor[T any, F any] struct {
	*ListView[T]

	resource Resource[T, F]
	deps     Deps
	logger   *zap.Logger

	mode       Mode
	form       F
	selected   *T
	lastResult json.RawMessage
}

// NewEditor creates an idle editor for resource.
func NewEditor[T any, F any](resource Resource[T, F], deps Deps) (editor *Editor[T, F]) {
	logger := deps.logger()
	if deps.Tokens == nil {
		deps.Tokens = StaticToken("")
	}
	if deps.Confirmer == nil {
		deps.Confirmer = AutoConfirm(false)
	}

	editor = &Editor[T, F]{
		ListView: NewListView(resource.Name(), resource.List, logger),
		resource: resource,
		deps:     deps,
		logger:   logger.Named("editor").With(zap.String("resource", resource.Name())),
		mode:     ModeIdle,
		form:     resource.Blank(),
	}
	return editor
}

// Mode returns the current state.
func (e *Editor[T, F]) Mode() (mode Mode) {
	mode = e.mode
	return mode
}

// Form returns the form being edited.
func (e *Editor[T, F]) Form() (form F) {
	form = e.form
	return form
}

// SetForm replaces the form being edited.
func (e *Editor[T, F]) SetForm(form F) {
	e.form = form
}

// Selected returns the item being edited, if any.
func (e *Editor[T, F]) Selected() (item T, ok bool) {
	if e.selected != nil {
		item = *e.selected
		ok = true
	}
	return item, ok
}

// LastResult returns the raw backend response of the last successful save.
func (e *Editor[T, F]) LastResult() (raw json.RawMessage) {
	raw = e.lastResult
	return raw
}

// OpenAdd opens an empty form with nothing selected.
func (e *Editor[T, F]) OpenAdd() {
	e.selected = nil
	e.form = e.resource.Blank()
	e.mode = ModeEditing
}

// OpenEdit opens the form pre-filled from item.
func (e *Editor[T, F]) OpenEdit(item T) {
	selected := item
	e.selected = &selected
	e.form = e.resource.Form(item)
	e.mode = ModeEditing
}

// Cancel closes the form and clears the selection.
func (e *Editor[T, F]) Cancel() {
	e.selected = nil
	e.form = e.resource.Blank()
	e.mode = ModeIdle
}

// Submit creates or updates depending on the selection. On success the form
// closes and the list is reloaded. On failure the form stays open and the
// user is alerted.
func (e *Editor[T, F]) Submit(ctx context.Context) (err error) {
	if e.mode != ModeEditing {
		err = ErrNotEditing
		return err
	}

	noun := e.resource.Noun()

	var form F
	form, err = e.resource.Prepare(e.form)
	if err != nil {
		e.alert(fmt.Sprintf("Cannot save %s: %v", noun, err))
		return err
	}
	e.form = form

	action := "Created"
	label := ""
	token := e.deps.Tokens.Token()

	var raw json.RawMessage
	if e.selected != nil {
		action = "Updated"
		label = e.resource.Label(*e.selected)
		raw, err = e.resource.Update(ctx, e.resource.ID(*e.selected), form, token)
	} else {
		raw, err = e.resource.Create(ctx, form, token)
	}

	if err != nil {
		e.logger.Error("failed to save", zap.String("action", action), zap.Error(err))
		e.record(ctx, action, label, err)
		e.alert(failureMessage("save", noun, err))
		return err
	}

	if label == "" {
		label = labelFromRaw(raw)
	}
	e.record(ctx, action, label, nil)

	e.lastResult = raw
	e.selected = nil
	e.form = e.resource.Blank()
	e.mode = ModeIdle
	e.Load(ctx)

	return err
}

// Delete asks for confirmation and deletes the item with id. A declined
// confirmation makes no request and returns false.
func (e *Editor[T, F]) Delete(ctx context.Context, id string) (deleted bool, err error) {
	noun := e.resource.Noun()

	if !e.deps.Confirmer.Confirm(fmt.Sprintf("Delete this %s?", noun)) {
		return deleted, err
	}

	label := id
	for _, item := range e.Items() {
		if e.resource.ID(item) == id {
			label = e.resource.Label(item)
			break
		}
	}

	err = e.resource.Delete(ctx, id, e.deps.Tokens.Token())
	if err != nil {
		e.logger.Error("failed to delete", zap.String("id", id), zap.Error(err))
		e.record(ctx, "Deleted", label, err)
		e.alert(failureMessage("delete", noun, err))
		return deleted, err
	}

	deleted = true
	e.record(ctx, "Deleted", label, nil)
	e.Load(ctx)

	return deleted, err
}

func (e *Editor[T, F]) alert(message string) {
	if e.deps.Alerter != nil {
		e.deps.Alerter.Alert(message)
	}
}

func (e *Editor[T, F]) record(ctx context.Context, action, label string, failure error) {
	if e.deps.Recorder == nil {
		return
	}

	status := activity.StatusSuccess
	switch {
	case api.IsAuth(failure):
		status = activity.StatusBlocked
	case failure != nil:
		status = activity.StatusFailed
	}

	if label == "" {
		label = e.resource.Name()
	}

	_, err := e.deps.Recorder.Record(ctx, activity.Entry{
		Action:   action + " " + titleNoun(e.resource.Noun()),
		Resource: label,
		Status:   status,
	})
	if err != nil {
		e.logger.Warn("failed to record activity", zap.Error(err))
	}
}

// failureMessage picks the alert text for a failed mutation.
func failureMessage(verb, noun string, err error) (message string) {
	prefix := fmt.Sprintf("Failed to %s %s.", verb, noun)

	switch api.KindOf(err) {
	case api.KindAuth:
		message = prefix + " Make sure you are logged in."
	case api.KindNetwork:
		message = prefix + " Could not reach the backend."
	case api.KindValidation:
		message = prefix + " The backend rejected the data."
	default:
		message = fmt.Sprintf("%s %v", prefix, err)
	}
	return message
}

// labelFromRaw pulls a readable identifier out of a write response.
func labelFromRaw(raw json.RawMessage) (label string) {
	var fields map[string]interface{}
	if json.Unmarshal(raw, &fields) != nil {
		return label
	}

	for _, key := range []string{"slug", "title", "name", "id"} {
		if value, ok := fields[key].(string); ok && value != "" {
			label = value
			return label
		}
	}
	return label
}
