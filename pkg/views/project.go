package views

import (
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Describer drafts a project description from its title.
type Describer interface {
	GenerateProjectDescription(ctx context.Context, title string) (description string)
}

// ProjectEditor holds the draft of a project and can ask a Describer for
// its description.
type ProjectEditor struct {
	Title       string
	Description string
	Tags        []string

	describer  Describer
	logger     *zap.Logger
	generating bool
}

// NewProjectEditor creates an editor for a new project titled title.
func NewProjectEditor(title string, describer Describer, logger *zap.Logger) (editor *ProjectEditor) {
	if logger == nil {
		logger = zap.NewNop()
	}
	editor = &ProjectEditor{
		Title:     title,
		describer: describer,
		logger:    logger.Named("project"),
	}
	return editor
}

// Generating reports whether a description is being drafted.
func (p *ProjectEditor) Generating() (generating bool) {
	generating = p.generating
	return generating
}

// GenerateDescription replaces the description with a drafted one. It does
// nothing when the title is blank or no describer is configured.
func (p *ProjectEditor) GenerateDescription(ctx context.Context) (generated bool) {
	title := strings.TrimSpace(p.Title)
	if title == "" || p.describer == nil {
		return generated
	}

	p.generating = true
	defer func() { p.generating = false }()

	p.logger.Debug("drafting description", zap.String("title", title))
	p.Description = p.describer.GenerateProjectDescription(ctx, title)

	generated = true
	return generated
}

// AddTag appends tag in upper case unless it is blank or already present.
func (p *ProjectEditor) AddTag(tag string) (added bool) {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" || slices.Contains(p.Tags, tag) {
		return added
	}

	p.Tags = append(p.Tags, tag)
	added = true
	return added
}

// RemoveTag drops tag if present.
func (p *ProjectEditor) RemoveTag(tag string) (removed bool) {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	index := slices.Index(p.Tags, tag)
	if index < 0 {
		return removed
	}

	p.Tags = slices.Delete(p.Tags, index, index+1)
	removed = true
	return removed
}
