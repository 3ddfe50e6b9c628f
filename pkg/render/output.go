package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format selects how commands print their results.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --output value.
func ParseFormat(value string) (format Format, err error) {
	format = Format(strings.ToLower(strings.TrimSpace(value)))
	switch format {
	case "":
		format = FormatText
	case FormatText, FormatJSON, FormatYAML:
	default:
		err = errors.Errorf("unknown output format %q (want text, json or yaml)", value)
	}
	return format, err
}

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, format Format, v interface{}) (err error) {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
		if err != nil {
			err = errors.Wrap(err, "failed to encode JSON output")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(v)
		if err != nil {
			err = errors.Wrap(err, "failed to encode YAML output")
			return err
		}
		err = enc.Close()
	default:
		err = errors.Errorf("format %q is not a data format", format)
	}
	return err
}

// Markdown renders text for the terminal, wrapped at width.
func Markdown(text string, width int) (out string, err error) {
	var renderer *glamour.TermRenderer
	renderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		err = errors.Wrap(err, "failed to create markdown renderer")
		return out, err
	}

	out, err = renderer.Render(text)
	if err != nil {
		err = errors.Wrap(err, "failed to render markdown")
		return out, err
	}

	return out, err
}
