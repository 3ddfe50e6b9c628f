package llm

import (
	"strings"
	"testing"
)

func TestBuildDescriptionPrompt(t *testing.T) {
	prompt := buildDescriptionPrompt("NeuralPath AI")

	if !strings.Contains(prompt, `"NeuralPath AI"`) {
		t.Error("Prompt should contain the quoted project title")
	}

	if !strings.Contains(prompt, "100-150 words") {
		t.Error("Prompt should bound the description length")
	}

	if !strings.Contains(prompt, "plain text") {
		t.Error("Prompt should request plain text output")
	}
}

func TestBuildDescriptionPromptEscapesQuotes(t *testing.T) {
	prompt := buildDescriptionPrompt(`The "Best" App`)

	if !strings.Contains(prompt, `"The \"Best\" App"`) {
		t.Errorf("Prompt should escape embedded quotes: %s", prompt)
	}
}

func TestBuildActivitySummaryPrompt(t *testing.T) {
	lines := []string{"Created article by admin", "Deleted skill by admin (blocked)"}
	prompt := buildActivitySummaryPrompt(lines)

	for _, line := range lines {
		if !strings.Contains(prompt, line) {
			t.Errorf("Prompt should contain %q", line)
		}
	}

	if !strings.Contains(prompt, "single brief sentence") {
		t.Error("Prompt should ask for a single sentence")
	}
}
