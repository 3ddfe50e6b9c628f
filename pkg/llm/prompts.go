package llm

import (
	"fmt"
	"strings"
)

// buildDescriptionPrompt asks for a marketing description of a project.
func buildDescriptionPrompt(title string) (prompt string) {
	prompt = fmt.Sprintf(`Generate a high-end, professional, and slightly futuristic description for a project titled %q.
Focus on innovation, technology stack, and user experience.
Keep it between 100-150 words. Format it as plain text.`, title)

	return prompt
}

// buildActivitySummaryPrompt asks for a one-sentence digest of admin activity.
func buildActivitySummaryPrompt(lines []string) (prompt string) {
	prompt = fmt.Sprintf(`Summarize the following system logs into a single brief sentence focused on security and activity:

%s`, strings.Join(lines, "\n"))

	return prompt
}
