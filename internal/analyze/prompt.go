// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"bytes"
	"text/template"
)

// systemPromptTmpl is the fixed system instruction sent with every analysis
// request. It pins the response language, forbids conversational framing,
// and dictates the exact five-section markdown template with stable
// requirement IDs. Adherence is best effort: the model's answer is returned
// as-is and never validated against the template.
var systemPromptTmpl = template.Must(template.New("system").Parse(`You are a requirements engineering bot.

RULES:
1. ALWAYS answer in {{.Language}}.
2. No introductions or sign-offs ("Here is the result...").
3. Use ONLY the following markdown format for the answer:

# Analysis Report

## 1. Summary
[A short summary of the content]

## 2. Functional Requirements
- [REQ-F-01] [Requirement text]
- [REQ-F-02] [Requirement text]

## 3. Non-Functional Requirements
- [REQ-N-01] [Requirement text]

## 4. Open Questions / Risks
- [Text]`))

// userPrefix labels the document text inside the user message.
const userPrefix = "Input Text:\n\n"

// systemPrompt renders the system instruction for the given response language.
func systemPrompt(language string) (string, error) {
	var buf bytes.Buffer
	if err := systemPromptTmpl.Execute(&buf, struct{ Language string }{Language: language}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
