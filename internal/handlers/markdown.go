// File: internal/handlers/markdown.go
package handlers

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// renderMessageHTML prepares a message body for the chat view. Assistant
// replies come back as markdown and are converted; user text is just escaped.
func renderMessageHTML(role, content string) string {
	if role != "assistant" {
		return "<p>" + template.HTMLEscapeString(content) + "</p>"
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		return "<p>" + template.HTMLEscapeString(content) + "</p>"
	}
	return buf.String()
}
