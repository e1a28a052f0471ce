package printing

import (
	"strings"
	"unicode"
)

const maxFilenameRunes = 80

// BriefFilename builds a safe download filename from a project name.
// The result is always of the form "<name>_brief.pdf".
func BriefFilename(projectName string) string {
	name := sanitizeFilename(projectName)
	if name == "" {
		name = "proyecto"
	}
	return name + "_brief.pdf"
}

// sanitizeFilename strips characters that are unsafe inside a
// Content-Disposition filename: path separators, quotes, control
// characters and header-breaking punctuation. Whitespace runs are
// collapsed to a single underscore.
func sanitizeFilename(s string) string {
	var b strings.Builder
	lastUnderscore := false

	for _, r := range s {
		switch {
		case unicode.IsControl(r):
			continue
		case strings.ContainsRune(`/\:*?"'<>|;%`, r):
			continue
		case unicode.IsSpace(r):
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		default:
			b.WriteRune(r)
			lastUnderscore = false
		}
	}

	name := strings.Trim(b.String(), "._")

	runes := []rune(name)
	if len(runes) > maxFilenameRunes {
		name = strings.Trim(string(runes[:maxFilenameRunes]), "._")
	}

	return name
}
