package brief

import (
	"strings"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/brief"
)

// systemPrompt instructs the model on the role and output structure
const systemPrompt = `You are a senior marketing strategist. You write clear, ` +
	`actionable creative briefs for marketing and communication projects. ` +
	`Structure your answer in sections with markdown headings (## Section). ` +
	`Always include at least: Resumen ejecutivo, Objetivos, Publico objetivo, ` +
	`Mensaje y tono, Canales y formatos, Entregables, Plan y plazos. ` +
	`Write in the same language as the answers provided.`

// BuildPrompt assembles the user prompt from the questionnaire answers.
// Only answered fields appear in the prompt; empty fields are omitted
// entirely rather than rendered as blank lines.
func BuildPrompt(form brief.BriefForm) string {
	fields := form.AnsweredFields()

	var b strings.Builder
	b.WriteString("Create a complete creative brief based on the following project information:\n")
	for _, f := range fields {
		b.WriteString("\n- ")
		b.WriteString(f.Label)
		b.WriteString(": ")
		b.WriteString(f.Value)
	}
	b.WriteString("\n\nExpand thin areas with sensible recommendations and keep the brief practical.")

	return b.String()
}
