package brief

import (
	"strings"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	"github.com/google/uuid"
)

// BriefForm holds the questionnaire answers a brief is generated from.
// Only ProjectName, MainGoal and TargetAudience are mandatory; every
// other field may be left empty and is then omitted from the prompt.
type BriefForm struct {
	ProjectName          string
	ClientName           string
	StartDate            string
	DeliveryDate         string
	Website              string
	MainGoal             string
	SecondaryGoals       string
	CurrentSituation     string
	Challenges           string
	TargetAudience       string
	AudienceNeeds        string
	MainMessage          string
	Differentiation      string
	Tone                 string
	Channels             []string
	DeliverableFormats   []string
	ExpectedDeliverables string
	Limitations          string
	Competitors          string
	ReferenceLinks       string
	Budget               string
	Resources            string
	Milestones           string
	Deadlines            string
	Restrictions         string
	Notes                string
	BrandingLinks        string
}

// FormField is one answered questionnaire entry
type FormField struct {
	Label string
	Value string
}

// Validate checks the mandatory questionnaire fields
func (f *BriefForm) Validate() error {
	if strings.TrimSpace(f.ProjectName) == "" {
		return shared.NewDomainError("INVALID_FORM", "Project name is required")
	}
	if strings.TrimSpace(f.MainGoal) == "" {
		return shared.NewDomainError("INVALID_FORM", "Main goal is required")
	}
	if strings.TrimSpace(f.TargetAudience) == "" {
		return shared.NewDomainError("INVALID_FORM", "Target audience is required")
	}
	return nil
}

// AnsweredFields returns the non-empty fields in questionnaire order.
// List answers are joined with commas.
func (f *BriefForm) AnsweredFields() []FormField {
	entries := []struct {
		label string
		value string
	}{
		{"Project name", f.ProjectName},
		{"Client name", f.ClientName},
		{"Start date", f.StartDate},
		{"Delivery date", f.DeliveryDate},
		{"Website", f.Website},
		{"Main goal", f.MainGoal},
		{"Secondary goals", f.SecondaryGoals},
		{"Current situation", f.CurrentSituation},
		{"Challenges", f.Challenges},
		{"Target audience", f.TargetAudience},
		{"Audience needs", f.AudienceNeeds},
		{"Main message", f.MainMessage},
		{"Differentiation", f.Differentiation},
		{"Tone", f.Tone},
		{"Channels", strings.Join(f.Channels, ", ")},
		{"Deliverable formats", strings.Join(f.DeliverableFormats, ", ")},
		{"Expected deliverables", f.ExpectedDeliverables},
		{"Limitations", f.Limitations},
		{"Competitors", f.Competitors},
		{"Reference links", f.ReferenceLinks},
		{"Budget", f.Budget},
		{"Resources", f.Resources},
		{"Milestones", f.Milestones},
		{"Deadlines", f.Deadlines},
		{"Restrictions", f.Restrictions},
		{"Notes", f.Notes},
		{"Branding links", f.BrandingLinks},
	}

	fields := make([]FormField, 0, len(entries))
	for _, e := range entries {
		if v := strings.TrimSpace(e.value); v != "" {
			fields = append(fields, FormField{Label: e.label, Value: v})
		}
	}
	return fields
}

// Project is the aggregate root for a generated creative brief
type Project struct {
	shared.BaseAggregateRoot
	UserID         uuid.UUID
	Form           BriefForm
	GeneratedBrief string
}

// NewProject creates a project from a validated form and its generated brief
func NewProject(userID uuid.UUID, form BriefForm, generatedBrief string) (*Project, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(generatedBrief) == "" {
		return nil, shared.NewDomainError("INVALID_BRIEF", "Generated brief cannot be empty")
	}

	return &Project{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Form:              form,
		GeneratedBrief:    generatedBrief,
	}, nil
}

// BelongsTo reports whether the project is owned by the given user
func (p *Project) BelongsTo(userID uuid.UUID) bool {
	return p.UserID == userID
}
