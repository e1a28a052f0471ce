package brief

import (
	"time"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/brief"
	"github.com/google/uuid"
)

// GenerateBriefInput contains the data for generating a new brief
type GenerateBriefInput struct {
	UserID uuid.UUID
	Form   brief.BriefForm
}

// ProjectResult is the full view of a project returned by the service
type ProjectResult struct {
	ID             uuid.UUID     `json:"id"`
	ProjectName    string        `json:"project_name"`
	ClientName     string        `json:"client_name,omitempty"`
	Form           BriefFormView `json:"form"`
	GeneratedBrief string        `json:"generated_brief"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// BriefFormView is the questionnaire as returned to clients
type BriefFormView struct {
	ProjectName          string   `json:"project_name"`
	ClientName           string   `json:"client_name,omitempty"`
	StartDate            string   `json:"start_date,omitempty"`
	DeliveryDate         string   `json:"delivery_date,omitempty"`
	Website              string   `json:"website,omitempty"`
	MainGoal             string   `json:"main_goal"`
	SecondaryGoals       string   `json:"secondary_goals,omitempty"`
	CurrentSituation     string   `json:"current_situation,omitempty"`
	Challenges           string   `json:"challenges,omitempty"`
	TargetAudience       string   `json:"target_audience"`
	AudienceNeeds        string   `json:"audience_needs,omitempty"`
	MainMessage          string   `json:"main_message,omitempty"`
	Differentiation      string   `json:"differentiation,omitempty"`
	Tone                 string   `json:"tone,omitempty"`
	Channels             []string `json:"channels,omitempty"`
	DeliverableFormats   []string `json:"deliverable_formats,omitempty"`
	ExpectedDeliverables string   `json:"expected_deliverables,omitempty"`
	Limitations          string   `json:"limitations,omitempty"`
	Competitors          string   `json:"competitors,omitempty"`
	ReferenceLinks       string   `json:"reference_links,omitempty"`
	Budget               string   `json:"budget,omitempty"`
	Resources            string   `json:"resources,omitempty"`
	Milestones           string   `json:"milestones,omitempty"`
	Deadlines            string   `json:"deadlines,omitempty"`
	Restrictions         string   `json:"restrictions,omitempty"`
	Notes                string   `json:"notes,omitempty"`
	BrandingLinks        string   `json:"branding_links,omitempty"`
}

// formViewFromDomain maps the domain questionnaire to its client view
func formViewFromDomain(f brief.BriefForm) BriefFormView {
	return BriefFormView{
		ProjectName:          f.ProjectName,
		ClientName:           f.ClientName,
		StartDate:            f.StartDate,
		DeliveryDate:         f.DeliveryDate,
		Website:              f.Website,
		MainGoal:             f.MainGoal,
		SecondaryGoals:       f.SecondaryGoals,
		CurrentSituation:     f.CurrentSituation,
		Challenges:           f.Challenges,
		TargetAudience:       f.TargetAudience,
		AudienceNeeds:        f.AudienceNeeds,
		MainMessage:          f.MainMessage,
		Differentiation:      f.Differentiation,
		Tone:                 f.Tone,
		Channels:             f.Channels,
		DeliverableFormats:   f.DeliverableFormats,
		ExpectedDeliverables: f.ExpectedDeliverables,
		Limitations:          f.Limitations,
		Competitors:          f.Competitors,
		ReferenceLinks:       f.ReferenceLinks,
		Budget:               f.Budget,
		Resources:            f.Resources,
		Milestones:           f.Milestones,
		Deadlines:            f.Deadlines,
		Restrictions:         f.Restrictions,
		Notes:                f.Notes,
		BrandingLinks:        f.BrandingLinks,
	}
}

// ProjectSummary is the list view of a project
type ProjectSummary struct {
	ID          uuid.UUID `json:"id"`
	ProjectName string    `json:"project_name"`
	ClientName  string    `json:"client_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListProjectsInput contains pagination parameters for listing projects
type ListProjectsInput struct {
	UserID   uuid.UUID
	Page     int
	PageSize int
}

// ListProjectsResult contains a page of project summaries
type ListProjectsResult struct {
	Projects   []ProjectSummary `json:"projects"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}

// projectResultFromDomain maps a domain project to its full view
func projectResultFromDomain(p *brief.Project) *ProjectResult {
	return &ProjectResult{
		ID:             p.ID,
		ProjectName:    p.Form.ProjectName,
		ClientName:     p.Form.ClientName,
		Form:           formViewFromDomain(p.Form),
		GeneratedBrief: p.GeneratedBrief,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// projectSummaryFromDomain maps a domain project to its list view
func projectSummaryFromDomain(p *brief.Project) ProjectSummary {
	return ProjectSummary{
		ID:          p.ID,
		ProjectName: p.Form.ProjectName,
		ClientName:  p.Form.ClientName,
		CreatedAt:   p.CreatedAt,
	}
}
