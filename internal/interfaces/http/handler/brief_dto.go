package handler

import "github.com/alvarosc2000/BriefNest-Local/internal/domain/brief"

// GenerateBriefRequest represents the questionnaire submitted to generate a brief
type GenerateBriefRequest struct {
	ProjectName          string   `json:"project_name" binding:"required,max=200"`
	ClientName           string   `json:"client_name" binding:"omitempty,max=200"`
	StartDate            string   `json:"start_date"`
	DeliveryDate         string   `json:"delivery_date"`
	Website              string   `json:"website"`
	MainGoal             string   `json:"main_goal" binding:"required"`
	SecondaryGoals       string   `json:"secondary_goals"`
	CurrentSituation     string   `json:"current_situation"`
	Challenges           string   `json:"challenges"`
	TargetAudience       string   `json:"target_audience" binding:"required"`
	AudienceNeeds        string   `json:"audience_needs"`
	MainMessage          string   `json:"main_message"`
	Differentiation      string   `json:"differentiation"`
	Tone                 string   `json:"tone"`
	Channels             []string `json:"channels"`
	DeliverableFormats   []string `json:"deliverable_formats"`
	ExpectedDeliverables string   `json:"expected_deliverables"`
	Limitations          string   `json:"limitations"`
	Competitors          string   `json:"competitors"`
	ReferenceLinks       string   `json:"reference_links"`
	Budget               string   `json:"budget"`
	Resources            string   `json:"resources"`
	Milestones           string   `json:"milestones"`
	Deadlines            string   `json:"deadlines"`
	Restrictions         string   `json:"restrictions"`
	Notes                string   `json:"notes"`
	BrandingLinks        string   `json:"branding_links"`
}

// toForm maps the request body to the domain questionnaire
func (r *GenerateBriefRequest) toForm() brief.BriefForm {
	return brief.BriefForm{
		ProjectName:          r.ProjectName,
		ClientName:           r.ClientName,
		StartDate:            r.StartDate,
		DeliveryDate:         r.DeliveryDate,
		Website:              r.Website,
		MainGoal:             r.MainGoal,
		SecondaryGoals:       r.SecondaryGoals,
		CurrentSituation:     r.CurrentSituation,
		Challenges:           r.Challenges,
		TargetAudience:       r.TargetAudience,
		AudienceNeeds:        r.AudienceNeeds,
		MainMessage:          r.MainMessage,
		Differentiation:      r.Differentiation,
		Tone:                 r.Tone,
		Channels:             r.Channels,
		DeliverableFormats:   r.DeliverableFormats,
		ExpectedDeliverables: r.ExpectedDeliverables,
		Limitations:          r.Limitations,
		Competitors:          r.Competitors,
		ReferenceLinks:       r.ReferenceLinks,
		Budget:               r.Budget,
		Resources:            r.Resources,
		Milestones:           r.Milestones,
		Deadlines:            r.Deadlines,
		Restrictions:         r.Restrictions,
		Notes:                r.Notes,
		BrandingLinks:        r.BrandingLinks,
	}
}
