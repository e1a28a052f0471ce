package models

import (
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/brief"
	"github.com/google/uuid"
)

// ProjectModel is the persistence model for the Project domain entity.
// Questionnaire answers are stored as individual columns; list answers
// are serialized as JSON.
type ProjectModel struct {
	AggregateModel
	UserID               uuid.UUID `gorm:"type:uuid;not null;index"`
	ProjectName          string    `gorm:"type:varchar(200);not null"`
	ClientName           string    `gorm:"type:varchar(200)"`
	StartDate            string    `gorm:"type:varchar(50)"`
	DeliveryDate         string    `gorm:"type:varchar(50)"`
	Website              string    `gorm:"type:varchar(500)"`
	MainGoal             string    `gorm:"type:text;not null"`
	SecondaryGoals       string    `gorm:"type:text"`
	CurrentSituation     string    `gorm:"type:text"`
	Challenges           string    `gorm:"type:text"`
	TargetAudience       string    `gorm:"type:text;not null"`
	AudienceNeeds        string    `gorm:"type:text"`
	MainMessage          string    `gorm:"type:text"`
	Differentiation      string    `gorm:"type:text"`
	Tone                 string    `gorm:"type:varchar(200)"`
	Channels             []string  `gorm:"serializer:json;type:text"`
	DeliverableFormats   []string  `gorm:"serializer:json;type:text"`
	ExpectedDeliverables string    `gorm:"type:text"`
	Limitations          string    `gorm:"type:text"`
	Competitors          string    `gorm:"type:text"`
	ReferenceLinks       string    `gorm:"type:text"`
	Budget               string    `gorm:"type:varchar(200)"`
	Resources            string    `gorm:"type:text"`
	Milestones           string    `gorm:"type:text"`
	Deadlines            string    `gorm:"type:text"`
	Restrictions         string    `gorm:"type:text"`
	Notes                string    `gorm:"type:text"`
	BrandingLinks        string    `gorm:"type:text"`
	GeneratedBrief       string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity
func (m *ProjectModel) ToDomain() *brief.Project {
	return &brief.Project{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		UserID:            m.UserID,
		Form: brief.BriefForm{
			ProjectName:          m.ProjectName,
			ClientName:           m.ClientName,
			StartDate:            m.StartDate,
			DeliveryDate:         m.DeliveryDate,
			Website:              m.Website,
			MainGoal:             m.MainGoal,
			SecondaryGoals:       m.SecondaryGoals,
			CurrentSituation:     m.CurrentSituation,
			Challenges:           m.Challenges,
			TargetAudience:       m.TargetAudience,
			AudienceNeeds:        m.AudienceNeeds,
			MainMessage:          m.MainMessage,
			Differentiation:      m.Differentiation,
			Tone:                 m.Tone,
			Channels:             m.Channels,
			DeliverableFormats:   m.DeliverableFormats,
			ExpectedDeliverables: m.ExpectedDeliverables,
			Limitations:          m.Limitations,
			Competitors:          m.Competitors,
			ReferenceLinks:       m.ReferenceLinks,
			Budget:               m.Budget,
			Resources:            m.Resources,
			Milestones:           m.Milestones,
			Deadlines:            m.Deadlines,
			Restrictions:         m.Restrictions,
			Notes:                m.Notes,
			BrandingLinks:        m.BrandingLinks,
		},
		GeneratedBrief: m.GeneratedBrief,
	}
}

// ProjectModelFromDomain converts a domain Project entity to the persistence model
func ProjectModelFromDomain(p *brief.Project) *ProjectModel {
	m := &ProjectModel{
		UserID:               p.UserID,
		ProjectName:          p.Form.ProjectName,
		ClientName:           p.Form.ClientName,
		StartDate:            p.Form.StartDate,
		DeliveryDate:         p.Form.DeliveryDate,
		Website:              p.Form.Website,
		MainGoal:             p.Form.MainGoal,
		SecondaryGoals:       p.Form.SecondaryGoals,
		CurrentSituation:     p.Form.CurrentSituation,
		Challenges:           p.Form.Challenges,
		TargetAudience:       p.Form.TargetAudience,
		AudienceNeeds:        p.Form.AudienceNeeds,
		MainMessage:          p.Form.MainMessage,
		Differentiation:      p.Form.Differentiation,
		Tone:                 p.Form.Tone,
		Channels:             p.Form.Channels,
		DeliverableFormats:   p.Form.DeliverableFormats,
		ExpectedDeliverables: p.Form.ExpectedDeliverables,
		Limitations:          p.Form.Limitations,
		Competitors:          p.Form.Competitors,
		ReferenceLinks:       p.Form.ReferenceLinks,
		Budget:               p.Form.Budget,
		Resources:            p.Form.Resources,
		Milestones:           p.Form.Milestones,
		Deadlines:            p.Form.Deadlines,
		Restrictions:         p.Form.Restrictions,
		Notes:                p.Form.Notes,
		BrandingLinks:        p.Form.BrandingLinks,
		GeneratedBrief:       p.GeneratedBrief,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}
