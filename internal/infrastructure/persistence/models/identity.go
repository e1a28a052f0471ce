package models

import (
	"time"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/billing"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email           string `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash    string `gorm:"type:varchar(255);not null"`
	Name            string `gorm:"type:varchar(200)"`
	Plan            string `gorm:"type:varchar(20);not null;default:'free'"`
	BriefsAvailable int    `gorm:"not null;default:0"`
	BriefsUsed      int    `gorm:"not null;default:0"`
	PlanRenewalAt   *time.Time
	LastLoginAt     *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Name:              m.Name,
		Plan:              billing.PlanID(m.Plan),
		BriefsAvailable:   m.BriefsAvailable,
		BriefsUsed:        m.BriefsUsed,
		PlanRenewalAt:     m.PlanRenewalAt,
		LastLoginAt:       m.LastLoginAt,
	}
}

// UserModelFromDomain converts a domain User entity to the persistence model
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		Name:            u.Name,
		Plan:            string(u.Plan),
		BriefsAvailable: u.BriefsAvailable,
		BriefsUsed:      u.BriefsUsed,
		PlanRenewalAt:   u.PlanRenewalAt,
		LastLoginAt:     u.LastLoginAt,
	}
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return m
}
