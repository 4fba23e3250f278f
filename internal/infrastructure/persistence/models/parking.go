package models

import (
	"time"

	"github.com/mobilitree/backend/internal/domain/parking"
)

// SessionModel is the persistence model for a parking session
type SessionModel struct {
	BaseModel
	CustomerID string    `gorm:"type:varchar(64);not null;index"`
	FacilityID string    `gorm:"type:varchar(64);not null;index"`
	StartTime  time.Time `gorm:"not null"`
	EndTime    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SessionModel) TableName() string {
	return "parking_sessions"
}

// ToDomain converts the persistence model to a domain Session
func (m *SessionModel) ToDomain() *parking.Session {
	return &parking.Session{
		BaseEntity: m.BaseModel.ToDomain(),
		CustomerID: m.CustomerID,
		FacilityID: m.FacilityID,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
	}
}

// SessionModelFromDomain creates a persistence model from a domain Session
func SessionModelFromDomain(s *parking.Session) *SessionModel {
	m := &SessionModel{
		CustomerID: s.CustomerID,
		FacilityID: s.FacilityID,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

// CustomerModel is the persistence model for a parking customer
type CustomerModel struct {
	CustomerID string    `gorm:"type:varchar(64);primary_key"`
	Name       string    `gorm:"type:varchar(200);not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *parking.Customer {
	return &parking.Customer{
		ID:   m.CustomerID,
		Name: m.Name,
	}
}

// CustomerModelFromDomain creates a persistence model from a domain Customer
func CustomerModelFromDomain(c *parking.Customer) *CustomerModel {
	return &CustomerModel{
		CustomerID: c.ID,
		Name:       c.Name,
	}
}
