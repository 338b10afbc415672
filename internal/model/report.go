package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportStatus represents the lifecycle state of a report.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "PENDING"
	ReportStatusInProgress ReportStatus = "IN_PROGRESS"
	ReportStatusResolved   ReportStatus = "RESOLVED"
)

// Priority is the triage tier of a report.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Report represents a civic issue submitted by a user.
type Report struct {
	ID          uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	Description string       `json:"description" gorm:"type:text;not null"`
	Category    string       `json:"category" gorm:"size:100;not null;index"`
	Status      ReportStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Priority    Priority     `json:"priority" gorm:"type:varchar(10)"`
	AIPriority  Priority     `json:"ai_priority" gorm:"type:varchar(10)"`

	Location  string   `json:"location" gorm:"size:255;not null"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   *string  `json:"address,omitempty" gorm:"size:500"`
	District  *string  `json:"district,omitempty" gorm:"size:100"`
	State     *string  `json:"state,omitempty" gorm:"size:100"`
	ImageURL  *string  `json:"image_url,omitempty" gorm:"size:500"`

	CreatedByID uuid.UUID      `json:"created_by_id" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	CreatedBy *User `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ParseReportStatus normalizes a client-supplied status string.
func ParseReportStatus(s string) (ReportStatus, bool) {
	switch ReportStatus(s) {
	case ReportStatusPending, ReportStatusInProgress, ReportStatusResolved:
		return ReportStatus(s), true
	}
	return "", false
}
