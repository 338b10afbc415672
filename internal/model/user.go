package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role identifies the partition a user authenticates against.
type Role string

const (
	RoleCitizen Role = "CITIZEN"
	RoleNGO     Role = "NGO"
	RoleGovt    Role = "GOVT"
	RoleNSS     Role = "NSS"
)

// User represents a registered principal of any role. Role is immutable after
// creation and the email is unique across all roles.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;index"`

	// NGO attributes
	OrganizationID     *string `json:"organization_id,omitempty" gorm:"size:100"`
	RegistrationNumber *string `json:"registration_number,omitempty" gorm:"size:100"`

	// Government attributes
	EmployeeID *string `json:"employee_id,omitempty" gorm:"size:100"`
	Department *string `json:"department,omitempty" gorm:"size:255"`

	// College/NSS attributes
	CollegeID   *string `json:"college_id,omitempty" gorm:"size:100"`
	CollegeRole *string `json:"college_role,omitempty" gorm:"size:100"`

	// Set at registration; not currently checked at login.
	EmailVerified bool `json:"email_verified" gorm:"default:false"`

	LastLoginAt *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Reports []Report `json:"reports,omitempty" gorm:"foreignKey:CreatedByID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
