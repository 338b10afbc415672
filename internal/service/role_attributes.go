package service

import (
	"fmt"

	"github.com/Navin2k4/UrbanUplift-sub000/internal/errors"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/model"
)

// RoleAttributes carries the role-specific fields collected at registration.
// One variant exists per role; Validate enforces that role's required fields
// and Apply copies them onto the user record.
type RoleAttributes interface {
	Role() model.Role
	Validate() error
	Apply(u *model.User)
}

// CitizenAttrs has no extra fields.
type CitizenAttrs struct{}

func (CitizenAttrs) Role() model.Role  { return model.RoleCitizen }
func (CitizenAttrs) Validate() error   { return nil }
func (CitizenAttrs) Apply(*model.User) {}

// NGOAttrs identifies the reporting organization.
type NGOAttrs struct {
	OrganizationID     string
	RegistrationNumber string
}

func (NGOAttrs) Role() model.Role { return model.RoleNGO }

func (a NGOAttrs) Validate() error {
	if a.OrganizationID == "" || a.RegistrationNumber == "" {
		return fmt.Errorf("%w: organizationId and registrationNumber are required", errors.ErrInvalidRole)
	}
	return nil
}

func (a NGOAttrs) Apply(u *model.User) {
	u.OrganizationID = &a.OrganizationID
	u.RegistrationNumber = &a.RegistrationNumber
}

// GovtAttrs identifies the official and their department.
type GovtAttrs struct {
	EmployeeID string
	Department string
}

func (GovtAttrs) Role() model.Role { return model.RoleGovt }

func (a GovtAttrs) Validate() error {
	if a.EmployeeID == "" || a.Department == "" {
		return fmt.Errorf("%w: employeeId and department are required", errors.ErrInvalidRole)
	}
	return nil
}

func (a GovtAttrs) Apply(u *model.User) {
	u.EmployeeID = &a.EmployeeID
	u.Department = &a.Department
}

// CollegeAttrs identifies the NSS coordinator's college.
type CollegeAttrs struct {
	CollegeID   string
	CollegeRole string
}

func (CollegeAttrs) Role() model.Role { return model.RoleNSS }

func (a CollegeAttrs) Validate() error {
	if a.CollegeID == "" || a.CollegeRole == "" {
		return fmt.Errorf("%w: collegeId and collegeRole are required", errors.ErrInvalidRole)
	}
	return nil
}

func (a CollegeAttrs) Apply(u *model.User) {
	u.CollegeID = &a.CollegeID
	u.CollegeRole = &a.CollegeRole
}
