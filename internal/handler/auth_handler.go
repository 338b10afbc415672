package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Navin2k4/UrbanUplift-sub000/internal/auth"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/errors"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/model"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/service"
)

// AuthHandler handles authentication endpoints for all roles.
type AuthHandler struct {
	authService service.AuthService
	cookies     *auth.CookieHelper
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookies *auth.CookieHelper) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

// RegisterRequest represents a registration request. Role-specific fields are
// required only for the matching role segment.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`

	OrganizationID     string `json:"organizationId,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	EmployeeID         string `json:"employeeId,omitempty"`
	Department         string `json:"department,omitempty"`
	CollegeID          string `json:"collegeId,omitempty"`
	CollegeRole        string `json:"collegeRole,omitempty"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token alongside the user for non-cookie
// clients; cookie clients can ignore the token field.
type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// roleFromSegment maps the URL role segment to its role partition.
func roleFromSegment(segment string) (model.Role, bool) {
	switch segment {
	case "citizen":
		return model.RoleCitizen, true
	case "ngo":
		return model.RoleNGO, true
	case "government":
		return model.RoleGovt, true
	case "college":
		return model.RoleNSS, true
	}
	return "", false
}

func (r *RegisterRequest) attributes(role model.Role) service.RoleAttributes {
	switch role {
	case model.RoleNGO:
		return service.NGOAttrs{OrganizationID: r.OrganizationID, RegistrationNumber: r.RegistrationNumber}
	case model.RoleGovt:
		return service.GovtAttrs{EmployeeID: r.EmployeeID, Department: r.Department}
	case model.RoleNSS:
		return service.CollegeAttrs{CollegeID: r.CollegeID, CollegeRole: r.CollegeRole}
	default:
		return service.CitizenAttrs{}
	}
}

// Register godoc
// @Summary Register a user in a role partition
// @Tags auth
// @Accept json
// @Produce json
// @Param role path string true "Role segment" Enums(citizen, ngo, government, college)
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/{role}/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	role, ok := roleFromSegment(c.Param("role"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "unknown role", Code: "INVALID_ROLE",
		})
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.RegisterUser(c.Request().Context(), req.Name, req.Email, req.Password, req.attributes(role))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "user registered successfully",
		"user":    user,
	})
}

// Login godoc
// @Summary Login a user against one role partition
// @Tags auth
// @Accept json
// @Produce json
// @Param role path string true "Role segment" Enums(citizen, ngo, government, college)
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/{role}/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	role, ok := roleFromSegment(c.Param("role"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "unknown role", Code: "INVALID_ROLE",
		})
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.AuthenticateUser(c.Request().Context(), role, req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	h.cookies.SetAuthCookie(c, token)

	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  user,
	})
}

// Logout godoc
// @Summary Logout the current user
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookies.ClearAuthCookie(c)
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// Me godoc
// @Summary Return the authenticated principal's claims
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "missing or invalid token", Code: "UNAUTHORIZED",
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":    claims.UserID,
		"email": claims.Email,
		"role":  claims.Role,
	})
}
