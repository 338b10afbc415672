package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Navin2k4/UrbanUplift-sub000/internal/errors"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/model"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/service"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReportRequest represents a report submission.
type CreateReportRequest struct {
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Location    string `json:"location" validate:"required"`
	CreatedByID string `json:"createdById" validate:"required,uuid"`

	Priority   string   `json:"priority,omitempty"`
	AIPriority string   `json:"aiPriority,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Address    *string  `json:"address,omitempty"`
	District   *string  `json:"district,omitempty"`
	State      *string  `json:"state,omitempty"`
	ImageURL   *string  `json:"imageUrl,omitempty"`
}

// UpdateReportRequest represents a partial report update.
type UpdateReportRequest struct {
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Location    *string `json:"location,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// CreateReportResponse is the submission result; emailError is set when the
// confirmation mail failed but the report was still created.
type CreateReportResponse struct {
	Report     *model.Report `json:"report"`
	EmailError string        `json:"emailError,omitempty"`
}

// Create godoc
// @Summary Submit a new report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body CreateReportRequest true "Report data"
// @Success 201 {object} CreateReportResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reports [post]
func (h *ReportHandler) Create(c echo.Context) error {
	var req CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error:   errors.ErrMissingFields.Error(),
			Code:    "VALIDATION_ERROR",
			Details: err.Error(),
		})
	}

	creatorID, err := uuid.Parse(req.CreatedByID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "createdById must be a valid id", Code: "VALIDATION_ERROR",
		})
	}

	out, err := h.reportService.Create(c.Request().Context(), service.CreateReportInput{
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Priority:    model.Priority(req.Priority),
		AIPriority:  model.Priority(req.AIPriority),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		District:    req.District,
		State:       req.State,
		ImageURL:    req.ImageURL,
		CreatedByID: creatorID,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := CreateReportResponse{Report: out.Report}
	if out.EmailErr != nil {
		resp.EmailError = out.EmailErr.Error()
	}
	return c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List all reports
// @Tags reports
// @Produce json
// @Success 200 {array} model.Report
// @Failure 500 {object} errors.ErrorResponse
// @Router /reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	reports, err := h.reportService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, reports)
}

// Get godoc
// @Summary Get a report by id
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} model.Report
// @Failure 404 {object} errors.ErrorResponse
// @Router /reports/{id} [get]
func (h *ReportHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid report id", Code: "VALIDATION_ERROR",
		})
	}

	report, err := h.reportService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, report)
}

// Update godoc
// @Summary Update a report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body UpdateReportRequest true "Fields to update"
// @Success 200 {object} model.Report
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reports/{id} [put]
func (h *ReportHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid report id", Code: "VALIDATION_ERROR",
		})
	}

	var req UpdateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	input := service.UpdateReportInput{
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	}
	if req.Status != nil {
		status, ok := model.ParseReportStatus(strings.ToUpper(*req.Status))
		if !ok {
			httpErr := errors.MapErrorToHTTP(errors.ErrInvalidStatus)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		input.Status = &status
	}
	if req.Priority != nil {
		priority := model.Priority(strings.ToUpper(*req.Priority))
		input.Priority = &priority
	}

	report, err := h.reportService.Update(c.Request().Context(), id, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, report)
}

// Delete godoc
// @Summary Delete a report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /reports/{id} [delete]
func (h *ReportHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid report id", Code: "VALIDATION_ERROR",
		})
	}

	if err := h.reportService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "report deleted"})
}

// Stats godoc
// @Summary Per-status report counts for a user
// @Tags reports
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} service.ReportStats
// @Failure 400 {object} errors.ErrorResponse
// @Router /reports/stats/{userId} [get]
func (h *ReportHandler) Stats(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id", Code: "VALIDATION_ERROR",
		})
	}

	stats, err := h.reportService.Stats(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}

// Recent godoc
// @Summary Most recent reports for a user
// @Tags reports
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} model.Report
// @Failure 400 {object} errors.ErrorResponse
// @Router /reports/recent/{userId} [get]
func (h *ReportHandler) Recent(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id", Code: "VALIDATION_ERROR",
		})
	}

	reports, err := h.reportService.Recent(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, reports)
}

// ByStatus godoc
// @Summary A user's reports in one status
// @Tags reports
// @Produce json
// @Param status path string true "Status" Enums(pending, in_progress, resolved)
// @Param userId path string true "User ID"
// @Success 200 {array} model.Report
// @Failure 400 {object} errors.ErrorResponse
// @Router /reports/status/{status}/{userId} [get]
func (h *ReportHandler) ByStatus(c echo.Context) error {
	// status segment is case-insensitive
	status, ok := model.ParseReportStatus(strings.ToUpper(c.Param("status")))
	if !ok {
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidStatus)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id", Code: "VALIDATION_ERROR",
		})
	}

	reports, err := h.reportService.ListByStatus(c.Request().Context(), status, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, reports)
}
