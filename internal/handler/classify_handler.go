package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Navin2k4/UrbanUplift-sub000/internal/errors"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/service"
)

// ClassifyHandler handles the issue classification endpoint.
type ClassifyHandler struct {
	classifyService service.ClassifyService
}

// NewClassifyHandler creates a new classify handler.
func NewClassifyHandler(classifyService service.ClassifyService) *ClassifyHandler {
	return &ClassifyHandler{classifyService: classifyService}
}

// ClassifyRequest represents a classification request. At least one of
// description and imageUrl must be set.
type ClassifyRequest struct {
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Classify godoc
// @Summary Classify an issue description and/or image
// @Tags issues
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Classification input"
// @Success 200 {object} service.ClassificationResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /issues/classify [post]
func (h *ClassifyHandler) Classify(c echo.Context) error {
	var req ClassifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.classifyService.Classify(c.Request().Context(), req.Description, req.ImageURL)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}
