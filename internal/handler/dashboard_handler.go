package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skytails/internal/auth"
	apperrors "skytails/internal/errors"
	"skytails/internal/service"
)

// DashboardHandler handles the dashboard endpoints.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get godoc
// @Summary Get the authenticated user's dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	user := auth.CurrentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Message: apperrors.ErrUnauthorized.Error()})
	}

	view, err := h.dashboardService.GetDashboard(c.Request().Context(), user)
	if err != nil {
		c.Logger().Errorf("dashboard: %v", err)
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, view)
}

// Mock godoc
// @Summary Get the public prototype dashboard data
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.MockDashboardView
// @Router /mock/dashboard [get]
func (h *DashboardHandler) Mock(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboardService.MockDashboard())
}
