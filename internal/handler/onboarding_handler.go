package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"skytails/internal/auth"
	apperrors "skytails/internal/errors"
	"skytails/internal/service"
)

// OnboardingHandler handles the onboarding submission endpoint.
type OnboardingHandler struct {
	onboardingService service.OnboardingService
}

// NewOnboardingHandler creates a new onboarding handler.
func NewOnboardingHandler(onboardingService service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService}
}

// OnboardingResponse reports a successful submission.
type OnboardingResponse struct {
	Success bool `json:"success"`
	UserID  uint `json:"userId"`
}

// Submit godoc
// @Summary Submit the onboarding wizard payload
// @Description Atomically creates the user, pet, and plan and establishes a session cookie.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body service.OnboardingInput true "Onboarding data"
// @Success 201 {object} OnboardingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /onboarding [post]
func (h *OnboardingHandler) Submit(c echo.Context) error {
	var input service.OnboardingInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&input); err != nil {
		verr := firstFieldError(err)
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: verr.Message, Field: verr.Field})
	}

	result, err := h.onboardingService.Submit(c.Request().Context(), &input)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("onboarding submit: %v", err)
		}
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	// An empty token means the records committed but no session could be
	// established; the creation still succeeded.
	if result.SessionToken != "" {
		setSessionCookie(c, result.SessionToken)
	}
	return c.JSON(http.StatusCreated, OnboardingResponse{Success: true, UserID: result.UserID})
}

// firstFieldError reduces validator output to the first offending field,
// addressed in json-path form ("pet.age"). Tag names come from the
// validator's json name registration, so the struct type name is the only
// namespace segment to strip.
func firstFieldError(err error) *apperrors.ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewValidationError("", "invalid request body")
	}
	fe := verrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	return apperrors.NewValidationError(field, fieldMessage(fe))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "email must be a valid address"
	case "oneof":
		return fe.Field() + " must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return fe.Field() + " must not be negative"
	case "gt":
		return fe.Field() + " must be positive"
	default:
		return fe.Field() + " is invalid"
	}
}

// setSessionCookie attaches the signed session token as an HTTP-only cookie.
func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.SessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie client-side.
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
