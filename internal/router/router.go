package router

import (
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"skytails/internal/auth"
	"skytails/internal/config"
	"skytails/internal/handler"
)

// requestTimeout bounds every request; the store aborts in-flight
// transactions with the context, so expiry never leaves partial rows.
const requestTimeout = 10 * time.Second

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	resolver auth.IdentityResolver,
	onboardingHandler *handler.OnboardingHandler,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.ContextTimeout(requestTimeout))

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/onboarding", onboardingHandler.Submit)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/mock/dashboard", dashboardHandler.Mock)

	// /me resolves the session best-effort: no session means 200 null.
	api.GET("/me", authHandler.Me, auth.ResolveSession(resolver))

	// Secured routes: cookie signature checked by echo-jwt, then the
	// server-side session resolved. 401 before any domain data access.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.SessionSecret),
		TokenLookup: "cookie:" + auth.SessionCookieName,
	}), auth.RequireSession(resolver))

	secured.GET("/dashboard", dashboardHandler.Get)
}

// Validator wraps go-playground/validator for Echo with json field names.
type Validator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validator: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
