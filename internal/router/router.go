package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Navin2k4/UrbanUplift-sub000/docs"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/auth"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/config"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/errors"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/handler"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	reportHandler *handler.ReportHandler,
	classifyHandler *handler.ClassifyHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// The session rides on a cookie, so the browser client needs credentials
	// allowed for its origin.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/:role/register", authHandler.Register)
	api.POST("/auth/:role/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes: session cookie first, Authorization header as fallback
	// for non-cookie clients.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + auth.TokenCookieName + ",header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid token",
				Code:  "UNAUTHORIZED",
			})
		},
	}))

	secured.GET("/auth/me", authHandler.Me)

	// Report routes; mutation is restricted to officials and NGOs.
	reports := secured.Group("/reports")
	reports.GET("", reportHandler.List)
	reports.POST("", reportHandler.Create)
	reports.GET("/stats/:userId", reportHandler.Stats)
	reports.GET("/recent/:userId", reportHandler.Recent)
	reports.GET("/status/:status/:userId", reportHandler.ByStatus)
	reports.GET("/:id", reportHandler.Get)
	reports.PUT("/:id", reportHandler.Update, auth.RequireRoles(model.RoleGovt, model.RoleNGO))
	reports.DELETE("/:id", reportHandler.Delete, auth.RequireRoles(model.RoleGovt, model.RoleNGO))

	// Classification routes
	secured.POST("/issues/classify", classifyHandler.Classify)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
