package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"frases/internal/config"
	apperrors "frases/internal/errors"
	"frases/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	fraseHandler *handler.FraseHandler,
	authHandler *handler.AuthHandler,
	eventsHandler *handler.EventsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/frases", fraseHandler.CreateFrase)
	e.GET("/frases/pendientes", fraseHandler.ListPendientes)
	e.GET("/frases/aprobadas", fraseHandler.ListAprobadas)
	e.POST("/login", authHandler.Login)
	e.POST("/login/refresh", authHandler.Refresh)
	e.POST("/logout", authHandler.Logout)
	e.GET("/events", eventsHandler.Stream)

	// Moderation routes (require a valid admin bearer token)
	admin := e.Group("/frases", echojwt.WithConfig(echojwt.Config{
		SigningKey:   []byte(cfg.JWTSecret),
		TokenLookup:  "header:" + echo.HeaderAuthorization,
		ErrorHandler: jwtErrorHandler,
	}))
	admin.GET("", fraseHandler.ListFrases)
	admin.PUT("/:id/aprobar", fraseHandler.AprobarFrase)
	admin.PUT("/:id/fijar", fraseHandler.FijarFrase)
	admin.DELETE("/:id", fraseHandler.DeleteFrase)
}

// jwtErrorHandler splits a missing credential (401) from a presented but
// invalid or expired one (403).
func jwtErrorHandler(c echo.Context, err error) error {
	if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "missing credentials",
			Code:  "UNAUTHORIZED",
		})
	}
	return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
		Error: "invalid or expired token",
		Code:  "FORBIDDEN",
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
