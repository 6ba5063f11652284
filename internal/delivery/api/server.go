package api

import (
	"log/slog"

	"bazaar/config"
	"bazaar/internal/delivery"
	apimiddleware "bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/router"
	"bazaar/internal/delivery/api/validator"
	"bazaar/internal/delivery/httpserver"

	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the API server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the marketplace REST API, served as h2c.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := httpserver.New(httpserver.Options{
		Name:   "bazaar-api",
		Config: params.Cfg,
		Logger: params.Logger,
		H2C:    true,
	})

	e := srv.Echo()
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	params.Lc.Append(fx.StopHook(srv.Stop))

	return srv, nil
}
