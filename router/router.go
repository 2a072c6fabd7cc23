package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agrovision/pkg/logger"
	"agrovision/pkg/middleware"
)

func New(
	e *echo.Echo,
	log *logger.Logger,
	auth middleware.AuthChecker,
	authCtrl interface {
		Login(echo.Context) error
		Logout(echo.Context) error
		Session(echo.Context) error
	},
	fieldCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		GeneratePlan(echo.Context) error
	},
	activityCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
	},
	recCtrl interface {
		List(echo.Context) error
		Generate(echo.Context) error
	},
	stockCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Add(echo.Context) error
		Remove(echo.Context) error
		Transactions(echo.Context) error
	},
	eventsCtrl interface {
		Stream(echo.Context) error
		Status(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
	metricsHandler http.Handler,
) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(RequestLogger(log))

	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", echo.WrapHandler(metricsHandler))

	e.POST("/login", authCtrl.Login)
	e.POST("/logout", authCtrl.Logout)
	e.GET("/session", authCtrl.Session)

	api := e.Group("", middleware.RequireAuth(auth))

	api.GET("/fields", fieldCtrl.List)
	api.POST("/fields", fieldCtrl.Create)
	api.GET("/fields/:id", fieldCtrl.Get)
	api.PATCH("/fields/:id", fieldCtrl.Update)
	api.DELETE("/fields/:id", fieldCtrl.Delete)
	api.POST("/fields/:id/plan", fieldCtrl.GeneratePlan)

	api.GET("/activities", activityCtrl.List)
	api.POST("/activities", activityCtrl.Create)

	api.GET("/recommendations", recCtrl.List)
	api.POST("/recommendations/generate", recCtrl.Generate)

	api.GET("/stock", stockCtrl.List)
	api.POST("/stock", stockCtrl.Create)
	api.POST("/stock/:id/add", stockCtrl.Add)
	api.POST("/stock/:id/remove", stockCtrl.Remove)
	api.GET("/stock/:id/transactions", stockCtrl.Transactions)

	api.GET("/status", eventsCtrl.Status)
	api.GET("/events", eventsCtrl.Stream)
	return e
}

// RequestLogger logs one line per request through zap.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	log = log.With("component", "http")
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v echoMiddleware.RequestLoggerValues) error {
			kv := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency.String()}
			if v.Error != nil {
				log.Warn("request", append(kv, "error", v.Error.Error())...)
				return nil
			}
			log.Info("request", kv...)
			return nil
		},
	})
}
