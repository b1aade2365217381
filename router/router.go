package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lifeplan/pkg/plan/controller"
)

func New(
	e *echo.Echo,
	planCtrl controller.PlanController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/", planCtrl.Home)
	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.POST("/plan/generate", planCtrl.Generate)

	g := api.Group("/plans")
	g.POST("", planCtrl.Create)
	g.GET("", planCtrl.List)
	g.GET("/:id", planCtrl.Get)
	g.POST("/:id/versions", planCtrl.Rerun)
	g.GET("/:id/share", planCtrl.Share)
	g.GET("/:id/export.xlsx", planCtrl.Export)

	e.GET("/s/:payload", planCtrl.SharedPage)
	return e
}
