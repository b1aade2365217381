package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Generate(c echo.Context) error
	Create(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	Rerun(c echo.Context) error
	Share(c echo.Context) error
	Export(c echo.Context) error
	SharedPage(c echo.Context) error
	Home(c echo.Context) error
}
