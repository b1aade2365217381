package controllerImp

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"lifeplan/pkg/codec"
	"lifeplan/pkg/export"
	"lifeplan/pkg/middleware"
	planrepo "lifeplan/pkg/plan/repository"
	"lifeplan/pkg/plan/service"
	"lifeplan/pkg/plan/types"
)

const (
	homeLimit = 5
	xlsxMIME  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type PlanCtrl struct{ svc service.PlanService }

func NewPlanCtrl(svc service.PlanService) *PlanCtrl { return &PlanCtrl{svc: svc} }

func (h *PlanCtrl) Generate(c echo.Context) error {
	var req types.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Generate(c.Request().Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, types.GenerateResponse{Output: out})
}

func (h *PlanCtrl) Create(c echo.Context) error {
	var req types.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlanCtrl) List(c echo.Context) error {
	limit := 0
	if q := c.QueryParam("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be a non-negative integer"})
		}
		limit = n
	}
	plans, err := h.svc.List(c.Request().Context(), limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *PlanCtrl) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlanCtrl) Rerun(c echo.Context) error {
	var body types.RerunRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.Rerun(c.Request().Context(), c.Param("id"), body.Seed)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlanCtrl) Share(c echo.Context) error {
	token, err := h.svc.Share(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, types.ShareResponse{Token: token, Path: "/s/" + token})
}

func (h *PlanCtrl) Export(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	var buf bytes.Buffer
	if err := export.WritePlanWorkbook(&buf, p); err != nil {
		return fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="plan-%s.xlsx"`, p.ID))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

// SharedPage renders a decoded share token. Nothing of the plan is rendered when decoding fails.
func (h *PlanCtrl) SharedPage(c echo.Context) error {
	asJSON := c.QueryParam("format") == "json"
	p, err := h.svc.OpenShared(c.Param("payload"))
	if err != nil {
		log := middleware.LoggerFrom(c)
		log.Warn().Err(err).Msg("share token rejected")
		if asJSON {
			return fail(c, err)
		}
		page, rerr := render("invalid.html", nil)
		if rerr != nil {
			return fail(c, rerr)
		}
		return c.HTMLBlob(http.StatusBadRequest, page)
	}
	if asJSON {
		return c.JSON(http.StatusOK, p)
	}
	page, err := render("shared.html", newSharedView(p))
	if err != nil {
		return fail(c, err)
	}
	return c.HTMLBlob(http.StatusOK, page)
}

// Home lists the most-versioned saved plans.
func (h *PlanCtrl) Home(c echo.Context) error {
	plans, err := h.svc.List(c.Request().Context(), homeLimit)
	if err != nil {
		return fail(c, err)
	}
	page, err := render("home.html", plans)
	if err != nil {
		return fail(c, err)
	}
	return c.HTMLBlob(http.StatusOK, page)
}

func fail(c echo.Context, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log := middleware.LoggerFrom(c)
		log.Error().Err(err).Msg("request failed")
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrValidation), errors.Is(err, codec.ErrMalformedToken):
		return http.StatusBadRequest
	case errors.Is(err, planrepo.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
