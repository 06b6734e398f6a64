package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fitpick/internal/domain"
	"fitpick/internal/http/response"
)

// FitHandler exposes a domain.Engine over HTTP.
type FitHandler struct {
	engine domain.Engine
}

func NewFitHandler(engine domain.Engine) *FitHandler {
	return &FitHandler{engine: engine}
}

// GET /api/reference
func (h *FitHandler) Reference(c *gin.Context) {
	info, err := h.engine.Reference(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, info)
}

// GET /api/fits
func (h *FitHandler) ListFits(c *gin.Context) {
	fits, err := h.engine.ListFits(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, fits)
}

// GET /api/fits/:name
func (h *FitHandler) GetFit(c *gin.Context) {
	def, err := h.engine.ResolveFit(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, def)
}

// POST /api/fit
// body: { "name": "...", "shape": "cylindrical", "width_mm": 25, "height_mm": 0 }
func (h *FitHandler) ComputeFit(c *gin.Context) {
	var body struct {
		Name     string  `json:"name"`
		Shape    string  `json:"shape"`
		WidthMM  float64 `json:"width_mm"`
		HeightMM float64 `json:"height_mm"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondBadRequest(c, err)
		return
	}
	shape, err := domain.ParseShape(body.Shape)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	report, err := h.engine.ComputeFit(c.Request.Context(), domain.FitRequest{
		Name:     body.Name,
		Shape:    shape,
		WidthMM:  body.WidthMM,
		HeightMM: body.HeightMM,
	})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, report)
}

// GET /api/limits?class=H7&nominal_mm=25
func (h *FitHandler) ComputeLimits(c *gin.Context) {
	class, err := domain.ParseClass(c.Query("class"))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	nominal, ok := nominalQuery(c)
	if !ok {
		return
	}
	lim, err := h.engine.ComputeLimits(c.Request.Context(), class, nominal)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, lim)
}

// GET /api/sweep?nominal_mm=25
func (h *FitHandler) Sweep(c *gin.Context) {
	nominal, ok := nominalQuery(c)
	if !ok {
		return
	}
	entries, err := h.engine.Sweep(c.Request.Context(), nominal)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, entries)
}

func nominalQuery(c *gin.Context) (float64, bool) {
	raw := strings.TrimSpace(c.Query("nominal_mm"))
	if raw == "" {
		response.RespondBadRequest(c, fmt.Errorf("nominal_mm is required"))
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		response.RespondBadRequest(c, fmt.Errorf("nominal_mm: %q is not a number", raw))
		return 0, false
	}
	return v, true
}
