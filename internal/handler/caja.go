package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"puntoventa/internal/apierror"
	"puntoventa/internal/dto"
	"puntoventa/internal/service"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

// Abrir godoc
// @Summary Abre la caja registradora con su fondo inicial
// @Tags caja
// @Accept json
// @Produce json
// @Param body body dto.AbrirCajaRequest true "Datos de apertura"
// @Success 201 {object} dto.SesionCajaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/caja/abrir [post]
func (h *CajaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Abrir(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarMovimiento godoc
// @Summary Registra un ingreso o egreso manual de efectivo
// @Tags caja
// @Accept json
// @Produce json
// @Param body body dto.MovimientoManualRequest true "Movimiento manual"
// @Success 204
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/caja/movimiento [post]
func (h *CajaHandler) RegistrarMovimiento(c *gin.Context) {
	var req dto.MovimientoManualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RegistrarMovimiento(c.Request.Context(), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Cerrar godoc
// @Summary Realiza el arqueo y cierra la sesion de caja
// @Tags caja
// @Accept json
// @Produce json
// @Param body body dto.CerrarCajaRequest true "Efectivo contado y nota de cierre"
// @Success 200 {object} dto.CierreCajaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/caja/cierre [post]
func (h *CajaHandler) Cerrar(c *gin.Context) {
	var req dto.CerrarCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Cerrar(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SesionActual godoc
// @Summary Totales de la sesion abierta
// @Tags caja
// @Produce json
// @Success 200 {object} dto.SesionCajaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/caja/actual [get]
func (h *CajaHandler) SesionActual(c *gin.Context) {
	resp, err := h.svc.SesionActual(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Sin sesion de caja abierta"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ArqueoPrevia godoc
// @Summary Vista previa del arqueo antes de declarar el conteo
// @Tags caja
// @Produce json
// @Success 200 {object} dto.ArqueoPreviaResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/caja/actual/arqueo [get]
func (h *CajaHandler) ArqueoPrevia(c *gin.Context) {
	resp, err := h.svc.ArqueoPrevia(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Historial returns a paginated list of closed cash sessions.
func (h *CajaHandler) Historial(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	cierres, total, err := h.svc.Historial(c.Request.Context(), page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cierres, "total": total, "page": page, "limit": limit})
}
