package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"puntoventa/internal/dto"
	"puntoventa/internal/service"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// VentaCompletada godoc
// @Summary Reporta una venta completada a la caja
// @Description Checkout llama este endpoint una vez por orden, despues de
// @Description crearla de forma durable en su lado.
// @Tags ventas
// @Accept json
// @Produce json
// @Param body body dto.VentaCompletadaRequest true "Metodo de pago y monto"
// @Success 204
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/ventas [post]
func (h *VentasHandler) VentaCompletada(c *gin.Context) {
	var req dto.VentaCompletadaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.VentaCompletada(c.Request.Context(), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// StatsHoy godoc
// @Summary KPIs del dia para el dashboard
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsDiaResponse
// @Router /v1/stats/hoy [get]
func (h *VentasHandler) StatsHoy(c *gin.Context) {
	resp, err := h.svc.StatsHoy(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
