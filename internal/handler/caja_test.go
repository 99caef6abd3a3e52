package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/dto"
	"puntoventa/internal/handler"
	"puntoventa/internal/service"
)

// fakeCajaService returns canned responses; handler tests only exercise
// binding, validation and status mapping.
type fakeCajaService struct {
	abrirErr  error
	cerrarErr error
	actual    *dto.SesionCajaResponse
}

func (f *fakeCajaService) Abrir(_ context.Context, req dto.AbrirCajaRequest) (*dto.SesionCajaResponse, error) {
	if f.abrirErr != nil {
		return nil, f.abrirErr
	}
	return &dto.SesionCajaResponse{Estado: "abierta", Operador: req.Operador, MontoInicial: req.MontoInicial}, nil
}

func (f *fakeCajaService) RegistrarVenta(context.Context, string, decimal.Decimal) error { return nil }

func (f *fakeCajaService) RegistrarMovimiento(context.Context, dto.MovimientoManualRequest) error {
	return nil
}

func (f *fakeCajaService) Cerrar(context.Context, dto.CerrarCajaRequest) (*dto.CierreCajaResponse, error) {
	if f.cerrarErr != nil {
		return nil, f.cerrarErr
	}
	return &dto.CierreCajaResponse{}, nil
}

func (f *fakeCajaService) SesionActual(context.Context) (*dto.SesionCajaResponse, error) {
	return f.actual, nil
}

func (f *fakeCajaService) ArqueoPrevia(context.Context) (*dto.ArqueoPreviaResponse, error) {
	return &dto.ArqueoPreviaResponse{}, nil
}

func (f *fakeCajaService) Historial(context.Context, int, int) ([]dto.CierreCajaResponse, int64, error) {
	return nil, 0, nil
}

var _ service.CajaService = (*fakeCajaService)(nil)

func setupRouter(svc service.CajaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewCajaHandler(svc)
	r.POST("/v1/caja/abrir", h.Abrir)
	r.POST("/v1/caja/cierre", h.Cerrar)
	r.GET("/v1/caja/actual", h.SesionActual)
	return r
}

func post(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAbrirHandlerCreated(t *testing.T) {
	r := setupRouter(&fakeCajaService{})

	w := post(t, r, "/v1/caja/abrir", gin.H{"monto_inicial": 100000, "operador": "admin"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SesionCajaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp.Operador)
}

func TestAbrirHandlerSinOperador(t *testing.T) {
	r := setupRouter(&fakeCajaService{})

	w := post(t, r, "/v1/caja/abrir", gin.H{"monto_inicial": 100000})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAbrirHandlerConflicto(t *testing.T) {
	r := setupRouter(&fakeCajaService{abrirErr: service.ErrCajaYaAbierta})

	w := post(t, r, "/v1/caja/abrir", gin.H{"monto_inicial": 1000, "operador": "admin"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCerrarHandlerSinSesion(t *testing.T) {
	r := setupRouter(&fakeCajaService{cerrarErr: service.ErrCajaNoAbierta})

	w := post(t, r, "/v1/caja/cierre", gin.H{"efectivo_contado": 0})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCerrarHandlerMontoInvalido(t *testing.T) {
	r := setupRouter(&fakeCajaService{cerrarErr: service.ErrMontoInvalido})

	w := post(t, r, "/v1/caja/cierre", gin.H{"efectivo_contado": 100})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSesionActualHandler404(t *testing.T) {
	r := setupRouter(&fakeCajaService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/caja/actual", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
