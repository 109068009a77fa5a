package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bledev-tech/inventario-api/internal/application/movimiento"
	"github.com/bledev-tech/inventario-api/internal/domain/entity"
	"github.com/bledev-tech/inventario-api/internal/domain/repository"
	apphttp "github.com/bledev-tech/inventario-api/internal/interfaces/http"
)

// movRepoFake ledger en memoria mínimo para el handler.
type movRepoFake struct {
	movs []*entity.Movimiento
}

func (f *movRepoFake) Create(_ context.Context, m *entity.Movimiento) (int64, error) {
	id := int64(len(f.movs) + 1)
	copia := *m
	copia.ID = id
	f.movs = append(f.movs, &copia)
	return id, nil
}

func (f *movRepoFake) GetByID(_ context.Context, _, _ int64) (*entity.Movimiento, error) {
	return nil, nil
}

func (f *movRepoFake) List(_ context.Context, tenantID int64, _ repository.MovimientoFilter) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range f.movs {
		if m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *movRepoFake) ListByProductos(_ context.Context, _ int64, _ []int64, _, _ *time.Time) ([]*entity.Movimiento, error) {
	return nil, nil
}

type productoRepoFake struct{ productos map[int64]*entity.Producto }

func (f *productoRepoFake) GetByID(_ context.Context, tenantID, id int64) (*entity.Producto, error) {
	p := f.productos[id]
	if p == nil || p.TenantID != tenantID {
		return nil, nil
	}
	return p, nil
}

func (f *productoRepoFake) ListActivos(_ context.Context, _ int64, _, _ []int64) ([]*entity.Producto, error) {
	return nil, nil
}

type locacionRepoFake struct{ locaciones map[int64]*entity.Locacion }

func (f *locacionRepoFake) GetByID(_ context.Context, tenantID, id int64) (*entity.Locacion, error) {
	l := f.locaciones[id]
	if l == nil || l.TenantID != tenantID {
		return nil, nil
	}
	return l, nil
}

func (f *locacionRepoFake) List(_ context.Context, _ int64) ([]*entity.Locacion, error) {
	return nil, nil
}

// buildMovimientosApp app Fiber con las rutas de movimientos y auth real.
func buildMovimientosApp(t *testing.T) (*fiber.App, *movRepoFake) {
	t.Helper()
	movRepo := &movRepoFake{}
	prodRepo := &productoRepoFake{productos: map[int64]*entity.Producto{
		100: {ID: 100, TenantID: testTenantID, Nombre: "Guante de nitrilo", Activo: true},
	}}
	locRepo := &locacionRepoFake{locaciones: map[int64]*entity.Locacion{
		1: {ID: 1, TenantID: testTenantID, Nombre: "Bodega", Activa: true},
		2: {ID: 2, TenantID: testTenantID, Nombre: "Obra", Activa: true},
	}}
	uc := movimiento.NewRegisterMovementUseCase(movRepo, prodRepo, locRepo)

	app := fiber.New()
	handler := apphttp.NewMovimientoHandler(uc)
	grupo := app.Group("/api/v1", apphttp.AuthMiddleware(testJWTSecret))
	grupo.Post("/movimientos", apphttp.RequireRole("admin", "operador"), handler.Register)
	grupo.Get("/movimientos", handler.List)
	return app, movRepo
}

func postMovimiento(t *testing.T, app *fiber.App, token string, body map[string]any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/movimientos", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRegistrarMovimiento_IngresoValido(t *testing.T) {
	app, repo := buildMovimientosApp(t)

	resp := postMovimiento(t, app, tokenForRole(t, "operador"), map[string]any{
		"tipo":           "ingreso",
		"producto_id":    100,
		"to_locacion_id": 1,
		"cantidad":       "10.5",
		"nota":           "compra semanal",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["id"], "el primer movimiento recibe id 1")
	assert.Equal(t, "ingreso", body["tipo"])

	require.Len(t, repo.movs, 1)
	assert.Equal(t, testTenantID, repo.movs[0].TenantID, "el tenant sale del token, no del body")
}

func TestRegistrarMovimiento_CombinacionInvalida(t *testing.T) {
	app, repo := buildMovimientosApp(t)

	// Un uso no admite locación destino.
	resp := postMovimiento(t, app, tokenForRole(t, "operador"), map[string]any{
		"tipo":             "uso",
		"producto_id":      100,
		"from_locacion_id": 1,
		"to_locacion_id":   2,
		"cantidad":         "3",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.movs, "un movimiento inválido jamás llega al store")

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "VALIDATION", errBody["code"])
	assert.Contains(t, errBody["message"], "to_locacion_id")
}

func TestRegistrarMovimiento_ProductoInexistente(t *testing.T) {
	app, _ := buildMovimientosApp(t)

	resp := postMovimiento(t, app, tokenForRole(t, "admin"), map[string]any{
		"tipo":           "ingreso",
		"producto_id":    999,
		"to_locacion_id": 1,
		"cantidad":       "1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRegistrarMovimiento_RolLectorBloqueado(t *testing.T) {
	app, repo := buildMovimientosApp(t)

	resp := postMovimiento(t, app, tokenForRole(t, "lector"), map[string]any{
		"tipo":           "ingreso",
		"producto_id":    100,
		"to_locacion_id": 1,
		"cantidad":       "1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, repo.movs)
}

func TestListarMovimientos_TipoDesconocido(t *testing.T) {
	app, _ := buildMovimientosApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movimientos?tipo=venta", nil)
	req.Header.Set("Authorization", tokenForRole(t, "lector"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
