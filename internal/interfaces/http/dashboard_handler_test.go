package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/lagerhub/internal/application/analytics"
	appsnapshot "github.com/jhoicas/lagerhub/internal/application/snapshot"
	"github.com/jhoicas/lagerhub/internal/domain/entity"
	"github.com/jhoicas/lagerhub/internal/domain/record"
	apphttp "github.com/jhoicas/lagerhub/internal/interfaces/http"
	"github.com/jhoicas/lagerhub/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de los puertos de lectura
// ──────────────────────────────────────────────────────────────────────────────

const stubProductID = "aaaaaaaaaaaaaaaaaaaaaaa1"

type memProducts struct{ items []entity.Product }

func (m memProducts) ListAll(_ context.Context) ([]entity.Product, error) { return m.items, nil }

type memStocks struct{ items []entity.StockLevel }

func (m memStocks) ListAll(_ context.Context) ([]entity.StockLevel, error) { return m.items, nil }

type memOrders struct{}

func (memOrders) ListAll(_ context.Context) ([]entity.Order, error) { return nil, nil }

type memReceipts struct{}

func (memReceipts) ListAll(_ context.Context) ([]entity.GoodsReceipt, error) { return nil, nil }
func (memReceipts) Create(_ context.Context, _ entity.GoodsReceiptDraft) (*entity.GoodsReceipt, error) {
	return nil, nil
}

type memSuppliers struct{}

func (memSuppliers) ListAll(_ context.Context) ([]entity.Supplier, error) { return nil, nil }

func price(s string) *decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return &v
}

// buildDashboardApp arma la app con el snapshot cargado (o no) y el
// endpoint de resumen.
func buildDashboardApp(t *testing.T, preload bool) *fiber.App {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	loader := appsnapshot.NewLoader(
		memProducts{items: []entity.Product{
			{RecordID: stubProductID, Name: "Schraube", PurchasePrice: price("2")},
		}},
		memStocks{items: []entity.StockLevel{
			{RecordID: "s1", ProductRef: record.Ref("https://x/apps/a/records/" + stubProductID), OnHand: decimal.NewFromInt(10)},
		}},
		memOrders{}, memReceipts{}, memSuppliers{},
	)
	svc := appsnapshot.NewService(loader, appsnapshot.NewStore(), log)
	if preload {
		_, err := svc.Refresh(context.Background())
		require.NoError(t, err)
	}

	uc := appanalytics.NewDashboardUseCase(svc)
	handler := apphttp.NewDashboardHandler(uc, nil)

	app := fiber.New()
	app.Get("/api/dashboard/summary", handler.GetSummary)
	return app
}

func TestGetSummary_SnapshotNoCargado_Retorna503(t *testing.T) {
	app := buildDashboardApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "SNAPSHOT_NOT_LOADED", body["code"])
}

func TestGetSummary_ConSnapshot_DevuelveKPIs(t *testing.T) {
	app := buildDashboardApp(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	raw, _ := body["total_inventory_value"].(string)
	total, err := decimal.NewFromString(raw)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(20)), "10 × 2 = 20, obtenido %s", raw)
	assert.Equal(t, float64(1), body["stock_positions"])
}
