package livingapps_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lagerhub/internal/domain/entity"
	"github.com/jhoicas/lagerhub/internal/infrastructure/livingapps"
)

const (
	productRecordID  = "aaaaaaaaaaaaaaaaaaaaaaa1"
	supplierRecordID = "bbbbbbbbbbbbbbbbbbbbbbb1"
	createdRecordID  = "ccccccccccccccccccccccc9"
)

func testAppIDs() livingapps.AppIDs {
	return livingapps.AppIDs{
		Products:      "app-produkte",
		StockLevels:   "app-lagerbestand",
		Orders:        "app-bestellungen",
		GoodsReceipts: "app-wareneingang",
		Suppliers:     "app-lieferanten",
	}
}

func TestCreate_SerializaApplookupsComoURLs(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apps/app-wareneingang/records", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "` + createdRecordID + `", "createdat": "2025-03-14T09:00"}`))
	}))
	defer srv.Close()

	client := livingapps.NewClient(livingapps.Config{BaseURL: srv.URL})
	repo := livingapps.NewGoodsReceiptRepository(client, testAppIDs())

	created, err := repo.Create(context.Background(), entity.GoodsReceiptDraft{
		ProductID:         productRecordID,
		SupplierID:        supplierRecordID,
		DeliveredQuantity: decimal.NewFromInt(25),
		Location:          entity.LocationRegalA1,
		Quality:           entity.QualityBestanden,
		DeliveryDate:      "2025-03-14",
		RecordedAt:        "2025-03-14T09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, createdRecordID, created.RecordID)

	fields, ok := captured["fields"].(map[string]any)
	require.True(t, ok)
	// los applookup salen como localizadores completos, no ids pelados
	assert.Equal(t, srv.URL+"/apps/app-produkte/records/"+productRecordID, fields["produkt"])
	assert.Equal(t, srv.URL+"/apps/app-lieferanten/records/"+supplierRecordID, fields["lieferant"])
	assert.Equal(t, "regal_a1", fields["lagerort"])
	assert.Equal(t, "bestanden", fields["qualitaetspruefung"])
}

func TestCreate_OpcionalesAusentesSeOmitenDelPayload(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "` + createdRecordID + `", "createdat": "2025-03-14T09:00"}`))
	}))
	defer srv.Close()

	client := livingapps.NewClient(livingapps.Config{BaseURL: srv.URL})
	repo := livingapps.NewGoodsReceiptRepository(client, testAppIDs())

	_, err := repo.Create(context.Background(), entity.GoodsReceiptDraft{
		ProductID:         productRecordID,
		DeliveredQuantity: decimal.NewFromInt(5),
		Location:          entity.LocationRegalB1,
	})
	require.NoError(t, err)

	fields, ok := captured["fields"].(map[string]any)
	require.True(t, ok)
	// ausente ≠ cadena vacía: los opcionales en blanco no viajan
	assert.NotContains(t, fields, "lieferant")
	assert.NotContains(t, fields, "bestellung")
	assert.NotContains(t, fields, "lieferdatum")
	assert.NotContains(t, fields, "qualitaetspruefung")
	assert.Contains(t, fields, "produkt")
	assert.Contains(t, fields, "gelieferte_menge")
}

func TestCreate_RechazoDelServidorSePropagaConElCuerpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": "gelieferte_menge must be positive"}`))
	}))
	defer srv.Close()

	client := livingapps.NewClient(livingapps.Config{BaseURL: srv.URL})
	repo := livingapps.NewGoodsReceiptRepository(client, testAppIDs())

	_, err := repo.Create(context.Background(), entity.GoodsReceiptDraft{
		ProductID:         productRecordID,
		DeliveredQuantity: decimal.NewFromInt(1),
		Location:          entity.LocationRegalA1,
	})
	require.Error(t, err)

	var apiErr *livingapps.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Body, "gelieferte_menge must be positive")
}

func TestListAll_MapeaCamposAlemanes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apps/app-wareneingang/records", r.URL.Path)
		w.Write([]byte(`{
			"` + createdRecordID + `": {
				"createdat": "2025-03-10T08:00",
				"updatedat": null,
				"fields": {
					"produkt": "` + "https://x/apps/app-produkte/records/" + productRecordID + `",
					"gelieferte_menge": 12,
					"lagerort": "kuehllager",
					"qualitaetspruefung": "mit_maengeln",
					"lieferdatum": "2025-03-10"
				}
			}
		}`))
	}))
	defer srv.Close()

	client := livingapps.NewClient(livingapps.Config{BaseURL: srv.URL})
	repo := livingapps.NewGoodsReceiptRepository(client, testAppIDs())

	receipts, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, receipts, 1)

	r := receipts[0]
	assert.Equal(t, createdRecordID, r.RecordID)
	assert.Equal(t, productRecordID, r.ProductRef.ID())
	assert.True(t, r.DeliveredQuantity.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, entity.LocationKuehllager, r.Location)
	assert.Equal(t, entity.QualityMitMaengeln, r.Quality)
	assert.Equal(t, "2025-03-10", r.DeliveryDate)
}
