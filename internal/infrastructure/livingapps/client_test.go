package livingapps_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lagerhub/internal/infrastructure/livingapps"
)

const (
	testAppID    = "app-produkte"
	testRecordID = "6423a1b2c3d4e5f601234567"
	testCookie   = "sessionid=abc123"
)

func newClient(srv *httptest.Server) *livingapps.Client {
	return livingapps.NewClient(livingapps.Config{
		BaseURL:       srv.URL,
		SessionCookie: testCookie,
	})
}

func TestRecords_DecodificaMapaDeRegistros(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/apps/"+testAppID+"/records", r.URL.Path)
		assert.Equal(t, testCookie, r.Header.Get("Cookie"), "la cookie de sesión debe viajar en cada petición")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"` + testRecordID + `": {
				"createdat": "2025-03-01T10:00",
				"updatedat": null,
				"fields": {"produktname": "Schraube M8", "einkaufspreis": 2.5}
			}
		}`))
	}))
	defer srv.Close()

	records, err := newClient(srv).Records(context.Background(), testAppID)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec, ok := records[testRecordID]
	require.True(t, ok, "el mapa debe estar indexado por record id")
	assert.Equal(t, "2025-03-01T10:00", rec.CreatedAt)
	assert.Nil(t, rec.UpdatedAt)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(rec.Fields, &fields))
	assert.Equal(t, "Schraube M8", fields["produktname"])
}

func TestRecords_ErrorNo2xxConservaElCuerpoCrudo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("session expired"))
	}))
	defer srv.Close()

	_, err := newClient(srv).Records(context.Background(), testAppID)
	require.Error(t, err)

	var apiErr *livingapps.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "session expired", apiErr.Body,
		"el texto crudo del servidor debe conservarse sin transformar")
}

func TestCreateRecord_EnvuelveLosCamposEnFields(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "` + testRecordID + `", "createdat": "2025-03-14T09:00"}`))
	}))
	defer srv.Close()

	created, err := newClient(srv).CreateRecord(context.Background(), testAppID,
		map[string]any{"lagerort": "regal_a1"})
	require.NoError(t, err)
	assert.Equal(t, testRecordID, created.ID)
	assert.Equal(t, "2025-03-14T09:00", created.CreatedAt)

	fields, ok := captured["fields"].(map[string]any)
	require.True(t, ok, "el payload debe ir envuelto en fields")
	assert.Equal(t, "regal_a1", fields["lagerort"])
}

func TestCreateRecord_CuerpoNoDecodificableNoEsFallo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	created, err := newClient(srv).CreateRecord(context.Background(), testAppID, map[string]any{})
	require.NoError(t, err, "la escritura fue 2xx; el cuerpo es informativo")
	assert.Empty(t, created.ID)
}
