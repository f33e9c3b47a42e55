// Package livingapps implementa los adaptadores de acceso al REST API de
// LivingApps (plataforma low-code que aloja las seis apps del sistema de
// almacén). Cada colección es una "app" con registros identificados por un
// id de 24 caracteres hexadecimales.
//
// Endpoints usados:
//
//	GET  {base}/apps/{appID}/records      → mapa id → registro
//	POST {base}/apps/{appID}/records      → crea un registro {"fields": {...}}
//
// La autenticación es por cookie de sesión; el transporte no reintenta:
// un fallo se propaga con el texto crudo del servidor.
package livingapps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ── Configuración ─────────────────────────────────────────────────────────────

// AppIDs identificadores de las apps LivingApps de cada colección.
type AppIDs struct {
	Products      string
	StockLevels   string
	Orders        string
	GoodsReceipts string
	Suppliers     string
}

// Config opciones del cliente REST.
type Config struct {
	BaseURL       string // ej. https://my.living-apps.de/rest (sin slash final)
	SessionCookie string // cabecera Cookie completa de la sesión LivingApps
	Timeout       time.Duration
}

// ── Cliente ───────────────────────────────────────────────────────────────────

// Client cliente HTTP del REST API de LivingApps. Usa net/http de la stdlib;
// el API no ofrece SDK y el protocolo son dos endpoints JSON.
type Client struct {
	baseURL    string
	cookie     string
	httpClient *http.Client
}

// NewClient construye el cliente. Timeout cero aplica 30 s por defecto.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		cookie:     cfg.SessionCookie,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL devuelve la URL base configurada (para construir localizadores
// applookup de salida).
func (c *Client) BaseURL() string { return c.baseURL }

// APIError error devuelto por el servidor LivingApps en respuestas no-2xx.
// Body es el texto crudo del servidor; se muestra al usuario tal cual.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("livingapps: HTTP %d: %s", e.StatusCode, e.Body)
}

// RawRecord envoltura de un registro tal como lo entrega el API: timestamps
// de creación/actualización más el mapeo de campos sin tipar.
type RawRecord struct {
	ID        string          `json:"id,omitempty"` // presente en respuestas de registro único
	CreatedAt string          `json:"createdat"`
	UpdatedAt *string         `json:"updatedat"`
	Fields    json.RawMessage `json:"fields"`
}

// Records ejecuta el fetch-all de una app. La respuesta es un mapa
// record id → registro; el id no viene repetido dentro del registro.
func (c *Client) Records(ctx context.Context, appID string) (map[string]RawRecord, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/apps/%s/records", c.baseURL, appID), nil)
	if err != nil {
		return nil, err
	}
	var records map[string]RawRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("livingapps: decodificar colección %s: %w", appID, err)
	}
	return records, nil
}

// CreateRecord crea un registro con el mapeo de campos dado y devuelve la
// respuesta del servidor decodificada (al menos el id del registro creado).
func (c *Client) CreateRecord(ctx context.Context, appID string, fields any) (*RawRecord, error) {
	payload, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return nil, fmt.Errorf("livingapps: serializar payload: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("%s/apps/%s/records", c.baseURL, appID), payload)
	if err != nil {
		return nil, err
	}
	var created RawRecord
	if len(body) > 0 {
		// El cuerpo de la respuesta de creación es informativo; si no
		// decodifica no se trata como fallo de la escritura.
		_ = json.Unmarshal(body, &created)
	}
	return &created, nil
}

func (c *Client) do(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("livingapps: construir request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("livingapps: %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("livingapps: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
