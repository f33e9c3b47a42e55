// Package receiving implementa el registro de entradas de mercancía: la
// única operación de escritura del servicio.
package receiving

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lagerhub/internal/application/dto"
	"github.com/jhoicas/lagerhub/internal/application/snapshot"
	"github.com/jhoicas/lagerhub/internal/domain"
	"github.com/jhoicas/lagerhub/internal/domain/entity"
	"github.com/jhoicas/lagerhub/internal/domain/record"
	"github.com/jhoicas/lagerhub/internal/domain/repository"
	"github.com/jhoicas/lagerhub/pkg/logger"
)

// ValidationError error de validación local: se produce antes de cualquier
// llamada de red y lista los campos problemáticos.
type ValidationError struct {
	Fields map[string]string // campo → motivo
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, reason := range e.Fields {
		parts = append(parts, f+": "+reason)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// UseCase valida, normaliza y entrega la entrada al adaptador de escritura;
// tras un éxito dispara la recarga completa del snapshot (sin parche
// optimista de la colección).
type UseCase struct {
	receipts  repository.GoodsReceiptRepository
	snapshots *snapshot.Service
	log       *logger.Logger
	now       func() time.Time

	// inFlight: una sola escritura en vuelo; la segunda se rechaza con 409
	// en lugar de coordinarse.
	inFlight sync.Mutex
}

// NewUseCase construye el caso de uso.
func NewUseCase(receipts repository.GoodsReceiptRepository, snapshots *snapshot.Service, log *logger.Logger) *UseCase {
	return &UseCase{receipts: receipts, snapshots: snapshots, log: log, now: time.Now}
}

// Create valida el request, crea el registro en LivingApps y recarga el
// snapshot. Errores:
//   - *ValidationError (envuelve ErrInvalidInput): fallo local, sin red.
//   - ErrSubmissionInFlight: ya hay una escritura en curso.
//   - error del adaptador: rechazo remoto con el texto crudo del servidor;
//     no se reintenta y el caller conserva el estado del formulario.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateReceiptRequest) (*dto.CreateReceiptResponse, error) {
	draft, err := uc.validate(in)
	if err != nil {
		return nil, err
	}

	if !uc.inFlight.TryLock() {
		return nil, domain.ErrSubmissionInFlight
	}
	defer uc.inFlight.Unlock()

	created, err := uc.receipts.Create(ctx, *draft)
	if err != nil {
		uc.log.Warn().Err(err).Str("product_id", draft.ProductID).Msg("creación de entrada rechazada")
		return nil, err
	}

	uc.log.Info().
		Str("record_id", created.RecordID).
		Str("product_id", draft.ProductID).
		Str("quantity", draft.DeliveredQuantity.String()).
		Msg("entrada de mercancía registrada")

	// Escritura exitosa invalida el snapshot completo: recarga total en vez
	// de parchear la colección. Un fallo de recarga no deshace la escritura;
	// el estado queda registrado en el store y el cliente puede reintentar.
	if _, err := uc.snapshots.Refresh(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("recarga tras escritura fallida")
	}

	return &dto.CreateReceiptResponse{
		RecordID: created.RecordID,
		Message:  "entrada registrada",
	}, nil
}

// validate aplica las reglas locales y normaliza al draft. Obligatorios:
// producto, cantidad entregada (numérica finita y positiva) y ubicación.
// Los opcionales en blanco no llegan al payload.
func (uc *UseCase) validate(in dto.CreateReceiptRequest) (*entity.GoodsReceiptDraft, error) {
	problems := make(map[string]string)

	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		problems["product_id"] = "obligatorio"
	} else if record.ExtractID(productID) != productID {
		problems["product_id"] = "debe ser un record id de 24 caracteres hexadecimales"
	}

	qtyRaw := strings.TrimSpace(in.DeliveredQuantity)
	var qty decimal.Decimal
	if qtyRaw == "" {
		problems["delivered_quantity"] = "obligatorio"
	} else {
		parsed, err := decimal.NewFromString(qtyRaw)
		switch {
		case err != nil:
			problems["delivered_quantity"] = "debe ser numérico"
		case parsed.IsNegative() || parsed.IsZero():
			problems["delivered_quantity"] = "debe ser mayor que cero"
		default:
			qty = parsed
		}
	}

	location := strings.TrimSpace(in.Location)
	if location == "" {
		problems["location"] = "obligatorio"
	}

	if supplierID := strings.TrimSpace(in.SupplierID); supplierID != "" && record.ExtractID(supplierID) != supplierID {
		problems["supplier_id"] = "debe ser un record id de 24 caracteres hexadecimales"
	}
	if orderID := strings.TrimSpace(in.OrderID); orderID != "" && record.ExtractID(orderID) != orderID {
		problems["order_id"] = "debe ser un record id de 24 caracteres hexadecimales"
	}
	if d := strings.TrimSpace(in.DeliveryDate); d != "" {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			problems["delivery_date"] = "formato esperado: YYYY-MM-DD"
		}
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Fields: problems}
	}

	draft := &entity.GoodsReceiptDraft{
		ProductID:         productID,
		SupplierID:        strings.TrimSpace(in.SupplierID),
		OrderID:           strings.TrimSpace(in.OrderID),
		DeliveryDate:      strings.TrimSpace(in.DeliveryDate),
		DeliveredQuantity: qty,
		Location:          entity.StorageLocation(location),
		Quality:           entity.QualityResult(strings.TrimSpace(in.Quality)),
		DeliveryNoteNo:    strings.TrimSpace(in.DeliveryNoteNo),
		RecordedBy:        strings.TrimSpace(in.RecordedBy),
		RecordedAt:        uc.now().Format("2006-01-02T15:04"),
		Deviations:        strings.TrimSpace(in.Deviations),
	}
	return draft, nil
}
