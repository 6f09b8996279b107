package worker

// factura_worker.go
// Processes invoice jobs from QueueFactura: renders the PDF for a venta whose
// numero de factura was already assigned, stores the file path, and enqueues
// the email that delivers it to the client.

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"comidapp/internal/infra"
	"comidapp/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// FacturaJobPayload is the job envelope sent to QueueFactura.
type FacturaJobPayload struct {
	VentaID string `json:"venta_id"`
}

// FacturaWorker renders and persists invoice PDFs.
type FacturaWorker struct {
	ventaRepo  repository.VentaRepository
	pedidoRepo repository.PedidoRepository
	dispatcher *Dispatcher
	pdfStorage string
}

func NewFacturaWorker(
	ventaRepo repository.VentaRepository,
	pedidoRepo repository.PedidoRepository,
	dispatcher *Dispatcher,
	pdfStorage string,
) *FacturaWorker {
	return &FacturaWorker{
		ventaRepo:  ventaRepo,
		pedidoRepo: pedidoRepo,
		dispatcher: dispatcher,
		pdfStorage: pdfStorage,
	}
}

// Process handles a single invoice job:
//  1. Fetch the Venta (with cliente) and its Pedido (with items)
//  2. Render the PDF
//  3. Persist the PDF path on the Venta
//  4. Enqueue the invoice email when the cliente has an address
func (w *FacturaWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload FacturaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("factura_worker: invalid payload: %w", err)
	}

	ventaID, err := uuid.Parse(payload.VentaID)
	if err != nil {
		return fmt.Errorf("factura_worker: invalid venta_id %q", payload.VentaID)
	}

	venta, err := w.ventaRepo.ObtenerPorID(ctx, ventaID)
	if err != nil {
		return fmt.Errorf("factura_worker: venta %s not found: %w", payload.VentaID, err)
	}

	pedido, err := w.pedidoRepo.ObtenerPorID(ctx, venta.PedidoID)
	if err != nil {
		return fmt.Errorf("factura_worker: pedido %s not found: %w", venta.PedidoID, err)
	}

	pdfPath, err := infra.GenerateFacturaPDF(venta, pedido, w.pdfStorage)
	if err != nil {
		return fmt.Errorf("factura_worker: render PDF: %w", err)
	}

	// the stored path is relative to the storage dir
	if err := w.ventaRepo.ActualizarPDFPath(ctx, venta.ID, filepath.Base(pdfPath)); err != nil {
		return fmt.Errorf("factura_worker: persist PDF path: %w", err)
	}
	log.Info().Str("venta_id", payload.VentaID).Str("pdf", pdfPath).Msg("factura_worker: PDF generated")

	if venta.Cliente != nil && venta.Cliente.Email != "" && venta.NumeroFactura != nil {
		emailJob := EmailJobPayload{
			ToEmail:    venta.Cliente.Email,
			Subject:    fmt.Sprintf("Tu factura %s", *venta.NumeroFactura),
			Body:       fmt.Sprintf("Adjuntamos la factura de tu pedido.\nTotal: $%s", venta.MontoTotal.StringFixed(2)),
			AttachPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", venta.Cliente.Email).Msg("factura_worker: failed to enqueue email")
		}
	}

	return nil
}
