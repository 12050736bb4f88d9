package export

import (
	"context"

	"github.com/jcamargo/bascula-api/internal/domain/entity"
)

// SpreadsheetBuilder produce el artefacto xlsx con el listado de pesajes.
// Recibe los registros ya filtrados, ordenados y resueltos; el builder no
// consulta nada.
type SpreadsheetBuilder interface {
	BuildWeighingList(weighings []*entity.Weighing) ([]byte, error)
}

// InvoiceRenderer sustituye los placeholders de la plantilla docx con los
// valores de un pesaje resuelto. Plantilla ausente -> domain.ErrTemplateNotFound
// (error de configuración, distinto de registro inexistente).
type InvoiceRenderer interface {
	RenderInvoice(w *entity.Weighing) ([]byte, error)
}

// TicketPDFGenerator genera el tiquete de báscula imprimible en PDF.
type TicketPDFGenerator interface {
	GenerateTicketPDF(ctx context.Context, w *entity.Weighing) ([]byte, error)
}
