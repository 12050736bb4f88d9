package export

import (
	"context"
	"fmt"

	"github.com/jcamargo/bascula-api/internal/domain"
	"github.com/jcamargo/bascula-api/internal/domain/repository"
)

// InvoiceUseCase genera los documentos de un pesaje individual: la factura
// docx por sustitución de plantilla y el tiquete PDF imprimible.
type InvoiceUseCase struct {
	repo     repository.WeighingRepository
	renderer InvoiceRenderer
	pdf      TicketPDFGenerator
}

// NewInvoiceUseCase construye el caso de uso inyectando ambos generadores.
func NewInvoiceUseCase(repo repository.WeighingRepository, renderer InvoiceRenderer, pdf TicketPDFGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, renderer: renderer, pdf: pdf}
}

// RenderInvoiceDocx carga el pesaje resuelto y sustituye la plantilla.
//
// Retorna:
//   - (docBytes, filename, nil)        si todo sale bien.
//   - domain.ErrNotFound               si el pesaje no existe.
//   - domain.ErrTemplateNotFound       si falta la plantilla (configuración).
func (uc *InvoiceUseCase) RenderInvoiceDocx(ctx context.Context, id string) ([]byte, string, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("invoice: obtener pesaje: %w", err)
	}
	if w == nil {
		return nil, "", domain.ErrNotFound
	}
	data, err := uc.renderer.RenderInvoice(w)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("invoice_%s.docx", w.CarNumber), nil
}

// RenderTicketPDF genera el tiquete de báscula del pesaje.
func (uc *InvoiceUseCase) RenderTicketPDF(ctx context.Context, id string) ([]byte, string, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: obtener pesaje: %w", err)
	}
	if w == nil {
		return nil, "", domain.ErrNotFound
	}
	data, err := uc.pdf.GenerateTicketPDF(ctx, w)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: generar pdf: %w", err)
	}
	return data, fmt.Sprintf("ticket_%s.pdf", w.CarNumber), nil
}
