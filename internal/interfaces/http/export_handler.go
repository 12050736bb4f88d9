package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/bascula-api/internal/application/dto"
	"github.com/jcamargo/bascula-api/internal/application/export"
	"github.com/jcamargo/bascula-api/internal/domain"
)

// Content types de los artefactos binarios.
const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	contentTypePDF  = "application/pdf"
)

// ExportHandler maneja las descargas de artefactos (protegido, solo lectura).
type ExportHandler struct {
	excelUC   *export.ExcelUseCase
	invoiceUC *export.InvoiceUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(excelUC *export.ExcelUseCase, invoiceUC *export.InvoiceUseCase) *ExportHandler {
	return &ExportHandler{excelUC: excelUC, invoiceUC: invoiceUC}
}

// Excel godoc
// @Summary      Exportar listado de pesajes (xlsx)
// @Tags         export
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from        query  string  false  "Fecha inicial (inclusiva)"
// @Param        to          query  string  false  "Fecha final (inclusiva)"
// @Param        supplierId  query  string  false  "ID exacto de proveedor"
// @Param        carNumber   query  string  false  "Substring de placa"
// @Success      200  {file}  binary
// @Router       /api/export/excel [get]
func (h *ExportHandler) Excel(c *fiber.Ctx) error {
	var in dto.ListWeighingsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	data, filename, err := h.excelUC.Export(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendAttachment(c, data, filename, contentTypeXLSX)
}

// InvoiceDocx godoc
// @Summary      Factura de pesaje (docx por plantilla)
// @Tags         export
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param        id  path  string  true  "ID del pesaje"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/weighings/{id}/invoice.docx [get]
func (h *ExportHandler) InvoiceDocx(c *fiber.Ctx) error {
	data, filename, err := h.invoiceUC.RenderInvoiceDocx(c.Context(), c.Params("id"))
	if err != nil {
		return documentError(c, err)
	}
	return sendAttachment(c, data, filename, contentTypeDOCX)
}

// TicketPDF godoc
// @Summary      Tiquete de báscula (pdf)
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pesaje"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/weighings/{id}/ticket.pdf [get]
func (h *ExportHandler) TicketPDF(c *fiber.Ctx) error {
	data, filename, err := h.invoiceUC.RenderTicketPDF(c.Context(), c.Params("id"))
	if err != nil {
		return documentError(c, err)
	}
	return sendAttachment(c, data, filename, contentTypePDF)
}

// documentError distingue registro inexistente (404) de plantilla ausente,
// que es un error de configuración del despliegue (500 TEMPLATE_ERROR).
func documentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pesaje no encontrado"})
	case errors.Is(err, domain.ErrTemplateNotFound):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "TEMPLATE_ERROR", Message: "plantilla de factura no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func sendAttachment(c *fiber.Ctx, data []byte, filename, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
