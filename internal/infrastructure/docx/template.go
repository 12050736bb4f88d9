package docx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jcamargo/bascula-api/internal/domain"
)

// InvoiceTemplateName nombre lógico de la plantilla de factura.
const InvoiceTemplateName = "invoice_template.docx"

// TemplateStore entrega plantillas binarias por nombre lógico desde el
// directorio configurado. La ausencia del archivo es un error de
// configuración (ErrTemplateNotFound), no un error por petición.
type TemplateStore struct {
	dir string
}

// NewTemplateStore construye el store sobre el directorio de plantillas.
func NewTemplateStore(dir string) *TemplateStore {
	return &TemplateStore{dir: dir}
}

// Load lee la plantilla por nombre lógico.
func (s *TemplateStore) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("docx: leer plantilla %s: %w", name, err)
	}
	return data, nil
}
