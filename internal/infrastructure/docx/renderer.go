// Package docx genera la factura de pesaje sustituyendo placeholders en una
// plantilla WordprocessingML de estructura fija. Sustitución exacta, sin
// condicionales ni bucles; los delimitadores {{...}} evitan coincidencias
// accidentales de substrings en el texto circundante.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	appexport "github.com/jcamargo/bascula-api/internal/application/export"
	"github.com/jcamargo/bascula-api/internal/domain/entity"
)

// Placeholder cuando el pesaje no tiene proveedor. Nunca vacío ni null.
const noSupplierDash = "-"

// documentPart entrada del paquete OPC que contiene el cuerpo del documento.
const documentPart = "word/document.xml"

var _ appexport.InvoiceRenderer = (*Renderer)(nil)

// Renderer implementa export.InvoiceRenderer sobre una plantilla docx.
type Renderer struct {
	templates *TemplateStore
}

// NewRenderer construye el renderizador con su store de plantillas.
func NewRenderer(templates *TemplateStore) *Renderer {
	return &Renderer{templates: templates}
}

// RenderInvoice carga la plantilla, sustituye los placeholders con los valores
// del pesaje resuelto y re-empaqueta el docx. Solo se reescribe
// word/document.xml; el resto de entradas del paquete se copian intactas.
func (r *Renderer) RenderInvoice(w *entity.Weighing) ([]byte, error) {
	tpl, err := r.templates.Load(InvoiceTemplateName)
	if err != nil {
		return nil, err
	}

	zr, err := zip.NewReader(bytes.NewReader(tpl), int64(len(tpl)))
	if err != nil {
		return nil, fmt.Errorf("docx: plantilla corrupta: %w", err)
	}

	replacer := placeholderReplacer(w)

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, entry := range zr.File {
		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("docx: abrir %s: %w", entry.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("docx: leer %s: %w", entry.Name, err)
		}

		if entry.Name == documentPart {
			content = []byte(replacer.Replace(string(content)))
		}

		fw, err := zw.Create(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("docx: crear entrada %s: %w", entry.Name, err)
		}
		if _, err := fw.Write(content); err != nil {
			return nil, fmt.Errorf("docx: escribir %s: %w", entry.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx: cerrar paquete: %w", err)
	}
	return out.Bytes(), nil
}

// placeholderReplacer arma el reemplazo exacto de cada placeholder con su
// valor escapado para XML. date y time salen del mismo instante de creación.
func placeholderReplacer(w *entity.Weighing) *strings.Replacer {
	supplier := noSupplierDash
	if w.SupplierName != nil && *w.SupplierName != "" {
		supplier = *w.SupplierName
	}
	created := w.CreatedAt.UTC()

	pairs := []string{
		"{{car_number}}", xmlEscape(w.CarNumber),
		"{{supplier_name}}", xmlEscape(supplier),
		"{{gross_weight}}", w.GrossWeight.String(),
		"{{tare_count}}", strconv.Itoa(w.TareCount),
		"{{tare_weight}}", w.TareWeight.String(),
		"{{tare_total}}", w.TareTotal.String(),
		"{{net_weight}}", w.NetWeight.String(),
		"{{date}}", created.Format("2006-01-02"),
		"{{time}}", created.Format("15:04:05"),
		"{{operator_name}}", xmlEscape(w.CreatedByEmail),
	}
	return strings.NewReplacer(pairs...)
}

// xmlEscape escapa el valor para insertarlo en contenido de elemento XML
// (la placa y la nota son texto libre del cliente).
func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
