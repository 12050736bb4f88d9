// maketemplate genera una plantilla DOCX mínima de factura con los
// marcadores {{...}} que el renderizador sustituye por los datos del pesaje.
//
// Uso: go run ./cmd/maketemplate [directorio-salida]
// Por defecto escribe templates/invoice_template.docx.
package main

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
)

const wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const wordRelsXML = `<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings" Target="settings.xml"/>
</Relationships>`

const settingsXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:settings xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`

// Líneas del cuerpo de la factura; cada una es un párrafo del documento.
var invoiceLines = []string{
	"FACTURA DE PESAJE",
	"Placa: {{car_number}}",
	"Proveedor: {{supplier_name}}",
	"Bruto: {{gross_weight}} | Tara: {{tare_count}} x {{tare_weight}} = {{tare_total}}",
	"Peso neto: {{net_weight}}",
	"Fecha: {{date}} Hora: {{time}}",
	"Operador: {{operator_name}}",
}

// buildDocumentXML construye word/document.xml con etree: un párrafo
// (w:p > w:r > w:t) por línea de la factura.
func buildDocumentXML() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", wordprocessingNS)
	body := root.CreateElement("w:body")

	for _, line := range invoiceLines {
		p := body.CreateElement("w:p")
		r := p.CreateElement("w:r")
		t := r.CreateElement("w:t")
		t.SetText(line)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func main() {
	outDir := "templates"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}

	documentXML, err := buildDocumentXML()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Construir document.xml: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(outDir, "invoice_template.docx")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	entries := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(relsXML)},
		{"word/_rels/document.xml.rels", []byte(wordRelsXML)},
		{"word/document.xml", documentXML},
		{"word/settings.xml", []byte(settingsXML)},
	}
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Entrada zip %s: %v\n", e.name, err)
			os.Exit(1)
		}
		if _, err := w.Write(e.data); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", e.name, err)
			os.Exit(1)
		}
	}
	if err := zw.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Cerrar zip: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Plantilla creada:", outPath)
}
