package dto

// Paginación por página para listados.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest paginación para listados (page >= 1, pageSize en [1,100]).
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// Normalize aplica valores por defecto y recorta pageSize al máximo.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset devuelve el desplazamiento de la ventana: (page-1)*pageSize.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"` // campos ofensores en validación
}

// UploadResponse respuesta de subida de foto.
type UploadResponse struct {
	PhotoURL string `json:"photo_url"`
}
