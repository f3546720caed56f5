package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// DefaultPage aplica valores por defecto si Page/Limit son cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Limit > 200 {
		p.Limit = 200
	}
}

// Offset deriva el offset SQL de la página actual.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
