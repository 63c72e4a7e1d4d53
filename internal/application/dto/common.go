package dto

// APIResponse envelope estándar de todas las respuestas de la API:
// { "success": bool, "data"?: ..., "message"?: ... }.
// Code acompaña a los errores para que los clientes no dependan del texto.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// OK construye una respuesta exitosa con payload.
func OK(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// Fail construye una respuesta de error con código y mensaje.
func Fail(code, message string) APIResponse {
	return APIResponse{Success: false, Code: code, Message: message}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
