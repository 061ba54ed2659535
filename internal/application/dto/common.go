package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple (ej. borrado exitoso).
type MessageResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
