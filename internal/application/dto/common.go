package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con un mensaje (banner, test de conexión).
type MessageResponse struct {
	Message string `json:"message"`
}

// MensajeResponse respuesta informativa en español (sin datos en la ventana).
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}
