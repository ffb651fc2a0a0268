package dto

// Envelope es el cuerpo uniforme de todas las respuestas HTTP.
// Code conserva el código de error legible por máquina (VALIDATION, NOT_FOUND, ...).
type Envelope struct {
	Success bool                `json:"success"`
	Data    interface{}         `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Code    string              `json:"code,omitempty"`
}

// OK envuelve datos de una respuesta exitosa.
func OK(data interface{}, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// Fail construye una respuesta de error con código y mensaje.
func Fail(code, message string) Envelope {
	return Envelope{Success: false, Code: code, Message: message}
}
