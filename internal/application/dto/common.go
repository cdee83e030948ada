package dto

import "github.com/shopspring/decimal"

func init() {
	// Montos como números JSON (100, no "100"), igual que el contrato original de la API.
	decimal.MarshalJSONWithoutQuotes = true
}

// Mensajes fijos de las respuestas.
const (
	MsgSuccessful = "Successful"
	MsgDeleted    = "Deleted Successfully"
	StatusFailed  = "Failed"
)

// PageMeta metadatos de página incluidos en los listados.
type PageMeta struct {
	TotalDocs  int64 `json:"totalDocs"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta que solo lleva un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
