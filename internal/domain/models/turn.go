package models

import "time"

// ConversationTurn es un ciclo pregunta/respuesta de la sesión. Se agrega
// a la transcripción en memoria y se descarta al cerrar la sesión.
type ConversationTurn struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Intent   Intent    `json:"intent"`
	Repo     string    `json:"repo"`
	AskedAt  time.Time `json:"asked_at"`
}
