package services

import (
	"sync"

	"github.com/Tomas-vilte/MateChat/internal/domain/models"
)

// Transcript es la transcripción en memoria de la sesión. Se limpia al
// cerrar la sesión; no hay persistencia.
type Transcript struct {
	mu    sync.RWMutex
	turns []models.ConversationTurn
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Append(turn models.ConversationTurn) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.turns = append(t.turns, turn)
}

// All devuelve una copia de los turnos para que el caller no pueda mutar
// el estado interno.
func (t *Transcript) All() []models.ConversationTurn {
	t.mu.RLock()
	defer t.mu.RUnlock()

	turns := make([]models.ConversationTurn, len(t.turns))
	copy(turns, t.turns)
	return turns
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.turns)
}

func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.turns = nil
}
