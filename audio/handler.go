package audio

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
)

// SoundPlayer is the part of Player the event handler needs
type SoundPlayer interface {
	Play(core.SoundType) bool
}

// Handler turns gameplay events into sound effects
type Handler struct {
	player SoundPlayer
}

// NewHandler creates an event handler playing through p
func NewHandler(p SoundPlayer) *Handler {
	return &Handler{player: p}
}

// HandleEvent implements events.Handler
func (h *Handler) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventFoodEaten:
		h.player.Play(core.SoundEat)
	case events.EventSpeedUp:
		h.player.Play(core.SoundSpeedUp)
	case events.EventGameOver:
		if p, ok := ev.Payload.(events.GameOverPayload); ok && p.NewHigh {
			h.player.Play(core.SoundNewHigh)
			return
		}
		h.player.Play(core.SoundGameOver)
	}
}

// EventTypes implements events.Handler
func (h *Handler) EventTypes() []events.EventType {
	return []events.EventType{events.EventFoodEaten, events.EventSpeedUp, events.EventGameOver}
}
