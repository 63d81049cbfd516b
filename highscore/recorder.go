package highscore

import (
	"log"
	"time"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/events"
)

// Recorder persists game-over results
// Every finished session goes to the store's history when it keeps one; new highs are saved
type Recorder struct {
	store Store
	now   func() time.Time

	saved  int
	failed int
	recent []SessionRecord
}

// NewRecorder creates a recorder writing to store
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store, now: time.Now}
}

// HandleEvent implements events.Handler
func (r *Recorder) HandleEvent(ev events.GameEvent) {
	p, ok := ev.Payload.(events.GameOverPayload)
	if !ok {
		return
	}

	if sl, ok := r.store.(SessionLog); ok {
		rec := SessionRecord{
			ID:       p.SessionID,
			Score:    p.Score,
			Length:   p.Length,
			Cause:    p.Cause.String(),
			Ticks:    p.Ticks,
			Duration: p.Duration,
			EndedAt:  r.now(),
		}
		if err := sl.RecordSession(rec); err != nil {
			r.failed++
			log.Printf("highscore: record session %s: %v", p.SessionID, err)
		}
	}
	r.refreshRecent()

	if !p.NewHigh {
		return
	}
	if err := r.store.Save(p.HighScore); err != nil {
		r.failed++
		log.Printf("highscore: save %d: %v", p.HighScore, err)
		return
	}
	r.saved++
	log.Printf("highscore: new high score %d (session %s)", p.HighScore, p.SessionID)
}

// EventTypes implements events.Handler
func (r *Recorder) EventTypes() []events.EventType {
	return []events.EventType{events.EventGameOver}
}

// refreshRecent reloads the session listing from stores that keep one
func (r *Recorder) refreshRecent() {
	h, ok := r.store.(History)
	if !ok {
		return
	}
	recent, err := h.Recent(constant.RecentSessions)
	if err != nil {
		log.Printf("highscore: list sessions: %v", err)
		return
	}
	r.recent = recent
}

// Recent returns the sessions listed after the last game over, nil for stores without history
func (r *Recorder) Recent() []SessionRecord { return r.recent }

// Saved returns the number of successful high-score writes
func (r *Recorder) Saved() int { return r.saved }

// Failed returns the number of failed writes
func (r *Recorder) Failed() int { return r.failed }
