// Package memory holds the calculator memory register (M+ / MR).
// It stores display text, not numbers, so recalled values are appended to the
// next expression verbatim.
package memory

import "sync"

type Register struct {
	mu    sync.RWMutex
	value string
}

func NewRegister() *Register {
	return &Register{}
}

// Save replaces the register content.
func (r *Register) Save(value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = value
}

// Recall returns the stored text, empty when nothing was saved.
func (r *Register) Recall() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

func (r *Register) Clear() {
	r.Save("")
}
