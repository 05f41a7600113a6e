package application

import (
	"fmt"
	"sync"
	"time"
)

// RateLimiter limita los mensajes por sesión con ventanas de tiempo
// fijas. Evita que un visitante (o un script) spamee el endpoint de la
// demo; el estado vive en memoria, igual que las sesiones.
type RateLimiter struct {
	mu     sync.Mutex
	counts map[string]*rateWindow
	window time.Duration
	limit  int
}

type rateWindow struct {
	count   int
	resetAt time.Time
}

// NewRateLimiter crea un rate limiter de `limit` mensajes por `window`.
func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rl := &RateLimiter{
		counts: make(map[string]*rateWindow),
		window: window,
		limit:  limit,
	}

	go rl.cleanupLoop()

	return rl
}

// Allow registra un mensaje del identificador dado y dice si se admite.
func (rl *RateLimiter) Allow(identifier string) (bool, error) {
	if identifier == "" {
		identifier = "anonymous"
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.counts[identifier]
	if !ok || now.After(w.resetAt) {
		rl.counts[identifier] = &rateWindow{count: 1, resetAt: now.Add(rl.window)}
		return true, nil
	}

	if w.count >= rl.limit {
		wait := w.resetAt.Sub(now).Round(time.Second)
		return false, fmt.Errorf("límite de mensajes excedido, probá de nuevo en %v", wait)
	}

	w.count++
	return true, nil
}

// Remaining devuelve cuántos mensajes quedan en la ventana actual.
func (rl *RateLimiter) Remaining(identifier string) int {
	if identifier == "" {
		identifier = "anonymous"
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.counts[identifier]
	if !ok || time.Now().After(w.resetAt) {
		return rl.limit
	}

	if remaining := rl.limit - w.count; remaining > 0 {
		return remaining
	}
	return 0
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, w := range rl.counts {
			if now.After(w.resetAt) {
				delete(rl.counts, key)
			}
		}
		rl.mu.Unlock()
	}
}
