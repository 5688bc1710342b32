package idempotency

import (
	"context"
	"errors"
	"sync"
)

// ErrInFlight is returned when a key is reserved but its submission has not
// finished yet.
var ErrInFlight = errors.New("idempotency key is already being processed")

// Result is the recorded outcome of a previously completed submission.
type Result struct {
	BookingID string `json:"booking_id"`
}

// Guard deduplicates booking submissions by client-supplied idempotency key.
// Reserve returns (nil, nil) when the key is newly acquired, a *Result when a
// prior submission with the same key already succeeded, and ErrInFlight while
// one is still running.
type Guard interface {
	Reserve(ctx context.Context, key string) (*Result, error)
	MarkSuccess(ctx context.Context, key, bookingID string) error
	MarkFailure(ctx context.Context, key string) error
}

const (
	statusProcessing = "processing"
	statusSuccess    = "success"
)

type memoryState struct {
	Status string
	Result *Result
}

// MemoryGuard is the in-process fallback used when Redis is not configured.
type MemoryGuard struct {
	mutex sync.Mutex
	keys  map[string]*memoryState
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{keys: make(map[string]*memoryState)}
}

func (g *MemoryGuard) Reserve(ctx context.Context, key string) (*Result, error) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	state, exists := g.keys[key]
	if exists {
		if state.Status == statusSuccess {
			return state.Result, nil
		}
		if state.Status == statusProcessing {
			return nil, ErrInFlight
		}
		delete(g.keys, key)
	}

	g.keys[key] = &memoryState{Status: statusProcessing}
	return nil, nil
}

func (g *MemoryGuard) MarkSuccess(ctx context.Context, key, bookingID string) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if state, exists := g.keys[key]; exists {
		state.Status = statusSuccess
		state.Result = &Result{BookingID: bookingID}
	}
	return nil
}

func (g *MemoryGuard) MarkFailure(ctx context.Context, key string) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	delete(g.keys, key)
	return nil
}
