package hud

import "sync"

// State is a snapshot of the HUD presentation. Variant, Message and Config
// are only meaningful while Presented is true or during the trailing hide
// animation; Generation changes on every transition and lets timers and
// animation cycles detect that they have been superseded.
type State struct {
	Presented  bool
	Variant    Variant
	Message    string
	Config     Config
	Generation string
}

// Store holds the current HUD state and notifies subscribers when it changes.
// Handlers run synchronously on the goroutine that mutated the state and must
// not call back into the Controller; UI work belongs in fyne.Do.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers map[int]func(State)
	nextID      int
}

// NewStore creates an empty store in the hidden state
func NewStore() *Store {
	return &Store{
		subscribers: make(map[int]func(State)),
	}
}

// Current returns the latest state snapshot
func (st *Store) Current() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state
}

// Subscribe registers a handler for state changes and returns a function that
// removes it again
func (st *Store) Subscribe(handler func(State)) func() {
	st.mu.Lock()
	id := st.nextID
	st.nextID++
	st.subscribers[id] = handler
	st.mu.Unlock()

	return func() {
		st.mu.Lock()
		delete(st.subscribers, id)
		st.mu.Unlock()
	}
}

// Set replaces the state and notifies all subscribers with the new snapshot
func (st *Store) Set(state State) {
	st.mu.Lock()
	st.state = state
	handlers := make([]func(State), 0, len(st.subscribers))
	for _, handler := range st.subscribers {
		handlers = append(handlers, handler)
	}
	st.mu.Unlock()

	for _, handler := range handlers {
		handler(state)
	}
}
