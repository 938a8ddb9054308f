package gui

import "sync"

// Cleanable is implemented by stores that evict entries on frame advance.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

var (
	registeredStores []Cleanable
	registryMu       sync.Mutex
	currentFrame     uint64
)

func registerStore(store Cleanable) {
	registryMu.Lock()
	registeredStores = append(registeredStores, store)
	registryMu.Unlock()
}

// NextFrame advances the global frame counter and evicts stale entries from
// every registered store. Context.Reset calls it once per frame.
func NextFrame() {
	registryMu.Lock()
	currentFrame++
	frame := currentFrame
	stores := registeredStores
	registryMu.Unlock()

	for _, store := range stores {
		store.Cleanup(frame)
	}
}

// CurrentFrameCount returns the global frame counter.
func CurrentFrameCount() uint64 {
	registryMu.Lock()
	defer registryMu.Unlock()
	return currentFrame
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore holds per-ID widget state. An entry survives as long as its
// widget is rendered; once it goes unrendered for longer than the store's
// retention window it is dropped on the next NextFrame.
//
// Widget packages outside gui declare their own stores:
//
//	var toggleStore = gui.NewFrameStore[toggleState]()
//
//	func Toggle(ctx *gui.Context, label string, v *bool) bool {
//	    st := toggleStore.Get(ctx.StableID(label), toggleState{})
//	    ...
//	}
type FrameStore[T any] struct {
	states map[ID]*stateEntry[T]
	retain uint64
	mu     sync.RWMutex
}

// NewFrameStore creates a store whose entries are dropped after one frame
// without access.
func NewFrameStore[T any]() *FrameStore[T] {
	return NewFrameStoreWithRetention[T](1)
}

// NewFrameStoreWithRetention creates a store whose entries survive up to
// frames consecutive frames without access. Use a longer window for state
// that should outlive a widget being briefly hidden (smoothing, scroll).
func NewFrameStoreWithRetention[T any](frames uint64) *FrameStore[T] {
	if frames == 0 {
		frames = 1
	}
	store := &FrameStore[T]{
		states: make(map[ID]*stateEntry[T]),
		retain: frames,
	}
	registerStore(store)
	return store
}

// Retention returns the store's eviction window in frames.
func (s *FrameStore[T]) Retention() uint64 {
	return s.retain
}

// Get returns the state for id, creating it from defaultVal if missing,
// and marks it used this frame.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	frame := CurrentFrameCount()

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		entry.lastFrame = frame
		return &entry.value
	}
	entry := &stateEntry[T]{value: defaultVal, lastFrame: frame}
	s.states[id] = entry
	return &entry.value
}

// GetIfExists returns the state for id without creating or touching it.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Set replaces the state for id and marks it used this frame.
func (s *FrameStore[T]) Set(id ID, value T) {
	frame := CurrentFrameCount()

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		entry.value = value
		entry.lastFrame = frame
		return
	}
	s.states[id] = &stateEntry[T]{value: value, lastFrame: frame}
}

// Delete drops the state for id.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
}

// Cleanup drops entries not accessed within the retention window.
// NextFrame calls it.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	if frame <= s.retain {
		return
	}
	threshold := frame - s.retain

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of live entries.
func (s *FrameStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Clear drops every entry.
func (s *FrameStore[T]) Clear() {
	s.mu.Lock()
	s.states = make(map[ID]*stateEntry[T])
	s.mu.Unlock()
}
