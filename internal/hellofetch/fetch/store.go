package fetch

import "sync"

// Dispatcher accepts actions.
type Dispatcher interface {
	Dispatch(a Action)
}

// Store is the state container a view reads from and the orchestrator writes to.
type Store interface {
	Dispatcher
	State() State
	// Subscribe registers fn to be called with every committed state and
	// returns a function that removes it.
	Subscribe(fn func(State)) (unsubscribe func())
}

// MemoryStore keeps State in memory and mutates it only through Reduce.
type MemoryStore struct {
	mu     sync.Mutex
	state  State
	subs   map[int]func(State)
	order  []int
	nextID int
}

// NewMemoryStore returns a store holding InitialState.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWith(InitialState())
}

// NewMemoryStoreWith returns a store seeded with s.
func NewMemoryStoreWith(s State) *MemoryStore {
	if s.Items == nil {
		s.Items = []Item{}
	}
	return &MemoryStore{state: s, subs: map[int]func(State){}}
}

func (s *MemoryStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Items = cloneItems(st.Items)
	return st
}

// Dispatch reduces a into the current state, then notifies subscribers in
// the order they subscribed. Subscribers run after the lock is released.
func (s *MemoryStore) Dispatch(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	st := s.state
	fns := make([]func(State), 0, len(s.order))
	for _, id := range s.order {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		snapshot := st
		snapshot.Items = cloneItems(st.Items)
		fn(snapshot)
	}
}

func (s *MemoryStore) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Recorder wraps a Store and keeps every dispatched action in the order it
// was reduced. Subscribers of the wrapped store must not call back into the
// Recorder from their callback.
type Recorder struct {
	Store

	mu  sync.Mutex
	log []Action
}

// NewRecorder wraps inner.
func NewRecorder(inner Store) *Recorder {
	return &Recorder{Store: inner}
}

func (r *Recorder) Dispatch(a Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = append(r.log, a)
	r.Store.Dispatch(a)
}

// Actions returns a copy of the dispatch log.
func (r *Recorder) Actions() []Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Action, len(r.log))
	copy(out, r.log)
	return out
}
