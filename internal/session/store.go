package session

import "sync"

// Store хранит состояние диалога каждого пользователя в памяти процесса.
// Доступ к состоянию одного пользователя сериализуется отдельным мьютексом,
// чтобы одновременные сообщения не портили черновые данные.
type Store struct {
	mu    sync.Mutex
	items map[int64]*entry
}

type entry struct {
	mu    sync.Mutex
	state State
	data  Data
}

func NewStore() *Store {
	return &Store{items: make(map[int64]*entry)}
}

func (s *Store) entryFor(userID int64) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[userID]
	if !ok {
		e = &entry{}
		s.items[userID] = e
	}
	return e
}

func (s *Store) Get(userID int64) (State, Data) {
	e := s.entryFor(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, e.data
}

func (s *Store) Set(userID int64, state State, data Data) {
	e := s.entryFor(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = state
	e.data = data
}

// Clear сбрасывает диалог пользователя и освобождает его запись,
// чтобы карта не росла с каждым новым пользователем
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, userID)
}

// Update выполняет fn под мьютексом пользователя
func (s *Store) Update(userID int64, fn func(state *State, data *Data)) {
	e := s.entryFor(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.state, &e.data)
}
