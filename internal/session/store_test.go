package session

import (
	"sync"
	"testing"
)

func TestStoreSetGetClear(t *testing.T) {
	s := NewStore()

	st, data := s.Get(1)
	if st != StateIdle {
		t.Fatalf("new user state = %q, want idle", st)
	}
	if data.Product != nil || data.Report != nil || data.EditID != 0 {
		t.Fatalf("new user data not empty: %+v", data)
	}

	draft := &ProductDraft{Name: "Уголь"}
	s.Set(1, StateAddingQuantity, Data{Product: draft})

	st, data = s.Get(1)
	if st != StateAddingQuantity {
		t.Fatalf("state = %q, want %q", st, StateAddingQuantity)
	}
	if data.Product != draft {
		t.Fatal("draft lost after Set")
	}

	// другой пользователь не видит чужое состояние
	if st, _ := s.Get(2); st != StateIdle {
		t.Fatalf("user 2 state = %q, want idle", st)
	}

	s.Clear(1)
	st, data = s.Get(1)
	if st != StateIdle || data.Product != nil {
		t.Fatalf("after Clear: state=%q data=%+v", st, data)
	}
}

func TestClearReleasesEntry(t *testing.T) {
	s := NewStore()
	s.Set(9, StateSearching, Data{EditID: 9})
	s.Clear(9)

	s.mu.Lock()
	_, kept := s.items[9]
	s.mu.Unlock()
	if kept {
		t.Fatal("entry still in map after Clear")
	}

	// повторный Clear для отсутствующего пользователя безопасен
	s.Clear(9)
	if st, _ := s.Get(9); st != StateIdle {
		t.Fatalf("state after Clear = %q, want idle", st)
	}
}

func TestStoreUpdate(t *testing.T) {
	s := NewStore()
	s.Set(7, StateReportCreate, Data{Report: NewCreateDraft("2026-08-31")})

	s.Update(7, func(st *State, data *Data) {
		data.Report.Apply(100)
	})

	_, data := s.Get(7)
	if data.Report.Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", data.Report.Cursor)
	}
	if data.Report.Values[FieldTotal] != 100 {
		t.Fatalf("total = %v, want 100", data.Report.Values[FieldTotal])
	}
}

func TestStoreConcurrentUsers(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set(id, StateSearching, Data{EditID: id})
				st, data := s.Get(id)
				if st != StateSearching || data.EditID != id {
					t.Errorf("user %d observed foreign state", id)
					return
				}
				s.Clear(id)
			}
		}(int64(i % 5))
	}
	wg.Wait()
}
