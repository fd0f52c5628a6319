package service

import (
	"sync"
	"testing"
)

func TestIssueClampsInitialStep(t *testing.T) {
	m := NewSessionManager()

	id, cursor := m.Issue(5, 99)
	if id == "" {
		t.Fatal("empty session id")
	}
	if cursor.Current != 4 {
		t.Errorf("initial step = %d, want clamp to 4", cursor.Current)
	}
	if cursor.Total != 5 {
		t.Errorf("total = %d, want 5", cursor.Total)
	}

	_, negative := m.Issue(5, -3)
	if negative.Current != 0 {
		t.Errorf("negative initial step = %d, want 0", negative.Current)
	}
}

func TestAdvanceBounds(t *testing.T) {
	m := NewSessionManager()
	id, _ := m.Issue(3, 0)

	cursor, ok := m.Advance(id, 1)
	if !ok || cursor.Current != 1 {
		t.Fatalf("Advance(+1) = %v, %v", cursor, ok)
	}

	// Walking past the last step stays on it.
	for i := 0; i < 10; i++ {
		cursor, _ = m.Advance(id, 1)
	}
	if cursor.Current != 2 {
		t.Errorf("over-advance = %d, want 2", cursor.Current)
	}

	// Walking before the first step stays on it.
	for i := 0; i < 10; i++ {
		cursor, _ = m.Advance(id, -1)
	}
	if cursor.Current != 0 {
		t.Errorf("under-advance = %d, want 0", cursor.Current)
	}
}

func TestSeek(t *testing.T) {
	m := NewSessionManager()
	id, _ := m.Issue(4, 0)

	cursor, ok := m.Seek(id, 2)
	if !ok || cursor.Current != 2 {
		t.Fatalf("Seek(2) = %v, %v", cursor, ok)
	}
	if cursor, _ = m.Seek(id, 100); cursor.Current != 3 {
		t.Errorf("Seek(100) = %d, want 3", cursor.Current)
	}
	if cursor, _ = m.Seek(id, -1); cursor.Current != 0 {
		t.Errorf("Seek(-1) = %d, want 0", cursor.Current)
	}
}

func TestUnknownSession(t *testing.T) {
	m := NewSessionManager()

	if _, ok := m.Resolve("nope"); ok {
		t.Error("resolved a session that was never issued")
	}
	if _, ok := m.Advance("nope", 1); ok {
		t.Error("advanced a session that was never issued")
	}
	if _, ok := m.Seek("nope", 0); ok {
		t.Error("sought a session that was never issued")
	}
}

func TestTrackRestoresCursor(t *testing.T) {
	m := NewSessionManager()
	m.Track("restored", Cursor{Current: 2, Total: 5})

	cursor, ok := m.Resolve("restored")
	if !ok || cursor.Current != 2 || cursor.Total != 5 {
		t.Errorf("Resolve = %v, %v", cursor, ok)
	}
}

func TestConcurrentAdvance(t *testing.T) {
	m := NewSessionManager()
	id, _ := m.Issue(1000, 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				m.Advance(id, 1)
			}
		}()
	}
	wg.Wait()

	cursor, _ := m.Resolve(id)
	if cursor.Current != 500 {
		t.Errorf("after 500 concurrent advances: %d, want 500", cursor.Current)
	}
}
