package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/scene"
)

type stubScene struct{ id scene.ID }

func (s *stubScene) ID() scene.ID         { return s.id }
func (s *stubScene) Enter(*scene.Context) {}
func (s *stubScene) Tick(time.Duration)   {}
func (s *stubScene) Exit()                {}
func (s *stubScene) Render(*core.Screen)  {}

func stub(id scene.ID) Factory {
	return func() scene.Scene { return &stubScene{id: id} }
}

func TestRegistryCreate(t *testing.T) {
	r := New()
	r.Register(scene.Tomato, stub(scene.Tomato))

	s, err := r.Create(scene.Tomato)
	if err != nil {
		t.Fatalf("Create(tomato) failed: %v", err)
	}
	if s.ID() != scene.Tomato {
		t.Errorf("Create(tomato).ID() = %v, expected tomato", s.ID())
	}

	// Each call returns a fresh instance.
	s2, _ := r.Create(scene.Tomato)
	if s == s2 {
		t.Error("Create() returned the same instance twice")
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := New()
	_, err := r.Create(scene.Jigsaw)
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Create(jigsaw) error = %v, expected ErrUnknownScene", err)
	}
	if r.Exists(scene.Jigsaw) {
		t.Error("Exists(jigsaw) = true on empty registry")
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := New()
	r.Register(scene.Memory, stub(scene.Memory))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() did not panic")
		}
	}()
	r.Register(scene.Memory, stub(scene.Memory))
}

func TestRegistryListOrder(t *testing.T) {
	r := New()
	r.Register(scene.Valentine, stub(scene.Valentine))
	r.Register(scene.Memory, stub(scene.Memory))
	r.Register(scene.Jigsaw, stub(scene.Jigsaw))

	list := r.List()
	expected := []scene.ID{scene.Memory, scene.Jigsaw, scene.Valentine}
	if len(list) != len(expected) {
		t.Fatalf("List() len = %d, expected %d", len(list), len(expected))
	}
	for i, info := range list {
		if info.ID != expected[i] {
			t.Errorf("List()[%d] = %v, expected %v", i, info.ID, expected[i])
		}
		if info.Title != expected[i].Title() {
			t.Errorf("List()[%d].Title = %q", i, info.Title)
		}
	}
}
