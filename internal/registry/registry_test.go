package registry

import (
	"testing"

	"github.com/vovakirdan/tui-crossroad/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                           { return s.id }
func (s stubGame) Title() string                        { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)             {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)                  {}
func (s stubGame) State() core.GameState                { return core.GameState{} }

func resetRegistry() {
	mu.Lock()
	defer mu.Unlock()
	factories = make(map[string]Factory)
	titles = make(map[string]string)
}

func TestRegisterAndCreate(t *testing.T) {
	resetRegistry()
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })
	Register(DefaultID, func() Game { return stubGame{id: DefaultID} })

	if !Exists("zz_stub") {
		t.Fatal("zz_stub should exist after Register")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID = %q, want zz_stub", g.ID())
	}

	g, err = Create("")
	if err != nil {
		t.Fatalf("Create(\"\") failed: %v", err)
	}
	if g.ID() != DefaultID {
		t.Errorf("empty id should select %q, got %q", DefaultID, g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create should fail for an unknown variant")
	}

	list := List()
	if len(list) != 2 {
		t.Fatalf("List length = %d, want 2", len(list))
	}
	if list[0].ID != DefaultID || list[1].ID != "zz_stub" {
		t.Errorf("List not sorted: %+v", list)
	}
	if list[1].Title != "Stub zz_stub" {
		t.Errorf("Title = %q", list[1].Title)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	resetRegistry()
	Register("dup", func() Game { return stubGame{id: "dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate id should panic")
		}
	}()
	Register("dup", func() Game { return stubGame{id: "dup"} })
}
