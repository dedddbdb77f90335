package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegistry(t *testing.T) {
	Register("test_stub", "Stub", func(Options) (Game, error) {
		return &stubGame{id: "test_stub"}, nil
	})
	errBroken := errors.New("broken")
	Register("test_broken", "Broken", func(Options) (Game, error) {
		return nil, errBroken
	})

	if !Exists("test_stub") {
		t.Error("Exists(test_stub) = false, expected true")
	}
	if title, ok := Title("test_stub"); !ok || title != "Stub" {
		t.Errorf("Title(test_stub) = %q, %v", title, ok)
	}

	g, err := Create("test_stub", Options{})
	if err != nil || g.ID() != "test_stub" {
		t.Errorf("Create(test_stub) = %v, %v", g, err)
	}

	if _, err := Create("test_broken", Options{}); !errors.Is(err, errBroken) {
		t.Errorf("Create(test_broken) error = %v, expected wrapped errBroken", err)
	}
	if _, err := Create("missing", Options{}); err == nil {
		t.Error("Create(missing) should fail")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_stub", "Again", nil)
}

func TestOptionsLoggerOrDiscard(t *testing.T) {
	if (Options{}).LoggerOrDiscard() == nil {
		t.Error("LoggerOrDiscard() should never return nil")
	}
}
