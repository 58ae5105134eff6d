package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                           { return s.id }
func (s stubGame) Title() string                        { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)             {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)                  {}
func (s stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })

	assert.True(t, Exists("zz_stub"))

	g, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, "zz_stub", g.ID())

	var found bool
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			assert.Equal(t, "Stub zz_stub", info.Title)
		}
	}
	assert.True(t, found, "List should include registered game")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })

	assert.Panics(t, func() {
		Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
	})
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist")
	assert.EqualError(t, err, `registry: unknown game "does_not_exist"`)
	assert.False(t, Exists("does_not_exist"))
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return stubGame{id: "zz_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}
