package complaints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewRouterSelect(t *testing.T) {
	r := NewViewRouter()
	assert.Equal(t, ScreenAuth, r.State().Screen)
	assert.False(t, r.Active(TabDashboard))

	r.EnterApp()
	assert.True(t, r.Active(TabDashboard))

	require.NoError(t, r.Select(TabSettings))
	assert.True(t, r.Active(TabSettings))
	assert.False(t, r.Active(TabDashboard))

	err := r.Select(Tab("history"))
	assert.ErrorIs(t, err, ErrUnknownTab)
	assert.Equal(t, TabSettings, r.State().Tab)
}

func TestViewRouterAuthToggleAndMenu(t *testing.T) {
	r := NewViewRouter()
	r.ToggleAuth(AuthRegister)
	assert.Equal(t, AuthRegister, r.State().AuthMode)
	r.ToggleAuth(AuthMode("bogus"))
	assert.Equal(t, AuthLogin, r.State().AuthMode)

	r.EnterApp()
	assert.True(t, r.ToggleProfileMenu())
	assert.False(t, r.ToggleProfileMenu())
	r.ToggleProfileMenu()
	r.ExitApp()
	assert.False(t, r.State().ProfileMenu)
	assert.Equal(t, ScreenAuth, r.State().Screen)
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab("new-complaint")
	require.NoError(t, err)
	assert.Equal(t, TabNewComplaint, tab)
	_, err = ParseTab("")
	assert.ErrorIs(t, err, ErrUnknownTab)
}
