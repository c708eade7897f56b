package router

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhubert/saasboard/internal/errors"
	"github.com/zhubert/saasboard/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}

type fakeAuth bool

func (f *fakeAuth) IsAuthenticated() bool { return bool(*f) }

func TestNavigate_Guard(t *testing.T) {
	signedIn := fakeAuth(false)
	r := New(&signedIn)

	got, err := r.Navigate(PathSettings)
	require.NoError(t, err)
	assert.Equal(t, PathLogin, got)

	signedIn = true
	got, err = r.Navigate(PathSettings)
	require.NoError(t, err)
	assert.Equal(t, PathSettings, got)
	assert.Equal(t, "Settings", r.CurrentRoute().Title)

	got, err = r.Navigate(PathLogin)
	require.NoError(t, err)
	assert.Equal(t, PathDashboard, got)
}

func TestNavigate_Unknown(t *testing.T) {
	signedIn := fakeAuth(true)
	r := New(&signedIn)
	r.Navigate(PathDashboard)

	got, err := r.Navigate("/billing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindNotFound))
	assert.Equal(t, PathDashboard, got)
	assert.Equal(t, PathDashboard, r.Current())
}

func TestSubscribe(t *testing.T) {
	signedIn := fakeAuth(false)
	r := New(&signedIn)

	var navs []Navigation
	unsub := r.Subscribe(func(n Navigation) { navs = append(navs, n) })

	r.Navigate(PathDashboard)
	signedIn = true
	r.Navigate(PathDashboard)
	r.Navigate("/nope")
	unsub()
	r.Navigate(PathSettings)

	require.Len(t, navs, 2)
	assert.True(t, navs[0].Redirected())
	assert.Equal(t, Navigation{From: PathLogin, To: PathDashboard, Requested: PathDashboard}, navs[1])
	assert.False(t, navs[1].Redirected())
}

func TestRoutes_ReturnsCopy(t *testing.T) {
	rs := Routes()
	require.Len(t, rs, 3)
	rs[0].Path = "/mutated"

	_, ok := Lookup(PathLogin)
	assert.True(t, ok)
}
