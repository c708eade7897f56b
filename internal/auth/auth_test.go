package auth

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhubert/saasboard/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"valid", "jane@example.com", "secret", true},
		{"short password", "jane@example.com", "12345", false},
		{"empty email", "", "secret", false},
		{"blank email", "   ", "secret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHolder()
			assert.Equal(t, tt.want, h.Login(tt.email, tt.password))
			assert.Equal(t, tt.want, h.IsAuthenticated())
		})
	}
}

func TestLogin_PopulatesSession(t *testing.T) {
	h := NewHolder()
	require.True(t, h.Login("jane.doe@example.com", "secret"))

	assert.Equal(t, User{Name: "jane.doe", Email: "jane.doe@example.com"}, h.User())

	s, ok := h.Session()
	require.True(t, ok)
	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err)
	assert.False(t, s.SignedIn.IsZero())
}

func TestLogout(t *testing.T) {
	h := NewHolder()
	h.Login("jane@example.com", "secret")

	var events []bool
	h.Subscribe(func(v bool) { events = append(events, v) })

	h.Logout()
	h.Logout()

	assert.False(t, h.IsAuthenticated())
	assert.Equal(t, User{}, h.User())
	_, ok := h.Session()
	assert.False(t, ok)
	assert.Equal(t, []bool{false}, events, "second logout must not notify")
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	h := NewHolder()
	calls := 0
	unsub := h.Subscribe(func(bool) { calls++ })

	h.Login("a@b.co", "secret")
	unsub()
	h.Logout()

	assert.Equal(t, 1, calls)
}

func TestUpdateProfile(t *testing.T) {
	h := NewHolder()
	h.UpdateProfile(User{Name: "ignored"})
	assert.Equal(t, User{}, h.User())

	h.Login("a@b.co", "secret")
	h.UpdateProfile(User{Name: "Ann", Email: "ann@b.co"})
	assert.Equal(t, "Ann", h.User().Name)
}
