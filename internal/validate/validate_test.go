package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Email is required"},
		{"   ", "Email is required"},
		{"john", "Please enter a valid email address"},
		{"john@example", "Please enter a valid email address"},
		{"jo hn@example.com", "Please enter a valid email address"},
		{"john@example.com", ""},
		{" john@example.com ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := Email(tt.in)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestPassword(t *testing.T) {
	assert.EqualError(t, Password(""), "Password is required")
	assert.EqualError(t, Password("12345"), "Password must be at least 6 characters")
	assert.NoError(t, Password("123456"))
	assert.NoError(t, Password("      "))
}

func TestName(t *testing.T) {
	assert.EqualError(t, Name(""), "Name is required")
	assert.EqualError(t, Name(" "), "Name is required")
	assert.EqualError(t, Name("J"), "Name must be at least 2 characters")
	assert.NoError(t, Name("Jo"))
}

func TestCompany(t *testing.T) {
	assert.NoError(t, Company(""))
	assert.NoError(t, Company(strings.Repeat("a", 99)))
	assert.EqualError(t, Company(strings.Repeat("a", 100)), "Company name must be less than 100 characters")
}

func TestLogin_FirstFailureWins(t *testing.T) {
	assert.EqualError(t, Login("", ""), "Email is required")
	assert.EqualError(t, Login("bad", ""), "Please enter a valid email address")
	assert.EqualError(t, Login("a@b.co", ""), "Password is required")
	assert.NoError(t, Login("a@b.co", "secret"))
}
