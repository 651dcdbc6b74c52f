package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123456789", "123456789"},
		{"  123456789  ", "123456789"},
		{"<@123456789>", "123456789"},
		{"<@!123456789>", "123456789"},
		{"@someuser", "someuser"},
		{"someuser", "someuser"},
		{"https://discord.com/users/123456789", "123456789"},
		{"https://discordapp.com/users/123456789", "123456789"},
		{"discord.com/users/123456789", "123456789"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanIdentifier(tt.in))
		})
	}
}

func TestIsNumericID(t *testing.T) {
	assert.True(t, IsNumericID("123456789"))
	assert.False(t, IsNumericID("12a34"))
	assert.False(t, IsNumericID("someuser"))
	assert.False(t, IsNumericID(""))
}
