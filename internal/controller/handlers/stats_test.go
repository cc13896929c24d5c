package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandArgument(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare command", "/find", ""},
		{"with date", "/find 01.03.2024", "01.03.2024"},
		{"extra spaces", "/find   30 01  ", "30 01"},
		{"group mention", "/find@GymlogBot 01.03", "01.03"},
		{"group mention no arg", "/find@GymlogBot", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commandArgument(tt.text, "/find"))
		})
	}
}
