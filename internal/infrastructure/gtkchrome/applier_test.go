//go:build gtk

package gtkchrome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstFamily(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"Helvetica Neue", Helvetica, Arial, sans-serif`, "Helvetica Neue"},
		{"Menlo", "Menlo"},
		{" 'Fira Code' , monospace", "Fira Code"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FirstFamily(tt.in), "input %q", tt.in)
	}
}
