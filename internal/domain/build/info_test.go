package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{name: "empty", want: "dev"},
		{name: "version only", info: Info{Version: "v0.3.0"}, want: "v0.3.0"},
		{
			name: "full",
			info: Info{Version: "v0.3.0", Commit: "abc123", BuildDate: "2026-01-02", GoVersion: "go1.25.3"},
			want: "v0.3.0 (abc123, 2026-01-02) go1.25.3",
		},
		{name: "commit without date", info: Info{Commit: "abc123"}, want: "dev (abc123)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}
