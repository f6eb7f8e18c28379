package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{
			name:    "dev stays bare",
			version: "dev",
			want:    "dev",
		},
		{
			name:    "empty stays empty",
			version: "",
			want:    "",
		},
		{
			name:    "bare version gets v prefix",
			version: "1.2.3",
			want:    "v1.2.3",
		},
		{
			name:    "prefixed version unchanged",
			version: "v1.2.3",
			want:    "v1.2.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.version))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	defer func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	}()

	SetVersionInfo("1.2.3", "abc1234", "2026-01-08T12:00:00Z")

	assert.Equal(t, "1.2.3", GetVersion())
	assert.Equal(t, "abc1234", commit)
	assert.Equal(t, "2026-01-08T12:00:00Z", date)
}
