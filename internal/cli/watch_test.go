package cli

import (
	"testing"
	"time"

	"github.com/rileyhilliard/nodewatch/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    time.Duration
		wantErr bool
	}{
		{
			name: "empty defers to default",
			flag: "",
			want: 0,
		},
		{
			name: "seconds",
			flag: "10s",
			want: 10 * time.Second,
		},
		{
			name: "minutes",
			flag: "2m",
			want: 2 * time.Minute,
		},
		{
			name:    "garbage",
			flag:    "soon",
			wantErr: true,
		},
		{
			name:    "bare number",
			flag:    "30",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInterval(tt.flag)
			if tt.wantErr {
				require.Error(t, err)
				nwErr, ok := err.(*errors.Error)
				require.True(t, ok)
				assert.Equal(t, errors.ErrConfig, nwErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
