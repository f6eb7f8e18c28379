package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rileyhilliard/nodewatch/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineMode_DefaultValue(t *testing.T) {
	oldMode := machineMode
	defer func() { machineMode = oldMode }()

	machineMode = false
	assert.False(t, MachineMode())

	machineMode = true
	assert.True(t, MachineMode())
}

func TestWriteJSONSuccess_BasicData(t *testing.T) {
	var buf bytes.Buffer

	data := map[string]string{"key": "value"}
	err := WriteJSONSuccess(&buf, data)
	require.NoError(t, err)

	var env JSONEnvelope
	err = json.Unmarshal(buf.Bytes(), &env)
	require.NoError(t, err)

	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.NotNil(t, env.Data)

	dataMap, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "value", dataMap["key"])
}

func TestWriteJSONFromError_StructuredError(t *testing.T) {
	var buf bytes.Buffer

	err := WriteJSONFromError(&buf, errors.New(errors.ErrNotFound,
		"Unknown node \"web-9\"",
		"Did you mean web-1?"))
	require.NoError(t, err)

	var env JSONEnvelope
	err = json.Unmarshal(buf.Bytes(), &env)
	require.NoError(t, err)

	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeNotFound, env.Error.Code)
	assert.Equal(t, "Unknown node \"web-9\"", env.Error.Message)
	assert.Equal(t, "Did you mean web-1?", env.Error.Suggestion)
}

func TestWriteJSONFromError_PlainError(t *testing.T) {
	var buf bytes.Buffer

	err := WriteJSONFromError(&buf, fmt.Errorf("something broke"))
	require.NoError(t, err)

	var env JSONEnvelope
	err = json.Unmarshal(buf.Bytes(), &env)
	require.NoError(t, err)

	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeUnknown, env.Error.Code)
	assert.Equal(t, "something broke", env.Error.Message)
	assert.Empty(t, env.Error.Suggestion)
}

func TestErrorToJSON_Nil(t *testing.T) {
	assert.Nil(t, ErrorToJSON(nil))
}

func TestMapErrorCode(t *testing.T) {
	tests := []struct {
		name         string
		internalCode string
		message      string
		want         string
	}{
		{
			name:         "config not found",
			internalCode: errors.ErrConfig,
			message:      "No config file found",
			want:         ErrCodeConfigNotFound,
		},
		{
			name:         "config invalid",
			internalCode: errors.ErrConfig,
			message:      "node 'web-1' has no IP",
			want:         ErrCodeConfigInvalid,
		},
		{
			name:         "not found",
			internalCode: errors.ErrNotFound,
			message:      "Unknown node",
			want:         ErrCodeNotFound,
		},
		{
			name:         "ssh failure",
			internalCode: errors.ErrSSH,
			message:      "connection refused",
			want:         ErrCodeSSHFailed,
		},
		{
			name:         "probe failure",
			internalCode: errors.ErrProbe,
			message:      "ping timed out",
			want:         ErrCodeProbeFailed,
		},
		{
			name:         "metrics failure",
			internalCode: errors.ErrMetrics,
			message:      "could not parse /proc/stat",
			want:         ErrCodeMetricsFailed,
		},
		{
			name:         "alert delivery failure",
			internalCode: errors.ErrAlert,
			message:      "webhook returned 500",
			want:         ErrCodeAlertFailed,
		},
		{
			name:         "storage failure",
			internalCode: errors.ErrStorage,
			message:      "could not write state",
			want:         ErrCodeStorageFailed,
		},
		{
			name:         "unrecognized code",
			internalCode: "SOMETHING_ELSE",
			message:      "whatever",
			want:         ErrCodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapErrorCode(tt.internalCode, tt.message)
			assert.Equal(t, tt.want, got)
		})
	}
}
