package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClient_ExactMatch(t *testing.T) {
	client := NewMockClient("test-host")
	client.SetCommandResponse("uptime", CommandResponse{
		Stdout:   []byte("12:00 up 3 days, load average: 0.10, 0.20, 0.30"),
		ExitCode: 0,
	})

	stdout, _, code, err := client.Exec("uptime")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, string(stdout), "load average")
}

func TestMockClient_PatternMatch(t *testing.T) {
	client := NewMockClient("test-host")
	client.SetCommandResponse(`^df .*`, CommandResponse{
		Stdout:   []byte("85%"),
		ExitCode: 0,
	})

	stdout, _, code, err := client.Exec("df -h /")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "85%", string(stdout))
}

func TestMockClient_UnmatchedCommand(t *testing.T) {
	client := NewMockClient("test-host")

	_, stderr, code, err := client.Exec("nonexistent-command")
	require.NoError(t, err)
	assert.Equal(t, 127, code)
	assert.Contains(t, string(stderr), "not found")
}

func TestMockClient_NonZeroExit(t *testing.T) {
	client := NewMockClient("test-host")
	client.SetCommandResponse("failing", CommandResponse{
		Stderr:   []byte("boom"),
		ExitCode: 3,
	})

	_, stderr, code, err := client.Exec("failing")
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, "boom", string(stderr))
}

func TestMockClient_Close(t *testing.T) {
	client := NewMockClient("test-host")

	require.NoError(t, client.Close())
	assert.True(t, client.Closed())

	_, _, code, err := client.Exec("anything")
	assert.Error(t, err)
	assert.Equal(t, -1, code)

	_, err = client.NewSession()
	assert.Error(t, err)
}

func TestMockClient_MarkDead(t *testing.T) {
	client := NewMockClient("test-host")

	session, err := client.NewSession()
	require.NoError(t, err)
	require.NoError(t, session.Close())

	client.MarkDead()
	_, err = client.NewSession()
	assert.Error(t, err)
}

func TestMockClient_HostAndAddress(t *testing.T) {
	client := NewMockClient("web-1")
	assert.Equal(t, "web-1", client.GetHost())
	assert.Equal(t, "web-1:22", client.GetAddress())
}

func TestMockClient_Calls(t *testing.T) {
	client := NewMockClient("test-host")
	client.SetCommandResponse("first", CommandResponse{ExitCode: 0})
	client.SetCommandResponse("second", CommandResponse{ExitCode: 0})

	_, _, _, _ = client.Exec("first")
	_, _, _, _ = client.Exec("second")

	calls := client.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "first", calls[0])
	assert.Equal(t, "second", calls[1])
}
