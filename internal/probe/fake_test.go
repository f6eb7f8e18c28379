package probe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeExecutor_DefaultsToSuccess(t *testing.T) {
	f := NewFakeExecutor()
	ctx := context.Background()

	assert.True(t, f.Ping(ctx, "10.0.0.5", time.Second).Success)
	assert.True(t, f.TCPPort(ctx, "10.0.0.5:22", time.Second).Success)
	assert.True(t, f.HTTPGet(ctx, "http://10.0.0.5", time.Second).Success)
}

func TestFakeExecutor_ScriptedFailures(t *testing.T) {
	f := NewFakeExecutor()
	f.ScriptPing("10.0.0.5", Result{Reason: FailExit, Detail: "Destination Host Unreachable"})
	f.ScriptTCP("10.0.0.5:22", Result{Reason: FailUnreachable})
	f.ScriptHTTP("http://10.0.0.5", Result{Reason: FailStatus, Detail: "502"})

	ctx := context.Background()

	ping := f.Ping(ctx, "10.0.0.5", time.Second)
	assert.False(t, ping.Success)
	assert.Equal(t, FailExit, ping.Reason)
	assert.Equal(t, "Destination Host Unreachable", ping.Detail)

	tcp := f.TCPPort(ctx, "10.0.0.5:22", time.Second)
	assert.Equal(t, FailUnreachable, tcp.Reason)

	httpResult := f.HTTPGet(ctx, "http://10.0.0.5", time.Second)
	assert.Equal(t, "502", httpResult.Detail)

	// Other targets are unaffected
	assert.True(t, f.Ping(ctx, "10.0.0.6", time.Second).Success)
}

func TestFakeExecutor_RecordsCalls(t *testing.T) {
	f := NewFakeExecutor()
	ctx := context.Background()

	f.Ping(ctx, "10.0.0.5", time.Second)
	f.TCPPort(ctx, "10.0.0.5:22", time.Second)
	f.HTTPGet(ctx, "http://10.0.0.5", time.Second)

	assert.Equal(t, []string{
		"ping 10.0.0.5",
		"tcp 10.0.0.5:22",
		"http http://10.0.0.5",
	}, f.Calls())
}
