package sshutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSSHConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseSSHConfigFile(t *testing.T) {
	path := writeSSHConfig(t, `
Host web-1
    HostName 192.0.2.10
    User admin
    Port 22
    IdentityFile ~/.ssh/id_web1

Host db-1
    HostName db.example.com
    User postgres

Host *
    ServerAliveInterval 60

Host staging-*
    User deploy
`)

	hosts, err := ParseSSHConfigFile(path)
	require.NoError(t, err)

	// Wildcard patterns are dropped, the rest come back sorted.
	require.Len(t, hosts, 2)
	assert.Equal(t, "db-1", hosts[0].Alias)
	assert.Equal(t, "web-1", hosts[1].Alias)

	web := hosts[1]
	assert.Equal(t, "192.0.2.10", web.Hostname)
	assert.Equal(t, "admin", web.User)
	assert.Equal(t, "22", web.Port)
	assert.Contains(t, web.IdentityFile, "id_web1")

	db := hosts[0]
	assert.Equal(t, "db.example.com", db.Hostname)
	assert.Equal(t, "postgres", db.User)
	assert.Empty(t, db.Port)
}

func TestParseSSHConfigFile_Missing(t *testing.T) {
	hosts, err := ParseSSHConfigFile("/nonexistent/config")
	assert.NoError(t, err)
	assert.Nil(t, hosts)
}

func TestParseSSHConfigFile_Empty(t *testing.T) {
	hosts, err := ParseSSHConfigFile(writeSSHConfig(t, ""))
	require.NoError(t, err)
	assert.Empty(t, hosts)
}

func TestParseSSHConfigFile_StopsAtMatch(t *testing.T) {
	path := writeSSHConfig(t, `
Host before
    HostName before.example.com

Match host *.example.com
    User matched

Host after
    HostName after.example.com
`)

	hosts, err := ParseSSHConfigFile(path)
	require.NoError(t, err)

	require.Len(t, hosts, 1)
	assert.Equal(t, "before", hosts[0].Alias)
}

func TestParseSSHConfigFile_DuplicateAliases(t *testing.T) {
	path := writeSSHConfig(t, `
Host twin
    HostName first.example.com

Host twin
    HostName second.example.com
`)

	hosts, err := ParseSSHConfigFile(path)
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.Equal(t, "twin", hosts[0].Alias)
}

func TestParseSSHConfigFile_SharedBlock(t *testing.T) {
	path := writeSSHConfig(t, `
Host worker-1 worker-2 worker-3
    User deploy
    Port 2222
`)

	hosts, err := ParseSSHConfigFile(path)
	require.NoError(t, err)
	require.Len(t, hosts, 3)

	for _, h := range hosts {
		assert.Equal(t, "deploy", h.User)
		assert.Equal(t, "2222", h.Port)
	}
}

func TestSSHHostEntry_Description(t *testing.T) {
	tests := []struct {
		name  string
		entry SSHHostEntry
		want  string
	}{
		{
			name: "full entry",
			entry: SSHHostEntry{
				Alias: "web-1", Hostname: "192.0.2.10",
				User: "admin", Port: "2222",
			},
			want: "192.0.2.10, user: admin, port: 2222",
		},
		{
			name: "default port omitted",
			entry: SSHHostEntry{
				Alias: "web-1", Hostname: "192.0.2.10",
				User: "admin", Port: "22",
			},
			want: "192.0.2.10, user: admin",
		},
		{
			name:  "hostname matching alias omitted",
			entry: SSHHostEntry{Alias: "web-1", Hostname: "web-1", User: "admin"},
			want:  "user: admin",
		},
		{
			name:  "bare alias falls back to alias",
			entry: SSHHostEntry{Alias: "web-1"},
			want:  "web-1",
		},
		{
			name:  "port only",
			entry: SSHHostEntry{Alias: "web-1", Port: "2222"},
			want:  "port: 2222",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Description())
		})
	}
}

func TestHasIdentityFile_ConfiguredKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "custom_key")
	require.NoError(t, os.WriteFile(keyPath, []byte("key material"), 0600))

	entry := SSHHostEntry{Alias: "web-1", IdentityFile: keyPath}
	assert.True(t, entry.HasIdentityFile())
}

func TestFilterHostsWithKeys(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "id_fleet")
	require.NoError(t, os.WriteFile(keyPath, []byte("key material"), 0600))

	hosts := []SSHHostEntry{
		{Alias: "with-key", IdentityFile: keyPath},
		{Alias: "dangling-key", IdentityFile: "/nonexistent/key"},
	}

	// Hosts without a configured key may still pass when default keys
	// exist under ~/.ssh, so only assert on the configured one.
	filtered := FilterHostsWithKeys(hosts)

	found := false
	for _, h := range filtered {
		if h.Alias == "with-key" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFilterHostsWithKeys_Empty(t *testing.T) {
	assert.Empty(t, FilterHostsWithKeys(nil))
	assert.Empty(t, FilterHostsWithKeys([]SSHHostEntry{}))
}
