package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinOrNone(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{name: "nil slice", items: nil, want: "(none)"},
		{name: "empty slice", items: []string{}, want: "(none)"},
		{name: "single item", items: []string{"web-1"}, want: "web-1"},
		{name: "multiple items", items: []string{"web-1", "db-1", "cache-1"}, want: "web-1, db-1, cache-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinOrNone(tt.items))
		})
	}
}

func TestJoinOrDefault(t *testing.T) {
	assert.Equal(t, "N/A", JoinOrDefault(nil, "N/A"))
	assert.Equal(t, "", JoinOrDefault([]string{}, ""))
	assert.Equal(t, "a, b", JoinOrDefault([]string{"a", "b"}, "unused"))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "nodes", Pluralize(0, "node", "nodes"))
	assert.Equal(t, "node", Pluralize(1, "node", "nodes"))
	assert.Equal(t, "nodes", Pluralize(2, "node", "nodes"))
	assert.Equal(t, "nodes", Pluralize(-1, "node", "nodes"))
}
