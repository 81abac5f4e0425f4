package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRegistry() *Registry {
	return &Registry{
		Version: "1.0.0",
		Agents: []Agent{
			{ID: "inbox-zero", DisplayName: "InboxZero", TaskType: "demo.inbox-zero", Endpoint: "/api/inbox-zero", Tags: []string{"email"}},
			{ID: "shop-smart", DisplayName: "ShopSmart", TaskType: "demo.shop-smart", Endpoint: "/api/shop-smart"},
		},
	}
}

func TestRegistry_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "agent-registry.json")
	reg := sampleRegistry()

	require.NoError(t, reg.Save(path))
	assert.NotEmpty(t, reg.LastUpdated)

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, reg, loaded)
}

func TestRegistry_Find(t *testing.T) {
	reg := sampleRegistry()

	a, ok := reg.Find("shop-smart")
	require.True(t, ok)
	assert.Equal(t, "ShopSmart", a.DisplayName)

	_, ok = reg.Find("nope")
	assert.False(t, ok)
}

func TestRegistry_IDs(t *testing.T) {
	assert.Equal(t, []string{"inbox-zero", "shop-smart"}, sampleRegistry().IDs())
	assert.Empty(t, (&Registry{}).IDs())
}

func TestLoadRegistry_Errors(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
