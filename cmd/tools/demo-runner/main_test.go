package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"agent-demos/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, logLevel = "", "error"

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRun_SeededOutputIsReproducible(t *testing.T) {
	args := []string{"run", "content-craft", "--input", `{"prompt":"Launching our reusable coffee cup","contentType":"blogPost"}`, "--seed", "42", "--compact"}

	first, err := execute(t, args...)
	require.NoError(t, err)
	second, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(first), &out))
	assert.Equal(t, "blogPost", out["contentType"])
}

func TestRun_ValidationError(t *testing.T) {
	out, err := execute(t, "run", "inbox-zero", "--input", `{"emailContent":"hi"}`)
	require.Error(t, err)
	assert.Contains(t, out, "emailContent must be at least 10 characters")
	assert.Contains(t, out, "VALIDATION_FAILED")
}

func TestRun_RequiresInput(t *testing.T) {
	_, err := execute(t, "run", "inbox-zero")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input or --file")
}

func TestRun_UnknownAgent(t *testing.T) {
	_, err := execute(t, "run", "crystal-ball", "--input", `{}`)
	require.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list", "--examples")
	require.NoError(t, err)
	assert.Contains(t, out, "demo.shop-smart")
	assert.Contains(t, out, `"productInterest"`)
}

func TestCatalog_WritesRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent-registry.json")

	out, err := execute(t, "catalog", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 7 agents")

	reg, err := registry.LoadRegistry(path)
	require.NoError(t, err)
	assert.Len(t, reg.Agents, 7)
}
