package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridctl-dev/gridctl/internal/domain/values"
)

func TestConfiguration_SetKeepsInsertionOrder(t *testing.T) {
	c := New()
	c.Set("b", 1)
	c.Set("a", 2)
	c.Set("c", 3)
	c.Set("a", 4) // overwrite keeps position

	assert.Equal(t, []string{"b", "a", "c"}, c.Keys())

	v, ok := c.Raw("a")
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestConfiguration_MergeDoesNotMutateInputs(t *testing.T) {
	base := New()
	base.Set("taskmanager.slots", 1)
	base.Set("ha.namespace", "default")

	overlay := New()
	overlay.Set("taskmanager.slots", 4)

	merged := base.Merge(overlay)

	slots, err := merged.GetInt(TaskManagerSlots)
	require.NoError(t, err)
	assert.Equal(t, 4, slots)

	baseSlots, err := base.GetInt(TaskManagerSlots)
	require.NoError(t, err)
	assert.Equal(t, 1, baseSlots, "merge must not write through to the base")
	assert.Equal(t, "default", merged.GetString(HANamespace))
}

func TestConfiguration_MergeNilOverlay(t *testing.T) {
	base := New()
	base.Set("k", "v")

	merged := base.Merge(nil)
	assert.Equal(t, []string{"k"}, merged.Keys())
}

func TestConfiguration_TypedDefaults(t *testing.T) {
	c := New()

	slots, err := c.GetInt(TaskManagerSlots)
	require.NoError(t, err)
	assert.Equal(t, 1, slots)

	detached, err := c.GetBool(ExecutionDetached)
	require.NoError(t, err)
	assert.False(t, detached)

	mem, err := c.GetMemory(MasterTotalProcessMemory)
	require.NoError(t, err)
	assert.Equal(t, int64(1600), mem.Mebibytes())

	assert.Empty(t, c.GetString(HANamespace))
	assert.Nil(t, c.GetStringSlice(ClusterShipFiles))
}

func TestConfiguration_CoercesRawStrings(t *testing.T) {
	c := New()
	c.Set(TaskManagerSlots.Key, "6")
	c.Set(ExecutionDetached.Key, "true")
	c.Set(TaskManagerTotalProcessMemory.Key, "2g")

	slots, err := c.GetInt(TaskManagerSlots)
	require.NoError(t, err)
	assert.Equal(t, 6, slots)

	detached, err := c.GetBool(ExecutionDetached)
	require.NoError(t, err)
	assert.True(t, detached)

	mem, err := c.GetMemory(TaskManagerTotalProcessMemory)
	require.NoError(t, err)
	assert.Equal(t, int64(2048), mem.Mebibytes())
}

func TestConfiguration_CoercionErrors(t *testing.T) {
	c := New()
	c.Set(TaskManagerSlots.Key, "not-a-number")
	c.Set(TaskManagerTotalProcessMemory.Key, "12zz")

	_, err := c.GetInt(TaskManagerSlots)
	assert.ErrorContains(t, err, "taskmanager.slots")

	_, err = c.GetMemory(TaskManagerTotalProcessMemory)
	assert.ErrorContains(t, err, "taskmanager.memory.process.size")
}

func TestConfiguration_GetMemoryValue(t *testing.T) {
	c := New()
	c.Set(MasterTotalProcessMemory.Key, values.MustParseMemorySize("1337m"))

	mem, err := c.GetMemory(MasterTotalProcessMemory)
	require.NoError(t, err)
	assert.Equal(t, int64(1337), mem.Mebibytes())
}

func TestConfiguration_CloneCopiesSlices(t *testing.T) {
	c := New()
	c.Set(ClusterShipFiles.Key, []string{"a", "b"})

	clone := c.Clone()
	files := clone.GetStringSlice(ClusterShipFiles)
	files[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, c.GetStringSlice(ClusterShipFiles))
}
