package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridctl-dev/gridctl/internal/application/dto"
	apperrors "github.com/gridctl-dev/gridctl/internal/application/errors"
	"github.com/gridctl-dev/gridctl/internal/config"
	"github.com/gridctl-dev/gridctl/internal/domain/values"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBuildOverlay_OnlySuppliedKeys(t *testing.T) {
	overlay, err := BuildOverlay(dto.SessionOptions{}, ModeSession)
	require.NoError(t, err)

	assert.Zero(t, overlay.Structured.Len(), "an empty option set must produce an empty overlay")
	assert.Empty(t, overlay.Dynamic)
}

func TestBuildOverlay_MemoryFlags(t *testing.T) {
	overlay, err := BuildOverlay(dto.SessionOptions{
		MasterMemory:      strPtr("1g"),
		TaskManagerMemory: strPtr("2048"),
	}, ModeSession)
	require.NoError(t, err)

	master, err := overlay.Structured.GetMemory(config.MasterTotalProcessMemory)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), master.Mebibytes())

	tm, err := overlay.Structured.GetMemory(config.TaskManagerTotalProcessMemory)
	require.NoError(t, err)
	assert.Equal(t, int64(2048), tm.Mebibytes())
}

func TestBuildOverlay_InvalidMemoryNamesFlag(t *testing.T) {
	_, err := BuildOverlay(dto.SessionOptions{MasterMemory: strPtr("12xyz")}, ModeSession)
	require.Error(t, err)

	var malformed *apperrors.MalformedOptionError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "master-memory", malformed.Flag)

	var invalid *values.InvalidMemorySizeError
	assert.True(t, errors.As(err, &invalid), "the memory parse failure must stay inspectable")
}

func TestBuildOverlay_Slots(t *testing.T) {
	overlay, err := BuildOverlay(dto.SessionOptions{Slots: strPtr("3")}, ModeSession)
	require.NoError(t, err)

	slots, err := overlay.Structured.GetInt(config.TaskManagerSlots)
	require.NoError(t, err)
	assert.Equal(t, 3, slots)
}

func TestBuildOverlay_SlotsMalformed(t *testing.T) {
	for _, input := range []string{"three", "0", "-2", "2.5"} {
		_, err := BuildOverlay(dto.SessionOptions{Slots: strPtr(input)}, ModeSession)
		require.Error(t, err, "slots %q must be rejected", input)

		var malformed *apperrors.MalformedOptionError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, "slots", malformed.Flag)
	}
}

func TestBuildOverlay_DetachedAndStrings(t *testing.T) {
	overlay, err := BuildOverlay(dto.SessionOptions{
		Detached:    boolPtr(true),
		HANamespace: strPtr("my_namespace"),
		NodeLabel:   strPtr("gpu"),
	}, ModeSession)
	require.NoError(t, err)

	detached, err := overlay.Structured.GetBool(config.ExecutionDetached)
	require.NoError(t, err)
	assert.True(t, detached)
	assert.Equal(t, "my_namespace", overlay.Structured.GetString(config.HANamespace))
	assert.Equal(t, "gpu", overlay.Structured.GetString(config.ClusterNodeLabel))
}

func TestBuildOverlay_ShipPathsKeepOrder(t *testing.T) {
	overlay, err := BuildOverlay(dto.SessionOptions{
		ShipPaths: []string{"b/lib", "a/data"},
	}, ModeSession)
	require.NoError(t, err)

	assert.Equal(t, []string{"b/lib", "a/data"},
		overlay.Structured.GetStringSlice(config.ClusterShipFiles),
		"ship paths must be kept in the order supplied, unchecked")
}

func TestBuildOverlay_DynamicProperties(t *testing.T) {
	overlay, err := BuildOverlay(dto.SessionOptions{
		DynamicProperties: []string{"rpc.timeout=5 min", "rpc.timeout=10 min", "tls.key-password=changeit"},
	}, ModeSession)
	require.NoError(t, err)

	require.Len(t, overlay.Dynamic, 3)
	assert.Equal(t, DynamicProperty{Key: "rpc.timeout", Value: "5 min"}, overlay.Dynamic[0])
	assert.Equal(t, DynamicProperty{Key: "tls.key-password", Value: "changeit"}, overlay.Dynamic[2])
}

func TestBuildOverlay_DynamicPropertyMalformed(t *testing.T) {
	for _, input := range []string{"novalue", "=value"} {
		_, err := BuildOverlay(dto.SessionOptions{DynamicProperties: []string{input}}, ModeSession)
		require.Error(t, err, "dynamic property %q must be rejected", input)

		var malformed *apperrors.MalformedOptionError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, "define", malformed.Flag)
	}
}

func TestBuildOverlay_AttachModeSkipsRunOptions(t *testing.T) {
	overlay, err := BuildOverlay(dto.SessionOptions{
		ApplicationID: strPtr("application_1_0001"),
		HANamespace:   strPtr("ns"),
		MasterMemory:  strPtr("1g"),
		ShipPaths:     []string{"some/file"},
	}, ModeAttach)
	require.NoError(t, err)

	assert.True(t, overlay.HasClusterID())
	assert.Equal(t, "ns", overlay.Structured.GetString(config.HANamespace))
	assert.False(t, overlay.Structured.Has(config.MasterTotalProcessMemory.Key))
	assert.False(t, overlay.Structured.Has(config.ClusterShipFiles.Key))
}
