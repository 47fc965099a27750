// Package dto defines transport structures between the CLI layer and the
// application services.
package dto

// SessionOptions carries the raw command-line option values for one
// invocation. Pointer fields distinguish "flag supplied" from "flag
// absent" so the precedence resolver can tell an explicit choice apart
// from a default. The structure is transient: it exists only for the
// duration of one invocation and is never stored.
type SessionOptions struct {
	// ApplicationID attaches to an existing cluster by identifier.
	ApplicationID *string

	// MasterMemory and TaskManagerMemory are raw memory quantities
	// ("1024", "2g") parsed by the memory size grammar.
	MasterMemory      *string
	TaskManagerMemory *string

	// Slots is the raw slots-per-task-manager count.
	Slots *string

	// Detached requests returning immediately after submission.
	Detached *bool

	// HANamespace overrides the high-availability namespace.
	HANamespace *string

	// NodeLabel restricts container placement.
	NodeLabel *string

	// ShipPaths lists local paths to distribute, in flag order.
	ShipPaths []string

	// DynamicProperties holds raw `key=value` overrides, in flag order.
	DynamicProperties []string
}
