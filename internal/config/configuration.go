// Package config provides the typed configuration value object that flows
// through the resolution pipeline. A Configuration is an insertion-ordered
// mapping from string keys to typed values; merges always produce a new
// Configuration, the inputs are never mutated.
package config

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/gridctl-dev/gridctl/internal/domain/values"
)

// Configuration is an ordered key/value mapping. Values are strings,
// integers, booleans, memory sizes or string slices. Dynamic property
// overrides are stored as raw strings and coerced on read.
type Configuration struct {
	order  []string
	values map[string]any
}

// New creates an empty Configuration.
func New() *Configuration {
	return &Configuration{values: make(map[string]any)}
}

// Set stores a value under key. A key keeps its original insertion
// position when overwritten.
func (c *Configuration) Set(key string, value any) {
	if _, exists := c.values[key]; !exists {
		c.order = append(c.order, key)
	}
	c.values[key] = value
}

// Has reports whether key is present.
func (c *Configuration) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Raw returns the stored value for key without coercion.
func (c *Configuration) Raw(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns all keys in insertion order.
func (c *Configuration) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Len returns the number of keys.
func (c *Configuration) Len() int {
	return len(c.order)
}

// Clone returns a deep-enough copy: the key order and value map are
// copied, stored values are treated as immutable.
func (c *Configuration) Clone() *Configuration {
	clone := &Configuration{
		order:  make([]string, len(c.order)),
		values: make(map[string]any, len(c.values)),
	}
	copy(clone.order, c.order)
	for k, v := range c.values {
		if slice, ok := v.([]string); ok {
			copied := make([]string, len(slice))
			copy(copied, slice)
			clone.values[k] = copied
			continue
		}
		clone.values[k] = v
	}
	return clone
}

// Merge returns a new Configuration holding this configuration's entries
// overridden by the overlay's entries. Neither input is modified.
func (c *Configuration) Merge(overlay *Configuration) *Configuration {
	merged := c.Clone()
	if overlay == nil {
		return merged
	}
	for _, key := range overlay.order {
		merged.Set(key, overlay.values[key])
	}
	return merged
}

// StringOption is a typed configuration key holding a string.
type StringOption struct {
	Key     string
	Default string
}

// IntOption is a typed configuration key holding an integer.
type IntOption struct {
	Key     string
	Default int
}

// BoolOption is a typed configuration key holding a boolean.
type BoolOption struct {
	Key     string
	Default bool
}

// MemoryOption is a typed configuration key holding a memory size.
type MemoryOption struct {
	Key     string
	Default values.MemorySize
}

// StringSliceOption is a typed configuration key holding a list of strings.
type StringSliceOption struct {
	Key string
}

// GetString reads a string option, falling back to the option default.
func (c *Configuration) GetString(opt StringOption) string {
	v, ok := c.values[opt.Key]
	if !ok {
		return opt.Default
	}
	return cast.ToString(v)
}

// GetInt reads an integer option, coercing raw string values.
func (c *Configuration) GetInt(opt IntOption) (int, error) {
	v, ok := c.values[opt.Key]
	if !ok {
		return opt.Default, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("configuration key %s: %w", opt.Key, err)
	}
	return n, nil
}

// GetBool reads a boolean option, coercing raw string values.
func (c *Configuration) GetBool(opt BoolOption) (bool, error) {
	v, ok := c.values[opt.Key]
	if !ok {
		return opt.Default, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("configuration key %s: %w", opt.Key, err)
	}
	return b, nil
}

// GetMemory reads a memory size option, parsing raw string values with
// the memory quantity grammar.
func (c *Configuration) GetMemory(opt MemoryOption) (values.MemorySize, error) {
	v, ok := c.values[opt.Key]
	if !ok {
		return opt.Default, nil
	}
	switch m := v.(type) {
	case values.MemorySize:
		return m, nil
	case string:
		parsed, err := values.ParseMemorySize(m)
		if err != nil {
			return values.MemorySize{}, fmt.Errorf("configuration key %s: %w", opt.Key, err)
		}
		return parsed, nil
	default:
		return values.MemorySize{}, fmt.Errorf("configuration key %s holds %T, expected a memory size", opt.Key, v)
	}
}

// GetStringSlice reads a list option. A raw string value is returned as a
// single-element list.
func (c *Configuration) GetStringSlice(opt StringSliceOption) []string {
	v, ok := c.values[opt.Key]
	if !ok {
		return nil
	}
	switch s := v.(type) {
	case []string:
		out := make([]string, len(s))
		copy(out, s)
		return out
	case string:
		return []string{s}
	default:
		return cast.ToStringSlice(v)
	}
}
