package cluster

import "github.com/gridctl-dev/gridctl/internal/config"

// Descriptor exposes the resolved cluster deployment inputs: ship
// files, node label and the final configuration. It implements
// ports.ClusterDescriptor.
type Descriptor struct {
	shipFiles []string
	nodeLabel string
	conf      *config.Configuration
}

// ShipFiles returns the validated, absolute ship file paths in the
// order they were requested.
func (d *Descriptor) ShipFiles() []string {
	files := make([]string, len(d.shipFiles))
	copy(files, d.shipFiles)
	return files
}

// NodeLabel returns the node label, or empty when unrestricted.
func (d *Descriptor) NodeLabel() string {
	return d.nodeLabel
}

// Configuration returns the final configuration for inspection.
func (d *Descriptor) Configuration() *config.Configuration {
	return d.conf
}
