package entities

import "fmt"

// ClusterSpecification is the resource shape used to size a cluster
// before submission. It is derived from the merged configuration on
// every resolution pass and never persisted.
type ClusterSpecification struct {
	MasterMemoryMB      int
	TaskManagerMemoryMB int
	SlotsPerTaskManager int
}

func (s ClusterSpecification) String() string {
	return fmt.Sprintf(
		"ClusterSpecification{masterMemoryMB=%d, taskManagerMemoryMB=%d, slotsPerTaskManager=%d}",
		s.MasterMemoryMB, s.TaskManagerMemoryMB, s.SlotsPerTaskManager,
	)
}
