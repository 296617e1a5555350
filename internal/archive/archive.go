// Package archive keeps a durable record of command runs.
package archive

import (
	"sync"

	"github.com/entolab/bugtally/internal/contract"
)

// ArchiveStoreManager manages the RunStore instance.
type ArchiveStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	runs         contract.RunStore
}

var _ contract.ArchiveManager = &ArchiveStoreManager{} // Compile-time check

// GetRunStore returns the run RunStore.
func (mgr *ArchiveStoreManager) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
