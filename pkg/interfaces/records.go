package interfaces

import "github.com/yuvasree15/healthpuls/pkg/types"

// RecordService is the append-only health record collection. Status is a
// free-form marker overwritten unconditionally; records are never deleted.
type RecordService interface {
	Add(rec *types.HealthRecord) (*types.HealthRecord, error)
	SetStatus(id string, status types.RecordStatus) (*types.HealthRecord, error)
	Get(id string) (*types.HealthRecord, error)
	ListForPatient(username string) ([]*types.HealthRecord, error)

	// Export renders the plain-text download artifact for a record. The output
	// is a derived view, never stored.
	Export(id string) (string, error)
}
