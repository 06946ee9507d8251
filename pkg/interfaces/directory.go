package interfaces

import (
	"context"

	"github.com/yuvasree15/healthpuls/pkg/types"
)

// DirectoryService serves the doctor listing dataset. The remote endpoint is
// fetched once and cached; any failure degrades silently to a locally
// generated dataset of the same shape. No retry is attempted.
type DirectoryService interface {
	Load(ctx context.Context) ([]*types.DoctorListing, error)
	Search(ctx context.Context, query, category string) ([]*types.DoctorListing, error)
}
