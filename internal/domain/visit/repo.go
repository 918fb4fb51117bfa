package visit

import (
	"context"

	"github.com/frontdesk/clinic/pkg/pagination"
)

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	List(ctx context.Context, f FilterCriteria, page pagination.Params) ([]*PatientRow, error)
	Count(ctx context.Context, f FilterCriteria) (int, error)
	Stats(ctx context.Context, r DateRange) (*Stats, error)
}
