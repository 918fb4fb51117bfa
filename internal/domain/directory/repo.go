package directory

import "context"

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	List(ctx context.Context) ([]*Doctor, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, s *ClinicService) error
	List(ctx context.Context) ([]*ClinicService, error)
}
