package directory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/frontdesk/clinic/internal/platform/db"
)

// -- Doctor Repository --

type doctorRepoPG struct {
	q db.Querier
}

func NewDoctorRepo(q db.Querier) DoctorRepository {
	return &doctorRepoPG{q: q}
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	err := r.q.QueryRow(ctx,
		`INSERT INTO doctors (id, doctor_name) VALUES ($1, $2) RETURNING created_at`,
		d.ID, d.DoctorName,
	).Scan(&d.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert doctor: %w", err)
	}
	return nil
}

func (r *doctorRepoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.q.Query(ctx, `SELECT id, doctor_name, created_at FROM doctors ORDER BY created_at, doctor_name`)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	doctors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Doctor, error) {
		var d Doctor
		err := row.Scan(&d.ID, &d.DoctorName, &d.CreatedAt)
		return &d, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan doctors: %w", err)
	}
	return doctors, nil
}

// -- Service Repository --

type serviceRepoPG struct {
	q db.Querier
}

func NewServiceRepo(q db.Querier) ServiceRepository {
	return &serviceRepoPG{q: q}
}

func (r *serviceRepoPG) Create(ctx context.Context, s *ClinicService) error {
	s.ID = uuid.New()
	err := r.q.QueryRow(ctx,
		`INSERT INTO services (id, service_name, fee) VALUES ($1, $2, $3) RETURNING created_at`,
		s.ID, s.ServiceName, s.Fee,
	).Scan(&s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (r *serviceRepoPG) List(ctx context.Context) ([]*ClinicService, error) {
	rows, err := r.q.Query(ctx, `SELECT id, service_name, fee, created_at FROM services ORDER BY created_at, service_name`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	services, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*ClinicService, error) {
		var s ClinicService
		err := row.Scan(&s.ID, &s.ServiceName, &s.Fee, &s.CreatedAt)
		return &s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan services: %w", err)
	}
	return services, nil
}
