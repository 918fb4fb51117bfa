package visit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/frontdesk/clinic/internal/platform/apperr"
	"github.com/frontdesk/clinic/internal/platform/db"
	"github.com/frontdesk/clinic/pkg/pagination"
)

type patientRepoPG struct {
	q db.Querier
}

func NewPatientRepo(q db.Querier) PatientRepository {
	return &patientRepoPG{q: q}
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	err := r.q.QueryRow(ctx, `
		INSERT INTO patients (id, patient, doctor_id, service_id, age, gender, token, fee, discount, paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`,
		p.ID, p.Patient, p.DoctorID, p.ServiceID, p.Age, p.Gender, p.Token, p.Fee, p.Discount, p.Paid,
	).Scan(&p.CreatedAt)
	if err != nil {
		if constraint, ok := db.IsForeignKeyViolation(err); ok {
			return fmt.Errorf("insert patient: %w (%s)", apperr.ErrUnknownReference, constraint)
		}
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (r *patientRepoPG) List(ctx context.Context, f FilterCriteria, page pagination.Params) ([]*PatientRow, error) {
	q := composeListing(f)
	rows, err := r.q.Query(ctx, q.DataSQL(), q.DataArgs(page.Limit, page.Offset())...)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*PatientRow, error) {
		var p PatientRow
		err := row.Scan(&p.ID, &p.CreatedAt, &p.Patient, &p.DoctorID, &p.ServiceID,
			&p.DoctorName, &p.ServiceName, &p.Age, &p.Gender, &p.Token, &p.Fee, &p.Discount, &p.Paid)
		return &p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan patients: %w", err)
	}
	return out, nil
}

func (r *patientRepoPG) Count(ctx context.Context, f FilterCriteria) (int, error) {
	q := composeListing(f)
	var total int
	if err := r.q.QueryRow(ctx, q.CountSQL(), q.Args()...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count patients: %w", err)
	}
	return total, nil
}

func (r *patientRepoPG) Stats(ctx context.Context, dr DateRange) (*Stats, error) {
	q := composeStats(dr)
	var s Stats
	if err := r.q.QueryRow(ctx, q.AggregateSQL(statsExprs), q.Args()...).Scan(&s.TotalPatientVisitsToday, &s.TotalTodaySales); err != nil {
		return nil, fmt.Errorf("patient stats: %w", err)
	}
	return &s, nil
}
