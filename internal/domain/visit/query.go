package visit

import (
	"github.com/frontdesk/clinic/internal/platform/sqlq"
)

const (
	listingFrom = `patients p
		LEFT JOIN doctors d ON d.id = p.doctor_id
		LEFT JOIN services s ON s.id = p.service_id`
	listingCols = `p.id, p.created_at, p.patient, p.doctor_id, p.service_id,
		d.doctor_name, s.service_name, p.age, p.gender, p.token, p.fee, p.discount, p.paid`
	// Both foreign keys are NOT NULL, so the joins never change cardinality
	// and the count can skip them.
	countFrom  = "patients p"
	statsExprs = "COUNT(*), COALESCE(SUM(p.paid), 0)"
)

// composeListing turns criteria into the listing and count statements. All
// conditions reference p.* so they are valid against both sources.
func composeListing(f FilterCriteria) *sqlq.Query {
	q := sqlq.New(listingFrom, listingCols).CountFrom(countFrom)
	q.OrderBy("p.created_at DESC")

	if f.DateRange != nil {
		applyDateRange(q, *f.DateRange)
	}
	if len(f.DoctorIDs) > 0 {
		q.Any("p.doctor_id", f.DoctorIDs)
	}
	if len(f.ServiceIDs) > 0 {
		q.Any("p.service_id", f.ServiceIDs)
	}
	if f.PatientName != "" {
		q.Contains("p.patient", f.PatientName)
	}
	if f.Gender != "" {
		q.Eq("p.gender", f.Gender)
	}
	if a := f.Age; a != nil {
		switch {
		case a.Exact != nil:
			q.Eq("p.age", *a.Exact)
		default:
			if a.Min != nil {
				q.Gte("p.age", *a.Min)
			}
			if a.Max != nil {
				q.Lte("p.age", *a.Max)
			}
		}
	}
	return q
}

// composeStats builds the aggregate over a date range only.
func composeStats(r DateRange) *sqlq.Query {
	q := sqlq.New(countFrom, statsExprs)
	applyDateRange(q, r)
	return q
}

func applyDateRange(q *sqlq.Query, r DateRange) {
	if !r.From.IsZero() {
		q.Gte("p.created_at", r.From)
	}
	if !r.To.IsZero() {
		q.Lte("p.created_at", r.To)
	}
}
