package visit

import (
	"time"

	"github.com/google/uuid"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Patient maps to the patients table: one row per visit.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Patient   string    `db:"patient" json:"patient"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctorId"`
	ServiceID uuid.UUID `db:"service_id" json:"serviceId"`
	Age       int       `db:"age" json:"age"`
	Gender    string    `db:"gender" json:"gender"`
	Token     int       `db:"token" json:"token"`
	Fee       int       `db:"fee" json:"fee"`
	Discount  int       `db:"discount" json:"discount"`
	Paid      int       `db:"paid" json:"paid"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// PatientRow is a visit joined with its doctor and service names. The names
// are nullable because the listing uses LEFT JOINs.
type PatientRow struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	Patient     string    `json:"patient"`
	DoctorID    uuid.UUID `json:"doctorId"`
	ServiceID   uuid.UUID `json:"serviceId"`
	DoctorName  *string   `json:"doctorName"`
	ServiceName *string   `json:"serviceName"`
	Age         int       `json:"age"`
	Gender      string    `json:"gender"`
	Token       int       `json:"token"`
	Fee         int       `json:"fee"`
	Discount    int       `json:"discount"`
	Paid        int       `json:"paid"`
}

// Stats is the visit count and revenue over a date range.
type Stats struct {
	TotalPatientVisitsToday int   `json:"totalPatientVisitsToday"`
	TotalTodaySales         int64 `json:"totalTodaySales"`
}

// CreatePatientRequest is the POST body. Every field is required, so
// pointers distinguish "missing" from zero.
type CreatePatientRequest struct {
	Patient   *string `json:"patient"`
	DoctorID  *string `json:"doctorId"`
	ServiceID *string `json:"serviceId"`
	Gender    *string `json:"gender"`
	Age       *int    `json:"age"`
	Token     *int    `json:"token"`
	Fee       *int    `json:"fee"`
	Discount  *int    `json:"discount"`
	Paid      *int    `json:"paid"`
}
