package directory

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctors table.
type Doctor struct {
	ID         uuid.UUID `db:"id" json:"id"`
	DoctorName string    `db:"doctor_name" json:"doctorName"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// ClinicService maps to the services table. Fee is the default suggested
// at the desk; each visit records its own fee.
type ClinicService struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ServiceName string    `db:"service_name" json:"serviceName"`
	Fee         int       `db:"fee" json:"fee"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type CreateDoctorRequest struct {
	DoctorName string `json:"doctorName"`
}

type CreateServiceRequest struct {
	ServiceName string `json:"serviceName"`
	Fee         *int   `json:"fee"`
}
