package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsForeignKeyViolation(t *testing.T) {
	err := fmt.Errorf("insert patient: %w", &pgconn.PgError{Code: "23503", ConstraintName: "patients_doctor_id_fkey"})
	name, ok := IsForeignKeyViolation(err)
	if !ok {
		t.Fatal("expected wrapped 23503 to be detected")
	}
	if name != "patients_doctor_id_fkey" {
		t.Errorf("expected constraint name, got %q", name)
	}
}

func TestIsForeignKeyViolation_OtherErrors(t *testing.T) {
	if _, ok := IsForeignKeyViolation(errors.New("boom")); ok {
		t.Error("plain error must not be a foreign key violation")
	}
	if _, ok := IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}); ok {
		t.Error("unique violation must not be a foreign key violation")
	}
	if _, ok := IsForeignKeyViolation(nil); ok {
		t.Error("nil must not be a foreign key violation")
	}
}

func TestValidSchemaName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"public", true},
		{"it_ab12cd34", true},
		{"_private", true},
		{"1abc", false},
		{"a-b", false},
		{"a;DROP TABLE patients", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidSchemaName(tt.name); got != tt.valid {
				t.Errorf("ValidSchemaName(%q) = %v, want %v", tt.name, got, tt.valid)
			}
		})
	}
}

func TestCreateSchema_InvalidName(t *testing.T) {
	err := CreateSchema(context.Background(), nil, "bad-name", "")
	if err == nil {
		t.Fatal("expected error for invalid schema name")
	}
}
