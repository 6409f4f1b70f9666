package db

import (
	"context"
	"time"
)

// Store defines the full set of database operations. The postgres.DB
// implementation satisfies this; services declare narrower per-operation
// interfaces so tests only mock what they use.
type Store interface {
	ListEmployees(ctx context.Context) ([]EmployeeRecord, error)

	ListConstraints(ctx context.Context, year int, month time.Month) ([]ConstraintRecord, error)
	UpsertConstraint(ctx context.Context, record ConstraintRecord) error
	InsertConstraints(ctx context.Context, records []ConstraintRecord) error

	ListRecurringConstraints(ctx context.Context) ([]RecurringConstraintRecord, error)

	ListVacationRequests(ctx context.Context, year int, month time.Month) ([]VacationRequestRecord, error)
	GetVacationRequest(ctx context.Context, id string) (*VacationRequestRecord, error)
	UpdateVacationRequest(ctx context.Context, record VacationRequestRecord) error

	ListShifts(ctx context.Context, year int, month time.Month) ([]ShiftRecord, error)
	ReplaceShifts(ctx context.Context, year int, month time.Month, shifts []ShiftRecord) error
}
