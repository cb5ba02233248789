package store

import (
	"context"
	"fmt"

	"clinic-scheduler/models"
)

// Store is the persistence port for the four record collections. Each
// collection is loaded in full and replaced in full; a replace either fully
// succeeds or leaves the prior state intact. A collection with no backing
// rows loads as an empty slice, not an error.
//
// Appointments and queue entries are always replaced together: the two
// ledgers are extended by the same booking and must never diverge.
type Store interface {
	LoadDoctors(ctx context.Context) ([]models.Doctor, error)
	LoadPatients(ctx context.Context) ([]models.Patient, error)
	LoadAppointments(ctx context.Context) ([]models.Appointment, error)
	LoadQueueEntries(ctx context.Context) ([]models.QueueEntry, error)

	ReplaceDoctors(ctx context.Context, doctors []models.Doctor) error
	ReplacePatients(ctx context.Context, patients []models.Patient) error
	ReplaceBookingLedgers(ctx context.Context, appointments []models.Appointment, entries []models.QueueEntry) error
}

// StorageError wraps a failed read or write against the backing storage.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
