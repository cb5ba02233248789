package store

import (
	"context"
	"sync"

	"clinic-scheduler/models"
)

// memoryStore keeps the collections in process memory. It backs tests and
// ephemeral runs; every load returns a copy so callers cannot mutate the
// stored state behind the lock.
type memoryStore struct {
	mu           sync.RWMutex
	doctors      []models.Doctor
	patients     []models.Patient
	appointments []models.Appointment
	entries      []models.QueueEntry
}

func NewMemoryStore() Store {
	return &memoryStore{}
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func (s *memoryStore) LoadDoctors(ctx context.Context) ([]models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.doctors), nil
}

func (s *memoryStore) LoadPatients(ctx context.Context) ([]models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.patients), nil
}

func (s *memoryStore) LoadAppointments(ctx context.Context) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.appointments), nil
}

func (s *memoryStore) LoadQueueEntries(ctx context.Context) ([]models.QueueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.entries), nil
}

func (s *memoryStore) ReplaceDoctors(ctx context.Context, doctors []models.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors = copySlice(doctors)
	return nil
}

func (s *memoryStore) ReplacePatients(ctx context.Context, patients []models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients = copySlice(patients)
	return nil
}

func (s *memoryStore) ReplaceBookingLedgers(ctx context.Context, appointments []models.Appointment, entries []models.QueueEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = copySlice(appointments)
	s.entries = copySlice(entries)
	return nil
}
