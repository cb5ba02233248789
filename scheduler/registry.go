package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"clinic-scheduler/models"
	"clinic-scheduler/store"
)

const patientIDPrefix = "PAT"

// PatientRegistry finds or creates patients. Contact is the dedup key: the
// same contact always resolves to the same patient, regardless of the name
// or age submitted with later bookings.
type PatientRegistry struct {
	store store.Store

	// Serializes resolve-or-create so two first-time bookings with the
	// same new contact cannot both miss the lookup and create twins.
	mu sync.Mutex
}

func NewPatientRegistry(s store.Store) *PatientRegistry {
	return &PatientRegistry{store: s}
}

// Resolve returns the patient for the given contact, creating and persisting
// a new record when none exists. The second return value reports whether a
// new patient was created.
func (r *PatientRegistry) Resolve(ctx context.Context, name string, age *int, contact string) (models.Patient, bool, error) {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return models.Patient{}, false, validationErr("contact", "must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	patients, err := r.store.LoadPatients(ctx)
	if err != nil {
		return models.Patient{}, false, err
	}
	for _, p := range patients {
		if strings.TrimSpace(p.Contact) == contact {
			return p, false, nil
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Patient{}, false, validationErr("patient_name", "must not be empty for a new patient")
	}

	patient := models.Patient{
		PatientID: nextPatientID(patients),
		Name:      name,
		Age:       age,
		Contact:   contact,
	}
	patients = append(patients, patient)
	if err := r.store.ReplacePatients(ctx, patients); err != nil {
		return models.Patient{}, false, err
	}
	return patient, true, nil
}

// nextPatientID issues PAT0001, PAT0002, ... from the highest serial already
// present, so an id is never reused even if the collection was edited out of
// band.
func nextPatientID(patients []models.Patient) string {
	max := 0
	for _, p := range patients {
		n, err := strconv.Atoi(strings.TrimPrefix(p.PatientID, patientIDPrefix))
		if err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%04d", patientIDPrefix, max+1)
}
