package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-scheduler/models"
	"clinic-scheduler/store"
)

func TestResolveCreatesAndPersistsPatient(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	registry := NewPatientRegistry(s)

	age := 30
	patient, created, err := registry.Resolve(ctx, "Meera Nair", &age, "555-0100")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "PAT0001", patient.PatientID)

	// Persisted before returning, not deferred to the booking commit.
	stored, err := s.LoadPatients(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, patient, stored[0])
}

func TestResolveReturnsSameIDForSameContact(t *testing.T) {
	ctx := context.Background()
	registry := NewPatientRegistry(store.NewMemoryStore())

	first, _, err := registry.Resolve(ctx, "Meera Nair", nil, "555-0100")
	require.NoError(t, err)
	second, created, err := registry.Resolve(ctx, "Someone Else", nil, "555-0100")
	require.NoError(t, err)

	assert.Equal(t, first.PatientID, second.PatientID)
	assert.False(t, created)
	// The stored name is untouched by the second resolution.
	assert.Equal(t, "Meera Nair", second.Name)
}

func TestResolveMatchesOnTrimmedContact(t *testing.T) {
	ctx := context.Background()
	registry := NewPatientRegistry(store.NewMemoryStore())

	first, _, err := registry.Resolve(ctx, "Meera Nair", nil, "555-0100")
	require.NoError(t, err)
	second, created, err := registry.Resolve(ctx, "Meera Nair", nil, "  555-0100  ")
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, first.PatientID, second.PatientID)
}

func TestResolveRejectsEmptyContact(t *testing.T) {
	registry := NewPatientRegistry(store.NewMemoryStore())

	_, _, err := registry.Resolve(context.Background(), "Meera Nair", nil, "   ")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "contact", verr.Field)
}

func TestResolveRequiresNameForNewPatient(t *testing.T) {
	registry := NewPatientRegistry(store.NewMemoryStore())

	_, _, err := registry.Resolve(context.Background(), "", nil, "555-0100")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "patient_name", verr.Field)
}

func TestNextPatientIDSkipsPastHighestSerial(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.ReplacePatients(ctx, []models.Patient{
		{PatientID: "PAT0002", Name: "A", Contact: "1"},
		{PatientID: "PAT0007", Name: "B", Contact: "2"},
	}))
	registry := NewPatientRegistry(s)

	patient, created, err := registry.Resolve(ctx, "C", nil, "3")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "PAT0008", patient.PatientID)
}
