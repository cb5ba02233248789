package scheduler

import (
	"context"
	"sort"

	"clinic-scheduler/models"
	"clinic-scheduler/store"
)

// QueueEngine assigns same-day queue positions per (doctor, date) pair.
//
// AssignQueuePosition is a read-then-compute step over the whole queue
// ledger; it must only run inside the booking transaction's critical
// section, otherwise two concurrent bookings can observe the same maximum
// and assign a duplicate position.
type QueueEngine struct {
	store store.Store
}

func NewQueueEngine(s store.Store) *QueueEngine {
	return &QueueEngine{store: s}
}

// AssignQueuePosition computes the next position for (doctorID, date): 1 for
// the first booking of the day, otherwise the current maximum plus one. The
// returned entry is committed by the caller together with its appointment.
func (q *QueueEngine) AssignQueuePosition(ctx context.Context, doctorID, date, patientID string) (models.QueueEntry, error) {
	entries, err := q.store.LoadQueueEntries(ctx)
	if err != nil {
		return models.QueueEntry{}, err
	}

	max := 0
	for _, e := range entries {
		if e.DoctorID == doctorID && e.Date == date && e.QueuePosition > max {
			max = e.QueuePosition
		}
	}

	return models.QueueEntry{
		DoctorID:      doctorID,
		Date:          date,
		PatientID:     patientID,
		QueuePosition: max + 1,
	}, nil
}

// QueueForDate returns the (doctor, date) queue joined with patient names,
// ascending by position. An empty queue is an empty slice, not an error.
// Recomputed from the store on every call.
func (q *QueueEngine) QueueForDate(ctx context.Context, doctorID, date string) ([]models.QueuePatient, error) {
	entries, err := q.store.LoadQueueEntries(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := q.store.LoadPatients(ctx)
	if err != nil {
		return nil, err
	}
	names := patientNames(patients)

	queue := []models.QueuePatient{}
	for _, e := range entries {
		if e.DoctorID != doctorID || e.Date != date {
			continue
		}
		queue = append(queue, models.QueuePatient{
			PatientID:     e.PatientID,
			Name:          names[e.PatientID],
			QueuePosition: e.QueuePosition,
		})
	}
	sort.Slice(queue, func(i, j int) bool {
		return queue[i].QueuePosition < queue[j].QueuePosition
	})
	return queue, nil
}
