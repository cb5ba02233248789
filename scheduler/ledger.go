package scheduler

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"clinic-scheduler/models"
	"clinic-scheduler/store"
)

const (
	appointmentIDPrefix = "APP"
	upcomingLimit       = 20
)

// AppointmentLedger creates appointment records and computes the read
// projections over them. It never persists on its own; the booking
// transaction commits the extended ledger.
type AppointmentLedger struct {
	store store.Store
}

func NewAppointmentLedger(s store.Store) *AppointmentLedger {
	return &AppointmentLedger{store: s}
}

// CreateAppointment builds a new booked appointment after checking the
// doctor exists. The identifier is APP plus the first eight hex characters
// of a UUID, re-rolled on the off chance it collides with an existing one.
func (l *AppointmentLedger) CreateAppointment(ctx context.Context, doctorID, patientID string, at time.Time) (models.Appointment, error) {
	doctors, err := l.store.LoadDoctors(ctx)
	if err != nil {
		return models.Appointment{}, err
	}
	if !doctorExists(doctors, doctorID) {
		return models.Appointment{}, notFoundErr("doctor", doctorID)
	}

	appointments, err := l.store.LoadAppointments(ctx)
	if err != nil {
		return models.Appointment{}, err
	}
	taken := make(map[string]bool, len(appointments))
	for _, a := range appointments {
		taken[a.AppointmentID] = true
	}

	var id string
	for {
		id = newAppointmentID()
		if !taken[id] {
			break
		}
	}

	return models.Appointment{
		AppointmentID: id,
		PatientID:     patientID,
		DoctorID:      doctorID,
		DateTime:      at,
		Status:        models.StatusBooked,
	}, nil
}

// UpcomingForDoctor returns the doctor's next booked appointments at or
// after now, soonest first, capped to the 20 nearest and joined with patient
// names. The projection is recomputed from the store on every call.
func (l *AppointmentLedger) UpcomingForDoctor(ctx context.Context, doctorID string, now time.Time) ([]models.UpcomingAppointment, error) {
	appointments, err := l.store.LoadAppointments(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := l.store.LoadPatients(ctx)
	if err != nil {
		return nil, err
	}
	names := patientNames(patients)

	upcoming := []models.UpcomingAppointment{}
	for _, a := range appointments {
		if a.DoctorID != doctorID || a.Status != models.StatusBooked || a.DateTime.Before(now) {
			continue
		}
		upcoming = append(upcoming, models.UpcomingAppointment{
			Appointment: a,
			PatientName: names[a.PatientID],
		})
	}
	sort.Slice(upcoming, func(i, j int) bool {
		if !upcoming[i].DateTime.Equal(upcoming[j].DateTime) {
			return upcoming[i].DateTime.Before(upcoming[j].DateTime)
		}
		return upcoming[i].AppointmentID < upcoming[j].AppointmentID
	})
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	return upcoming, nil
}

// BookedCountsByDoctor reports, for every doctor, how many booked
// appointments lie at or after now. Doctors with no bookings report 0.
func (l *AppointmentLedger) BookedCountsByDoctor(ctx context.Context, now time.Time) ([]models.DoctorSummary, error) {
	doctors, err := l.store.LoadDoctors(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := l.store.LoadAppointments(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, a := range appointments {
		if a.Status == models.StatusBooked && !a.DateTime.Before(now) {
			counts[a.DoctorID]++
		}
	}

	summaries := make([]models.DoctorSummary, 0, len(doctors))
	for _, d := range doctors {
		summaries = append(summaries, models.DoctorSummary{
			Doctor:      d,
			BookedCount: counts[d.DoctorID],
		})
	}
	return summaries, nil
}

// DoctorByID returns the doctor record or a NotFoundError.
func (l *AppointmentLedger) DoctorByID(ctx context.Context, doctorID string) (models.Doctor, error) {
	doctors, err := l.store.LoadDoctors(ctx)
	if err != nil {
		return models.Doctor{}, err
	}
	for _, d := range doctors {
		if d.DoctorID == doctorID {
			return d, nil
		}
	}
	return models.Doctor{}, notFoundErr("doctor", doctorID)
}

func newAppointmentID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return appointmentIDPrefix + strings.ToUpper(hex[:8])
}

func doctorExists(doctors []models.Doctor, doctorID string) bool {
	for _, d := range doctors {
		if d.DoctorID == doctorID {
			return true
		}
	}
	return false
}

func patientNames(patients []models.Patient) map[string]string {
	names := make(map[string]string, len(patients))
	for _, p := range patients {
		names[p.PatientID] = p.Name
	}
	return names
}
