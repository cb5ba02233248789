package scheduler

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"clinic-scheduler/models"
	"clinic-scheduler/store"
)

const (
	dateLayout        = "2006-01-02"
	dateTimeLayout    = "2006-01-02 15:04"
	dateTimeSecLayout = "2006-01-02 15:04:05"
)

// BookingRequest carries the booking form fields as submitted. Age is
// optional; Date is YYYY-MM-DD and Time is HH:MM (seconds allowed).
type BookingRequest struct {
	DoctorID    string
	PatientName string
	Age         string
	Contact     string
	Date        string
	Time        string
}

// BookingConfirmation is the result of one booking transaction.
type BookingConfirmation struct {
	Appointment    models.Appointment `json:"appointment"`
	Patient        models.Patient     `json:"patient"`
	PatientCreated bool               `json:"patient_created"`
	QueuePosition  int                `json:"queue_position"`
}

// Scheduler composes the patient registry, the appointment ledger and the
// queue engine into the booking transaction. It is the only entry point
// that mutates the appointment and queue ledgers.
type Scheduler struct {
	store    store.Store
	registry *PatientRegistry
	ledger   *AppointmentLedger
	queue    *QueueEngine
	loc      *time.Location
	log      zerolog.Logger

	// The store replaces whole collections, so every booking commit must
	// be serialized; a per-doctor lock would still let two bookings for
	// different doctors overwrite each other's appended records.
	mu sync.Mutex
}

func New(s store.Store, loc *time.Location, log zerolog.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		store:    s,
		registry: NewPatientRegistry(s),
		ledger:   NewAppointmentLedger(s),
		queue:    NewQueueEngine(s),
		loc:      loc,
		log:      log,
	}
}

// Book runs one booking transaction: validate, resolve the patient, create
// the appointment, assign the queue position, and commit both ledgers
// together. Validation and the doctor check happen before any record is
// written. A created patient survives a later failure — patients may exist
// without appointments — but the appointment and queue entry are committed
// atomically or not at all.
func (s *Scheduler) Book(ctx context.Context, req BookingRequest) (*BookingConfirmation, error) {
	if _, err := s.ledger.DoctorByID(ctx, req.DoctorID); err != nil {
		return nil, err
	}
	if err := requireFields(req); err != nil {
		return nil, err
	}
	age, err := parseAge(req.Age)
	if err != nil {
		return nil, err
	}
	at, err := combineDateTime(req.Date, req.Time, s.loc)
	if err != nil {
		return nil, err
	}

	patient, created, err := s.registry.Resolve(ctx, req.PatientName, age, req.Contact)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appointment, err := s.ledger.CreateAppointment(ctx, req.DoctorID, patient.PatientID, at)
	if err != nil {
		return nil, err
	}
	entry, err := s.queue.AssignQueuePosition(ctx, req.DoctorID, at.In(s.loc).Format(dateLayout), patient.PatientID)
	if err != nil {
		return nil, err
	}

	appointments, err := s.store.LoadAppointments(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.store.LoadQueueEntries(ctx)
	if err != nil {
		return nil, err
	}
	err = s.store.ReplaceBookingLedgers(ctx, append(appointments, appointment), append(entries, entry))
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("appointment_id", appointment.AppointmentID).
		Str("doctor_id", appointment.DoctorID).
		Str("patient_id", patient.PatientID).
		Bool("patient_created", created).
		Int("queue_position", entry.QueuePosition).
		Time("at", appointment.DateTime).
		Msg("appointment booked")

	return &BookingConfirmation{
		Appointment:    appointment,
		Patient:        patient,
		PatientCreated: created,
		QueuePosition:  entry.QueuePosition,
	}, nil
}

// Read facade. Queries take no locks; they see the last committed state.

func (s *Scheduler) DoctorByID(ctx context.Context, doctorID string) (models.Doctor, error) {
	return s.ledger.DoctorByID(ctx, doctorID)
}

func (s *Scheduler) DoctorSummaries(ctx context.Context, now time.Time) ([]models.DoctorSummary, error) {
	return s.ledger.BookedCountsByDoctor(ctx, now)
}

func (s *Scheduler) UpcomingForDoctor(ctx context.Context, doctorID string, now time.Time) ([]models.UpcomingAppointment, error) {
	return s.ledger.UpcomingForDoctor(ctx, doctorID, now)
}

func (s *Scheduler) QueueForDate(ctx context.Context, doctorID, date string) ([]models.QueuePatient, error) {
	if _, err := time.ParseInLocation(dateLayout, date, s.loc); err != nil {
		return nil, validationErr("date", "must be YYYY-MM-DD")
	}
	return s.queue.QueueForDate(ctx, doctorID, date)
}

// Today formats the current calendar date in the clinic timezone. The queue
// date key and "today" both derive from this location, so a booking and its
// queue entry always agree on the day.
func (s *Scheduler) Today(now time.Time) string {
	return now.In(s.loc).Format(dateLayout)
}

func requireFields(req BookingRequest) error {
	switch {
	case strings.TrimSpace(req.PatientName) == "":
		return validationErr("patient_name", "must not be empty")
	case strings.TrimSpace(req.Contact) == "":
		return validationErr("contact", "must not be empty")
	case strings.TrimSpace(req.Date) == "":
		return validationErr("date", "must not be empty")
	case strings.TrimSpace(req.Time) == "":
		return validationErr("time", "must not be empty")
	}
	return nil
}

func parseAge(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	age, err := strconv.Atoi(raw)
	if err != nil || age < 0 {
		return nil, validationErr("age", "must be a non-negative integer")
	}
	return &age, nil
}

// combineDateTime joins the date and time form fields into one timestamp in
// the clinic timezone. Unparsable input is rejected, never defaulted.
func combineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	joined := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)
	at, err := time.ParseInLocation(dateTimeLayout, joined, loc)
	if err != nil {
		at, err = time.ParseInLocation(dateTimeSecLayout, joined, loc)
	}
	if err != nil {
		return time.Time{}, validationErr("date/time", "must be YYYY-MM-DD and HH:MM")
	}
	return at, nil
}
