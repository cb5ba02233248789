package store

import (
	"context"
	"database/sql"

	"clinic-scheduler/models"
)

// sqlStore persists the collections in a relational database through
// database/sql. The SQL is deliberately driver-neutral: it runs unchanged
// against Postgres (lib/pq) and the embedded SQLite driver, both of which
// accept $N placeholders.
type sqlStore struct {
	db *sql.DB
}

// NewSQLStore wraps an open database handle. Call EnsureSchema before first
// use.
func NewSQLStore(db *sql.DB) Store {
	return &sqlStore{db: db}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS doctors (
		doctor_id  TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		specialty  TEXT NOT NULL DEFAULT '',
		schedule   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		patient_id TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		age        INTEGER,
		contact    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		appointment_id TEXT PRIMARY KEY,
		patient_id     TEXT NOT NULL,
		doctor_id      TEXT NOT NULL,
		date_time      TIMESTAMP NOT NULL,
		status         TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS queue_entries (
		doctor_id      TEXT NOT NULL,
		queue_date     TEXT NOT NULL,
		patient_id     TEXT NOT NULL,
		queue_position INTEGER NOT NULL,
		PRIMARY KEY (doctor_id, queue_date, queue_position)
	)`,
}

// EnsureSchema creates the four record tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return storageErr("ensure schema", err)
		}
	}
	return nil
}

func (s *sqlStore) LoadDoctors(ctx context.Context) ([]models.Doctor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT doctor_id, name, specialty, schedule
		FROM doctors
		ORDER BY doctor_id
	`)
	if err != nil {
		return nil, storageErr("load doctors", err)
	}
	defer rows.Close()

	doctors := []models.Doctor{}
	for rows.Next() {
		var d models.Doctor
		if err := rows.Scan(&d.DoctorID, &d.Name, &d.Specialty, &d.Schedule); err != nil {
			return nil, storageErr("scan doctor", err)
		}
		doctors = append(doctors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("load doctors", err)
	}
	return doctors, nil
}

func (s *sqlStore) LoadPatients(ctx context.Context) ([]models.Patient, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT patient_id, name, age, contact
		FROM patients
		ORDER BY patient_id
	`)
	if err != nil {
		return nil, storageErr("load patients", err)
	}
	defer rows.Close()

	patients := []models.Patient{}
	for rows.Next() {
		var p models.Patient
		if err := rows.Scan(&p.PatientID, &p.Name, &p.Age, &p.Contact); err != nil {
			return nil, storageErr("scan patient", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("load patients", err)
	}
	return patients, nil
}

func (s *sqlStore) LoadAppointments(ctx context.Context) ([]models.Appointment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT appointment_id, patient_id, doctor_id, date_time, status
		FROM appointments
		ORDER BY date_time, appointment_id
	`)
	if err != nil {
		return nil, storageErr("load appointments", err)
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.AppointmentID, &a.PatientID, &a.DoctorID, &a.DateTime, &a.Status); err != nil {
			return nil, storageErr("scan appointment", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("load appointments", err)
	}
	return appointments, nil
}

func (s *sqlStore) LoadQueueEntries(ctx context.Context) ([]models.QueueEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT doctor_id, queue_date, patient_id, queue_position
		FROM queue_entries
		ORDER BY doctor_id, queue_date, queue_position
	`)
	if err != nil {
		return nil, storageErr("load queue entries", err)
	}
	defer rows.Close()

	entries := []models.QueueEntry{}
	for rows.Next() {
		var e models.QueueEntry
		if err := rows.Scan(&e.DoctorID, &e.Date, &e.PatientID, &e.QueuePosition); err != nil {
			return nil, storageErr("scan queue entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("load queue entries", err)
	}
	return entries, nil
}

func (s *sqlStore) ReplaceDoctors(ctx context.Context, doctors []models.Doctor) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("replace doctors", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM doctors`); err != nil {
		return storageErr("replace doctors", err)
	}
	for _, d := range doctors {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO doctors (doctor_id, name, specialty, schedule)
			VALUES ($1, $2, $3, $4)
		`, d.DoctorID, d.Name, d.Specialty, d.Schedule)
		if err != nil {
			return storageErr("insert doctor", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storageErr("replace doctors", err)
	}
	return nil
}

func (s *sqlStore) ReplacePatients(ctx context.Context, patients []models.Patient) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("replace patients", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM patients`); err != nil {
		return storageErr("replace patients", err)
	}
	for _, p := range patients {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO patients (patient_id, name, age, contact)
			VALUES ($1, $2, $3, $4)
		`, p.PatientID, p.Name, p.Age, p.Contact)
		if err != nil {
			return storageErr("insert patient", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storageErr("replace patients", err)
	}
	return nil
}

// ReplaceBookingLedgers overwrites the appointment and queue collections in
// a single transaction so a booking can never be half-persisted.
func (s *sqlStore) ReplaceBookingLedgers(ctx context.Context, appointments []models.Appointment, entries []models.QueueEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("replace booking ledgers", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM appointments`); err != nil {
		return storageErr("replace appointments", err)
	}
	for _, a := range appointments {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO appointments (appointment_id, patient_id, doctor_id, date_time, status)
			VALUES ($1, $2, $3, $4, $5)
		`, a.AppointmentID, a.PatientID, a.DoctorID, a.DateTime, a.Status)
		if err != nil {
			return storageErr("insert appointment", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM queue_entries`); err != nil {
		return storageErr("replace queue entries", err)
	}
	for _, e := range entries {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO queue_entries (doctor_id, queue_date, patient_id, queue_position)
			VALUES ($1, $2, $3, $4)
		`, e.DoctorID, e.Date, e.PatientID, e.QueuePosition)
		if err != nil {
			return storageErr("insert queue entry", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("replace booking ledgers", err)
	}
	return nil
}
