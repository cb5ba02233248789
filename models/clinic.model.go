package models

import (
	"time"
)

// Appointment status values. Only "booked" is produced by the booking flow;
// the other values exist for later status transitions.
const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type Doctor struct {
	DoctorID  string `json:"doctor_id" db:"doctor_id"`
	Name      string `json:"name" db:"name"`
	Specialty string `json:"specialty" db:"specialty"`
	Schedule  string `json:"schedule" db:"schedule"`
}

type Patient struct {
	PatientID string `json:"patient_id" db:"patient_id"`
	Name      string `json:"name" db:"name"`
	Age       *int   `json:"age" db:"age"`
	Contact   string `json:"contact" db:"contact"`
}

type Appointment struct {
	AppointmentID string    `json:"appointment_id" db:"appointment_id"`
	PatientID     string    `json:"patient_id" db:"patient_id"`
	DoctorID      string    `json:"doctor_id" db:"doctor_id"`
	DateTime      time.Time `json:"date_time" db:"date_time"`
	Status        string    `json:"status" db:"status"`
}

// QueueEntry ranks a booked patient within one doctor's day. Date is the
// calendar date in YYYY-MM-DD form; QueuePosition is unique and strictly
// increasing within a (doctor, date) pair.
type QueueEntry struct {
	DoctorID      string `json:"doctor_id" db:"doctor_id"`
	Date          string `json:"date" db:"queue_date"`
	PatientID     string `json:"patient_id" db:"patient_id"`
	QueuePosition int    `json:"queue_position" db:"queue_position"`
}

// Extended models with related data

type UpcomingAppointment struct {
	Appointment
	PatientName string `json:"patient_name"`
}

type QueuePatient struct {
	PatientID     string `json:"patient_id"`
	Name          string `json:"name"`
	QueuePosition int    `json:"queue_position"`
}

type DoctorSummary struct {
	Doctor
	BookedCount int `json:"booked_count"`
}
