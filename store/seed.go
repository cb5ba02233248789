package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"clinic-scheduler/models"
)

// ParseDoctorRoster reads a doctor roster in CSV form:
//
//	doctor_id,name,specialty,schedule
//	D1,Dr. Asha Rao,Cardiology,Mon-Fri 09:00-13:00
//
// A header row is recognized by its first cell and skipped.
func ParseDoctorRoster(r io.Reader) ([]models.Doctor, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var doctors []models.Doctor
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("roster line %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "doctor_id") {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("roster line %d: want at least doctor_id and name, got %d fields", line, len(record))
		}
		d := models.Doctor{
			DoctorID: strings.TrimSpace(record[0]),
			Name:     strings.TrimSpace(record[1]),
		}
		if d.DoctorID == "" || d.Name == "" {
			return nil, fmt.Errorf("roster line %d: empty doctor_id or name", line)
		}
		if len(record) > 2 {
			d.Specialty = strings.TrimSpace(record[2])
		}
		if len(record) > 3 {
			d.Schedule = strings.TrimSpace(record[3])
		}
		doctors = append(doctors, d)
	}
	return doctors, nil
}

// SeedDoctors loads the roster file into the store when the doctor
// collection is empty. An already-seeded store is left untouched, so the
// file may be removed after the first run.
func SeedDoctors(ctx context.Context, s Store, path string) (int, error) {
	existing, err := s.LoadDoctors(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open doctor roster: %w", err)
	}
	defer f.Close()

	doctors, err := ParseDoctorRoster(f)
	if err != nil {
		return 0, err
	}
	if err := s.ReplaceDoctors(ctx, doctors); err != nil {
		return 0, err
	}
	return len(doctors), nil
}
