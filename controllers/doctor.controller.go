package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-scheduler/httpx"
)

// GetDoctors lists all doctors with their upcoming booked counts. Doctors
// without bookings report a count of 0.
func (ctl *ClinicController) GetDoctors(c *gin.Context) {
	summaries, err := ctl.engine.DoctorSummaries(c.Request.Context(), time.Now())
	if err != nil {
		httpx.MapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"doctors":          summaries,
		"emergency_number": ctl.cfg.EmergencyNumber,
	})
}

// GetDoctor returns one doctor's profile: the record, the next upcoming
// appointments and today's queue.
func (ctl *ClinicController) GetDoctor(c *gin.Context) {
	doctorID := c.Param("doctor_id")
	ctx := c.Request.Context()
	now := time.Now()

	doctor, err := ctl.engine.DoctorByID(ctx, doctorID)
	if err != nil {
		httpx.MapError(c, err)
		return
	}
	upcoming, err := ctl.engine.UpcomingForDoctor(ctx, doctorID, now)
	if err != nil {
		httpx.MapError(c, err)
		return
	}
	queue, err := ctl.engine.QueueForDate(ctx, doctorID, ctl.engine.Today(now))
	if err != nil {
		httpx.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctor":           doctor,
		"upcoming":         upcoming,
		"queue":            queue,
		"emergency_number": ctl.cfg.EmergencyNumber,
	})
}
