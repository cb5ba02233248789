package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-scheduler/httpx"
)

// GetDoctorQueue returns the doctor's queue for today (or an explicit
// ?date=YYYY-MM-DD) as an ordered list for polling UIs. A doctor with no
// bookings yields an empty list, not an error.
func (ctl *ClinicController) GetDoctorQueue(c *gin.Context) {
	doctorID := c.Param("doctor_id")
	date := c.DefaultQuery("date", ctl.engine.Today(time.Now()))

	if _, err := ctl.engine.DoctorByID(c.Request.Context(), doctorID); err != nil {
		httpx.MapError(c, err)
		return
	}
	queue, err := ctl.engine.QueueForDate(c.Request.Context(), doctorID, date)
	if err != nil {
		httpx.MapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctor_id": doctorID,
		"date":      date,
		"queue":     queue,
		"count":     len(queue),
	})
}
