package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-scheduler/httpx"
	"clinic-scheduler/scheduler"
)

// CreateBookingInput mirrors the booking form: all fields arrive as plain
// strings; age may be left empty.
type CreateBookingInput struct {
	PatientName string `json:"patient_name" form:"patient_name"`
	Age         string `json:"age" form:"age"`
	Contact     string `json:"contact" form:"contact"`
	Date        string `json:"date" form:"date"`
	Time        string `json:"time" form:"time"`
}

// CreateBooking books an appointment with the doctor in the path and
// returns the confirmation, including the assigned queue position.
func (ctl *ClinicController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBind(&input); err != nil {
		httpx.SendValidationError(c, "Invalid input data", err.Error())
		return
	}

	confirmation, err := ctl.engine.Book(c.Request.Context(), scheduler.BookingRequest{
		DoctorID:    c.Param("doctor_id"),
		PatientName: input.PatientName,
		Age:         input.Age,
		Contact:     input.Contact,
		Date:        input.Date,
		Time:        input.Time,
	})
	if err != nil {
		httpx.MapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, confirmation)
}
