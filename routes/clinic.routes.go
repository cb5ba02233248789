package routes

import (
	"github.com/gin-gonic/gin"

	"clinic-scheduler/controllers"
)

func ClinicRoutes(rg *gin.RouterGroup, ctl *controllers.ClinicController) {
	rg.GET("/health", ctl.HealthCheck)

	doctors := rg.Group("/doctors")
	{
		doctors.GET("", ctl.GetDoctors)
		doctors.GET("/:doctor_id", ctl.GetDoctor)
		doctors.POST("/:doctor_id/bookings", ctl.CreateBooking)
	}

	// Live queue polled by the waiting-room display.
	rg.GET("/queue/:doctor_id", ctl.GetDoctorQueue)
}
