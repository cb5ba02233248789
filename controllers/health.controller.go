package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (ctl *ClinicController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "clinic-scheduler",
	})
}
