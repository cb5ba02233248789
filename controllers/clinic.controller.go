package controllers

import (
	"clinic-scheduler/config"
	"clinic-scheduler/scheduler"
)

// ClinicController holds the handler dependencies. Every handler delegates
// to the scheduler core and maps its errors; no booking logic lives here.
type ClinicController struct {
	engine *scheduler.Scheduler
	cfg    *config.Config
}

func New(engine *scheduler.Scheduler, cfg *config.Config) *ClinicController {
	return &ClinicController{engine: engine, cfg: cfg}
}
