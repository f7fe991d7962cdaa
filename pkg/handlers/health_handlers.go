package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"frotaweb/pkg/leadform"
	"frotaweb/pkg/models"
	"frotaweb/pkg/response"
)

// GetStatus returns the overall system status
// @Summary Get system status
// @Description Returns uptime, submission guard state, the last relay probe and the scheduler jobs
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope{data=models.SystemStatus}
// @Router /status [get]
func (h *HandlerService) GetStatus(c *gin.Context) {
	kinds := make([]string, 0, len(leadform.Kinds()))
	for _, k := range leadform.Kinds() {
		kinds = append(kinds, string(k))
	}

	status := models.SystemStatus{
		Service:     ServiceName,
		Version:     Version,
		Environment: h.config.App.Environment,
		Uptime:      time.Since(h.startedAt).Round(time.Second).String(),
		Forms: models.FormsStatus{
			InFlight: h.guard.InFlight(),
			Kinds:    kinds,
			Endpoint: h.relay.Endpoint(),
		},
		Relay:     h.relay.LastProbe(),
		Timestamp: getCurrentTimestamp(),
	}
	if h.IsSchedulerAvailable() {
		status.Scheduler = h.scheduler.GetStatus()
	}

	response.OK(c, status)
}

// HealthCheck performs a health check
// @Summary Perform health check
// @Description Reports templates, relay reachability and scheduler state. An unreachable relay degrades the service but keeps it serving pages. (Note: this endpoint is not under /api/v1 path)
// @Tags Health Check
// @Produce json
// @Success 200 {object} models.HealthResponse "Service is serving"
// @Failure 503 {object} models.HealthResponse "Service unhealthy"
// @Router /health [get]
func (h *HandlerService) HealthCheck(c *gin.Context) {
	health := models.HealthResponse{
		Status:    models.HealthHealthy,
		Service:   ServiceName,
		Version:   Version,
		Timestamp: getCurrentTimestamp(),
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Checks: map[string]models.HealthCheck{
			"renderer":  h.checkRendererHealth(),
			"relay":     h.checkRelayHealth(),
			"scheduler": h.checkSchedulerHealth(),
		},
	}

	for _, check := range health.Checks {
		switch check.Status {
		case models.HealthUnavailable:
			if health.Status == models.HealthHealthy {
				health.Status = models.HealthDegraded
			}
		case "unhealthy":
			health.Status = "unhealthy"
		}
	}

	if health.Status == "unhealthy" {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}

func (h *HandlerService) checkRendererHealth() models.HealthCheck {
	if h.renderer == nil || h.resolver == nil {
		return models.HealthCheck{Status: "unhealthy", Error: "templates not loaded"}
	}
	return models.HealthCheck{Status: models.HealthHealthy}
}

// checkRelayHealth reports the last scheduled probe; it never probes inline.
func (h *HandlerService) checkRelayHealth() models.HealthCheck {
	probe := h.relay.LastProbe()
	if probe == nil {
		return models.HealthCheck{Status: models.HealthUnknown, Details: gin.H{"endpoint": h.relay.Endpoint()}}
	}
	if !probe.Reachable {
		return models.HealthCheck{Status: models.HealthUnavailable, Details: probe, Error: probe.Error}
	}
	return models.HealthCheck{Status: models.HealthHealthy, Details: probe}
}

func (h *HandlerService) checkSchedulerHealth() models.HealthCheck {
	if !h.IsSchedulerAvailable() {
		return models.HealthCheck{Status: models.HealthUnknown, Error: "scheduler not initialized"}
	}
	status := h.scheduler.GetStatus()
	return models.HealthCheck{
		Status:  models.HealthHealthy,
		Details: gin.H{"running": status.Running, "job_count": status.JobCount},
	}
}

// getCurrentTimestamp returns the current UTC time
func getCurrentTimestamp() time.Time {
	return time.Now().UTC()
}
