// Package models holds the JSON bodies of the /api/v1 and /health endpoints.
package models

import (
	"time"

	"frotaweb/pkg/relay"
	"frotaweb/pkg/scheduler"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Service   string                 `json:"service" example:"frotaweb"`
	Version   string                 `json:"version" example:"1.0.0"`
	Timestamp time.Time              `json:"timestamp" example:"2025-09-11T08:13:24Z"`
	Uptime    string                 `json:"uptime" example:"3h12m5s"`
	Checks    map[string]HealthCheck `json:"checks"`
}

// HealthCheck is the outcome of one dependency check
type HealthCheck struct {
	Status  string `json:"status" example:"healthy"`
	Details any    `json:"details,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Health check states
const (
	HealthHealthy     = "healthy"
	HealthDegraded    = "degraded"
	HealthUnavailable = "unavailable"
	HealthUnknown     = "unknown"
)

// SystemStatus represents the system status response
type SystemStatus struct {
	Service     string             `json:"service" example:"frotaweb"`
	Version     string             `json:"version" example:"1.0.0"`
	Environment string             `json:"environment" example:"production"`
	Uptime      string             `json:"uptime" example:"3h12m5s"`
	Forms       FormsStatus        `json:"forms"`
	Relay       *relay.ProbeStatus `json:"relay,omitempty"`
	Scheduler   *scheduler.Status  `json:"scheduler,omitempty"`
	Timestamp   time.Time          `json:"timestamp" example:"2025-09-11T08:13:24Z"`
}

// FormsStatus reports the submission guard
type FormsStatus struct {
	InFlight int      `json:"in_flight" example:"0"`
	Kinds    []string `json:"kinds" example:"accreditation,client,contact"`
	Endpoint string   `json:"relay_endpoint" example:"https://formsubmit.co/ajax/contato@instasolutions.com.br"`
}

// CitiesResponse lists the cities offered for a state
type CitiesResponse struct {
	State  string   `json:"state" example:"SP"`
	Known  bool     `json:"known" example:"true"`
	Cities []string `json:"cities" example:"São Paulo,Campinas"`
}

// PageSummary describes one registered page
type PageSummary struct {
	Route     string   `json:"route" example:"/solucoes"`
	Title     string   `json:"title" example:"Soluções | InstaSolutions"`
	Canonical string   `json:"canonical" example:"https://instasolutions.com.br/solucoes"`
	NoIndex   bool     `json:"noindex" example:"false"`
	Form      string   `json:"form,omitempty" example:"contact"`
	Carousels []string `json:"carousels,omitempty" example:"solutions-fuel"`
}

// PageListResponse lists the registered pages in one locale
type PageListResponse struct {
	Locale string        `json:"locale" example:"pt"`
	Pages  []PageSummary `json:"pages"`
	Count  int           `json:"count" example:"13"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Code      int    `json:"code" example:"400"`
	Message   string `json:"message" example:"Invalid parameter"`
	Details   string `json:"details,omitempty" example:"state is required"`
	RequestID string `json:"request_id,omitempty"`
}
