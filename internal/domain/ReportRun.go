package domain

import (
	"time"
)

type RunStatus string

const (
	RunStatusRunning   RunStatus = "RUNNING"
	RunStatusSucceeded RunStatus = "SUCCEEDED"
	RunStatusFailed    RunStatus = "FAILED"
)

type RunTrigger string

const (
	RunTriggerScheduled RunTrigger = "SCHEDULED"
	RunTriggerManual    RunTrigger = "MANUAL"
	RunTriggerOnce      RunTrigger = "ONCE"
)

// ReportRun registra o desfecho operacional de uma execução do relatório.
// Guarda apenas metadados da execução, nunca métricas agregadas: o
// relatório é recomputado do zero a cada execução.
type ReportRun struct {
	ID          string           `json:"id"`
	Trigger     RunTrigger       `json:"trigger"`
	Status      RunStatus        `json:"status"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	Granularity Granularity      `json:"granularity"`
	RowCounts   map[string]int64 `json:"row_counts"`
	ErrorText   *string          `json:"error_text,omitempty"`
	StartedAt   time.Time        `json:"started_at"`
	FinishedAt  *time.Time       `json:"finished_at,omitempty"`
}
