package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/search-brand-reporter/infrastructure/database/postgres"
	"github.com/vfg2006/search-brand-reporter/internal/domain"
)

const (
	reportRunsTable = "report_runs rr"
)

// ReportRunRepository persiste o journal operacional de execuções.
// Guarda apenas metadados (desfecho, contagens, datas); nenhuma métrica
// agregada do relatório é persistida.
type ReportRunRepository interface {
	SaveOrUpdate(run *domain.ReportRun) error
	GetByID(id string) (*domain.ReportRun, error)
	ListRecent(limit int) ([]*domain.ReportRun, error)
	DeleteOlderThan(days int) (int64, error)
}

type reportRunRepository struct {
	conn *postgres.Connection
}

func NewReportRunRepository(conn *postgres.Connection) ReportRunRepository {
	return &reportRunRepository{
		conn: conn,
	}
}

func (r *reportRunRepository) SaveOrUpdate(run *domain.ReportRun) error {
	rowCountsJSON, err := json.Marshal(run.RowCounts)
	if err != nil {
		return fmt.Errorf("erro ao serializar contagens de linhas: %w", err)
	}

	query, args, err := squirrel.
		Insert("report_runs").
		Columns(
			"id", "trigger", "status", "start_date", "end_date",
			"granularity", "row_counts", "error_text", "started_at", "finished_at",
		).
		Values(
			run.ID, run.Trigger, run.Status, run.StartDate, run.EndDate,
			run.Granularity, rowCountsJSON, run.ErrorText, run.StartedAt, run.FinishedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			row_counts = EXCLUDED.row_counts,
			error_text = EXCLUDED.error_text,
			finished_at = EXCLUDED.finished_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar execução do relatório: %w", err)
	}

	return nil
}

func (r *reportRunRepository) GetByID(id string) (*domain.ReportRun, error) {
	query, args, err := squirrel.
		Select("rr.id, rr.trigger, rr.status, rr.start_date, rr.end_date, rr.granularity, rr.row_counts, rr.error_text, rr.started_at, rr.finished_at").
		From(reportRunsTable).
		Where(squirrel.Eq{"rr.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	run, err := r.scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear execução: %w", err)
	}

	return run, nil
}

func (r *reportRunRepository) ListRecent(limit int) ([]*domain.ReportRun, error) {
	if limit <= 0 {
		limit = 20
	}

	query, args, err := squirrel.
		Select("rr.id, rr.trigger, rr.status, rr.start_date, rr.end_date, rr.granularity, rr.row_counts, rr.error_text, rr.started_at, rr.finished_at").
		From(reportRunsTable).
		OrderBy("rr.started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.ReportRun, 0)
	for rows.Next() {
		run, err := r.scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execuções: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

// DeleteOlderThan remove execuções iniciadas há mais de `days` dias e
// retorna quantas foram removidas.
func (r *reportRunRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("report_runs").
		Where(squirrel.Lt{"started_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover execuções antigas: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao contar execuções removidas: %w", err)
	}

	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *reportRunRepository) scanRun(scanner rowScanner) (*domain.ReportRun, error) {
	var (
		run           domain.ReportRun
		rowCountsJSON []byte
		errorText     sql.NullString
		finishedAt    sql.NullTime
	)

	err := scanner.Scan(
		&run.ID,
		&run.Trigger,
		&run.Status,
		&run.StartDate,
		&run.EndDate,
		&run.Granularity,
		&rowCountsJSON,
		&errorText,
		&run.StartedAt,
		&finishedAt,
	)
	if err != nil {
		return nil, err
	}

	run.RowCounts = map[string]int64{}
	if len(rowCountsJSON) > 0 {
		if err := json.Unmarshal(rowCountsJSON, &run.RowCounts); err != nil {
			return nil, fmt.Errorf("erro ao desserializar contagens de linhas: %w", err)
		}
	}

	if errorText.Valid {
		run.ErrorText = &errorText.String
	}

	if finishedAt.Valid {
		run.FinishedAt = &finishedAt.Time
	}

	return &run, nil
}
