package importer

import (
	"context"
	"database/sql"
	"encoding/json"

	"buildmart-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	GetJob(ctx context.Context, id uuid.UUID) (*ImportJob, error)
	SaveResult(ctx context.Context, job *ImportJob) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetJob(ctx context.Context, id uuid.UUID) (*ImportJob, error) {
	log := logger.FromCtx(ctx)

	var (
		job        ImportJob
		mappingRaw []byte
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, store_id, status, mapping, raw_csv FROM import_jobs WHERE id = $1",
		id,
	).Scan(&job.ID, &job.StoreID, &job.Status, &mappingRaw, &job.RawCSV)

	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}
	if err != nil {
		log.Error("db: failed to load import job", zap.String("job_id", id.String()), zap.Error(err))
		return nil, err
	}

	if len(mappingRaw) > 0 {
		if err := json.Unmarshal(mappingRaw, &job.Mapping); err != nil {
			log.Error("db: stored mapping is not valid json", zap.String("job_id", id.String()), zap.Error(err))
			return nil, err
		}
	}

	return &job, nil
}

func (r *repository) SaveResult(ctx context.Context, job *ImportJob) error {
	log := logger.FromCtx(ctx)

	errorsRaw, err := json.Marshal(job.RowErrors)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE import_jobs
		 SET status = $1, created_count = $2, updated_count = $3, failed_count = $4, row_errors = $5, updated_at = NOW()
		 WHERE id = $6`,
		job.Status, job.CreatedCount, job.UpdatedCount, job.FailedCount, errorsRaw, job.ID,
	)
	if err != nil {
		log.Error("db: failed to save import result", zap.String("job_id", job.ID.String()), zap.Error(err))
	}
	return err
}
