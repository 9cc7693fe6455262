package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"

	"buildmart-be/internal/logger"
	"buildmart-be/internal/product"
	"buildmart-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Summary is what Apply reports back to the caller. The same numbers are
// persisted on the job.
type Summary struct {
	Created   int
	Updated   int
	Failed    int
	RowErrors []RowError
}

type Service interface {
	Apply(ctx context.Context, jobID uuid.UUID) (*Summary, error)
}

type service struct {
	repo     Repository
	products product.Repository
}

func NewService(repo Repository, products product.Repository) Service {
	return &service{repo: repo, products: products}
}

func (s *service) Apply(ctx context.Context, jobID uuid.UUID) (*Summary, error) {
	log := logger.FromCtx(ctx)

	// 1. Load the job with its saved mapping and raw bytes.
	job, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	// 2. Tenant check: partners only apply jobs of their own store.
	if utils.GetUserRoleFromContext(ctx) != utils.RoleAdmin {
		storeID, ok := utils.GetStoreIDFromContext(ctx)
		if !ok || storeID != job.StoreID {
			return nil, ErrWrongStore
		}
	}

	// 3. Only a job with a confirmed mapping can be applied.
	if job.Status != JobMapped {
		return nil, ErrJobNotMapped
	}

	// 4. Walk the rows. Ragged rows are tolerated; the mapper treats
	// short records as rows with missing cells.
	reader := csv.NewReader(bytes.NewReader(job.RawCSV))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		log.Error("import apply: unreadable csv header", zap.String("job_id", job.ID.String()), zap.Error(err))
		job.Status = JobFailed
		if saveErr := s.repo.SaveResult(ctx, job); saveErr != nil {
			log.Error("import apply: failed to persist failed state", zap.Error(saveErr))
		}
		return nil, ErrUnreadableCSV
	}

	summary := &Summary{}
	rowNum := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			summary.addFailure(rowError(rowNum, "unparseable csv row: %v", err))
			continue
		}

		p, rowErr := MapRow(job.StoreID, job.Mapping, headers, record, rowNum)
		if rowErr != nil {
			summary.addFailure(*rowErr)
			continue
		}

		created, err := s.products.UpsertForStore(ctx, p)
		if err != nil {
			summary.addFailure(rowError(rowNum, "upsert failed: %v", err))
			continue
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}

	// 5. Persist the summary on the job.
	job.Status = JobApplied
	job.CreatedCount = summary.Created
	job.UpdatedCount = summary.Updated
	job.FailedCount = summary.Failed
	job.RowErrors = summary.RowErrors
	if err := s.repo.SaveResult(ctx, job); err != nil {
		return nil, err
	}

	log.Info("import apply completed",
		zap.String("job_id", job.ID.String()),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("failed", summary.Failed),
	)

	return summary, nil
}

func (s *Summary) addFailure(e RowError) {
	s.Failed++
	if len(s.RowErrors) < maxRowErrors {
		s.RowErrors = append(s.RowErrors, e)
	}
}
