package impl

import (
	"context"
	"log/slog"

	"labgas/internal/domain/entity"
	"labgas/internal/domain/repository"
	"labgas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type statsService struct {
	cylinderRepo  repository.CylinderRepository
	elementRepo   repository.ElementRepository
	sampleRepo    repository.SampleRepository
	flameTimeRepo repository.FlameTimeRepository
	logger        *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	CylinderRepo  repository.CylinderRepository
	ElementRepo   repository.ElementRepository
	SampleRepo    repository.SampleRepository
	FlameTimeRepo repository.FlameTimeRepository
	Logger        *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		cylinderRepo:  params.CylinderRepo,
		elementRepo:   params.ElementRepo,
		sampleRepo:    params.SampleRepo,
		flameTimeRepo: params.FlameTimeRepo,
		logger:        params.Logger,
	}
}

func (srv *statsService) Counts(ctx context.Context, owner uuid.UUID) (*entity.RecordCounts, error) {
	counts := &entity.RecordCounts{}

	steps := []struct {
		name  string
		count func(context.Context, uuid.UUID) (int64, error)
		into  *int64
	}{
		{"cylinders", srv.cylinderRepo.Count, &counts.Cylinders},
		{"elements", srv.elementRepo.Count, &counts.Elements},
		{"samples", srv.sampleRepo.Count, &counts.Samples},
		{"flame times", srv.flameTimeRepo.Count, &counts.FlameTimes},
	}

	for _, step := range steps {
		n, err := step.count(ctx, owner)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to count %s", step.name)
		}
		*step.into = n
	}

	byStatus, err := srv.cylinderRepo.CountByStatus(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count cylinders by status")
	}

	counts.StatusCounts = make(map[entity.CylinderStatus]int64, len(entity.CylinderStatuses))
	for _, status := range entity.CylinderStatuses {
		counts.StatusCounts[status] = byStatus[status]
	}

	return counts, nil
}
