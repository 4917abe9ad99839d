package impl

import (
	"context"
	"log/slog"

	deliverycontext "labgas/internal/delivery/context"
	"labgas/internal/domain/constants"
	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/domain/repository"
	"labgas/internal/domain/service"
	"labgas/internal/usecase"
	"labgas/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sampleService struct {
	sampleRepo repository.SampleRepository
	refs       *references
	events     *recordEvents
	logger     *slog.Logger
}

// SampleServiceParams holds dependencies for SampleService, injected by Fx.
type SampleServiceParams struct {
	fx.In

	SampleRepo   repository.SampleRepository
	CylinderRepo repository.CylinderRepository
	ElementRepo  repository.ElementRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewSampleService is the constructor for sampleService.
func NewSampleService(params SampleServiceParams) usecase.SampleUsecase {
	return &sampleService{
		sampleRepo: params.SampleRepo,
		refs: &references{
			cylinderRepo: params.CylinderRepo,
			elementRepo:  params.ElementRepo,
		},
		events: newRecordEvents(params.Publisher, params.Logger),
		logger: params.Logger,
	}
}

func (srv *sampleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSamples returns every sample of owner joined with cylinder code and element name.
func (srv *sampleService) ListSamples(ctx context.Context, owner uuid.UUID) ([]*entity.SampleView, error) {
	samples, err := srv.sampleRepo.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	refs, err := srv.refs.load(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sample references")
	}

	views := make([]*entity.SampleView, 0, len(samples))
	for _, sample := range samples {
		views = append(views, sampleView(sample, refs))
	}

	return views, nil
}

func (srv *sampleService) GetSample(ctx context.Context, owner uuid.UUID, id int64) (*entity.SampleView, error) {
	sample, err := srv.sampleRepo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	refs, err := srv.refs.loadFor(ctx, owner, sample.CylinderID, sample.ElementID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sample references")
	}

	return sampleView(sample, refs), nil
}

func sampleView(sample *entity.Sample, refs *lookup) *entity.SampleView {
	return &entity.SampleView{
		Sample:       sample,
		CylinderCode: refs.cylinderCode(sample.CylinderID),
		ElementName:  refs.elementName(sample.ElementID),
	}
}

// CreateSample requires date and time. Counters default to zero.
func (srv *sampleService) CreateSample(ctx context.Context, owner uuid.UUID, input *usecase.CreateSampleInput) (*entity.Sample, error) {
	if input.Date.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("data é obrigatória")
	}
	if input.Time == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("hora é obrigatória")
	}

	sample := &entity.Sample{Date: input.Date}

	clock := input.Time
	if err := applySamplePatch(sample, &usecase.UpdateSampleInput{
		Time:             &clock,
		CylinderID:       input.CylinderID,
		ElementID:        input.ElementID,
		FlameTimeSeconds: input.FlameTimeSeconds,
		Quantity:         input.Quantity,
	}); err != nil {
		return nil, err
	}

	if err := srv.refs.validate(ctx, owner, sample.CylinderID, sample.ElementID); err != nil {
		return nil, err
	}

	if err := srv.sampleRepo.Insert(ctx, owner, sample); err != nil {
		return nil, errors.Wrap(err, "failed to create sample")
	}

	srv.log(ctx).Info("Sample created", slog.Int64("sample_id", sample.ID))
	srv.events.emit(ctx, owner, constants.EntitySample, constants.ActionCreated, sample.ID)

	return sample, nil
}

func (srv *sampleService) UpdateSample(ctx context.Context, owner uuid.UUID, id int64, input *usecase.UpdateSampleInput) (*entity.Sample, error) {
	sample, err := srv.sampleRepo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if err := applySamplePatch(sample, input); err != nil {
		return nil, err
	}

	cylinderID, elementID := input.CylinderID, input.ElementID
	if input.ClearCylinder {
		cylinderID = nil
	}
	if input.ClearElement {
		elementID = nil
	}

	if err := srv.refs.validate(ctx, owner, cylinderID, elementID); err != nil {
		return nil, err
	}

	if err := srv.sampleRepo.Update(ctx, owner, sample); err != nil {
		return nil, errors.Wrap(err, "failed to update sample")
	}

	srv.events.emit(ctx, owner, constants.EntitySample, constants.ActionUpdated, sample.ID)

	return sample, nil
}

func applySamplePatch(sample *entity.Sample, input *usecase.UpdateSampleInput) error {
	if input.Date != nil {
		if input.Date.IsZero() {
			return domainerrors.ErrValidationFailed.WithDetails("data inválida")
		}
		sample.Date = *input.Date
	}

	if input.Time != nil {
		clock, err := util.NormalizeClock(*input.Time)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("hora inválida, use HH:MM ou HH:MM:SS")
		}
		sample.Time = clock
	}

	switch {
	case input.ClearCylinder:
		sample.CylinderID = nil
	case input.CylinderID != nil:
		sample.CylinderID = input.CylinderID
	}

	switch {
	case input.ClearElement:
		sample.ElementID = nil
	case input.ElementID != nil:
		sample.ElementID = input.ElementID
	}

	if input.FlameTimeSeconds != nil {
		if *input.FlameTimeSeconds < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("tempo de chama não pode ser negativo")
		}
		sample.FlameTimeSeconds = *input.FlameTimeSeconds
	}

	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("quantidade não pode ser negativa")
		}
		sample.Quantity = *input.Quantity
	}

	return nil
}

func (srv *sampleService) DeleteSample(ctx context.Context, owner uuid.UUID, id int64) error {
	if err := srv.sampleRepo.Delete(ctx, owner, id); err != nil {
		return err
	}

	srv.events.emit(ctx, owner, constants.EntitySample, constants.ActionDeleted, id)

	return nil
}
