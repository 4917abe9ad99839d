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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Summary buckets for records whose reference is unset or gone.
const (
	unassignedElementLabel  = "Sem elemento"
	unassignedCylinderLabel = "Sem cilindro"
)

type flameTimeService struct {
	flameTimeRepo repository.FlameTimeRepository
	refs          *references
	events        *recordEvents
	logger        *slog.Logger
}

// FlameTimeServiceParams holds dependencies for FlameTimeService, injected by Fx.
type FlameTimeServiceParams struct {
	fx.In

	FlameTimeRepo repository.FlameTimeRepository
	CylinderRepo  repository.CylinderRepository
	ElementRepo   repository.ElementRepository
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewFlameTimeService is the constructor for flameTimeService.
func NewFlameTimeService(params FlameTimeServiceParams) usecase.FlameTimeUsecase {
	return &flameTimeService{
		flameTimeRepo: params.FlameTimeRepo,
		refs: &references{
			cylinderRepo: params.CylinderRepo,
			elementRepo:  params.ElementRepo,
		},
		events: newRecordEvents(params.Publisher, params.Logger),
		logger: params.Logger,
	}
}

func (srv *flameTimeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *flameTimeService) ListFlameTimes(ctx context.Context, owner uuid.UUID) ([]*entity.FlameTimeView, error) {
	records, err := srv.flameTimeRepo.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	refs, err := srv.refs.load(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load flame time references")
	}

	views := make([]*entity.FlameTimeView, 0, len(records))
	for _, record := range records {
		views = append(views, flameTimeView(record, refs))
	}

	return views, nil
}

func (srv *flameTimeService) GetFlameTime(ctx context.Context, owner uuid.UUID, id int64) (*entity.FlameTimeView, error) {
	record, err := srv.flameTimeRepo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	return srv.resolve(ctx, owner, record)
}

func (srv *flameTimeService) resolve(ctx context.Context, owner uuid.UUID, record *entity.FlameTimeRecord) (*entity.FlameTimeView, error) {
	refs, err := srv.refs.loadFor(ctx, owner, record.CylinderID, record.ElementID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load flame time references")
	}

	return flameTimeView(record, refs), nil
}

// flameTimeView derives consumption from the element's current rate. A record
// without a resolvable element consumes nothing.
func flameTimeView(record *entity.FlameTimeRecord, refs *lookup) *entity.FlameTimeView {
	total := record.TotalSeconds()

	view := &entity.FlameTimeView{
		FlameTimeRecord: record,
		TotalSeconds:    total,
		CylinderCode:    refs.cylinderCode(record.CylinderID),
		ElementName:     refs.elementName(record.ElementID),
	}

	if element := refs.element(record.ElementID); element != nil {
		view.ConsumptionLiters = entity.ConsumptionLiters(element.ConsumptionLPM, total)
	}

	return view
}

// CreateFlameTime requires hours, minutes and seconds, each non-negative.
func (srv *flameTimeService) CreateFlameTime(ctx context.Context, owner uuid.UUID, input *usecase.CreateFlameTimeInput) (*entity.FlameTimeView, error) {
	if input.Hours == nil || input.Minutes == nil || input.Seconds == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("horas, minutos e segundos são obrigatórios")
	}
	if *input.Hours < 0 || *input.Minutes < 0 || *input.Seconds < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("horas, minutos e segundos não podem ser negativos")
	}

	if err := srv.refs.validate(ctx, owner, input.CylinderID, input.ElementID); err != nil {
		return nil, err
	}

	record := &entity.FlameTimeRecord{
		Hours:      *input.Hours,
		Minutes:    *input.Minutes,
		Seconds:    *input.Seconds,
		CylinderID: input.CylinderID,
		ElementID:  input.ElementID,
	}

	if err := srv.flameTimeRepo.Insert(ctx, owner, record); err != nil {
		return nil, errors.Wrap(err, "failed to create flame time")
	}

	srv.log(ctx).Info("Flame time recorded",
		slog.Int64("flame_time_id", record.ID),
		slog.Int("total_seconds", record.TotalSeconds()),
	)
	srv.events.emit(ctx, owner, constants.EntityFlameTime, constants.ActionCreated, record.ID)

	return srv.resolve(ctx, owner, record)
}

func (srv *flameTimeService) DeleteFlameTime(ctx context.Context, owner uuid.UUID, id int64) error {
	if err := srv.flameTimeRepo.Delete(ctx, owner, id); err != nil {
		return err
	}

	srv.events.emit(ctx, owner, constants.EntityFlameTime, constants.ActionDeleted, id)

	return nil
}

// Summary totals consumption of every record of owner, grouped by element
// name and by cylinder code.
func (srv *flameTimeService) Summary(ctx context.Context, owner uuid.UUID) (*entity.ConsumptionSummary, error) {
	views, err := srv.ListFlameTimes(ctx, owner)
	if err != nil {
		return nil, err
	}

	summary := &entity.ConsumptionSummary{
		LitersByElement:  map[string]float64{},
		LitersByCylinder: map[string]float64{},
		RecordCount:      len(views),
	}

	for _, view := range views {
		summary.TotalSeconds += view.TotalSeconds
		summary.TotalLiters += view.ConsumptionLiters

		element := view.ElementName
		if element == "" {
			element = unassignedElementLabel
		}
		summary.LitersByElement[element] += view.ConsumptionLiters

		cylinder := view.CylinderCode
		if cylinder == "" {
			cylinder = unassignedCylinderLabel
		}
		summary.LitersByCylinder[cylinder] += view.ConsumptionLiters
	}

	summary.TotalKilograms = entity.KilogramsForLiters(summary.TotalLiters)

	return summary, nil
}
