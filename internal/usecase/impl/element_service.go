package impl

import (
	"context"
	"log/slog"
	"strings"

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

type elementService struct {
	txManager   repository.TransactionManager
	elementRepo repository.ElementRepository
	events      *recordEvents
	logger      *slog.Logger
}

// ElementServiceParams holds dependencies for ElementService, injected by Fx.
type ElementServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ElementRepo repository.ElementRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewElementService is the constructor for elementService.
func NewElementService(params ElementServiceParams) usecase.ElementUsecase {
	return &elementService{
		txManager:   params.TxManager,
		elementRepo: params.ElementRepo,
		events:      newRecordEvents(params.Publisher, params.Logger),
		logger:      params.Logger,
	}
}

func (srv *elementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *elementService) ListElements(ctx context.Context, owner uuid.UUID) ([]*entity.Element, error) {
	elements, err := srv.elementRepo.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(elements) > 0 {
		return elements, nil
	}

	seeded, err := srv.EnsureSeeded(ctx, owner)
	if err != nil {
		return nil, err
	}
	if seeded == 0 {
		return elements, nil
	}

	return srv.elementRepo.List(ctx, owner)
}

// EnsureSeeded inserts the default catalog in one batch when owner has no
// elements. Losing the race against a concurrent seed counts as seeded.
func (srv *elementService) EnsureSeeded(ctx context.Context, owner uuid.UUID) (int, error) {
	count, err := srv.elementRepo.Count(ctx, owner)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	catalog := entity.ElementCatalog()
	elements := make([]*entity.Element, 0, len(catalog))
	for _, entry := range catalog {
		elements = append(elements, &entity.Element{
			Name:           entry.Name,
			ConsumptionLPM: entry.ConsumptionLPM,
		})
	}

	if err := srv.elementRepo.InsertBatch(ctx, owner, elements); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateKey) {
			srv.log(ctx).Info("Element catalog already seeded concurrently", slog.String("user_id", owner.String()))

			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to seed element catalog")
	}

	srv.log(ctx).Info("Element catalog seeded",
		slog.String("user_id", owner.String()),
		slog.Int("count", len(elements)),
	)

	return len(elements), nil
}

func (srv *elementService) GetElement(ctx context.Context, owner uuid.UUID, id int64) (*entity.Element, error) {
	return srv.elementRepo.Get(ctx, owner, id)
}

func (srv *elementService) CreateElement(ctx context.Context, owner uuid.UUID, input *usecase.CreateElementInput) (*entity.Element, error) {
	element := &entity.Element{ConsumptionLPM: entity.DefaultConsumptionLPM}

	name := input.Name
	if err := applyElementPatch(element, &usecase.UpdateElementInput{
		Name:           &name,
		ConsumptionLPM: input.ConsumptionLPM,
	}); err != nil {
		return nil, err
	}

	if err := srv.elementRepo.Insert(ctx, owner, element); err != nil {
		return nil, errors.Wrap(err, "failed to create element")
	}

	srv.events.emit(ctx, owner, constants.EntityElement, constants.ActionCreated, element.ID)

	return element, nil
}

func (srv *elementService) UpdateElement(ctx context.Context, owner uuid.UUID, id int64, input *usecase.UpdateElementInput) (*entity.Element, error) {
	element, err := srv.elementRepo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if err := applyElementPatch(element, input); err != nil {
		return nil, err
	}

	if err := srv.elementRepo.Update(ctx, owner, element); err != nil {
		return nil, errors.Wrap(err, "failed to update element")
	}

	srv.events.emit(ctx, owner, constants.EntityElement, constants.ActionUpdated, element.ID)

	return element, nil
}

func applyElementPatch(element *entity.Element, input *usecase.UpdateElementInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return domainerrors.ErrValidationFailed.WithDetails("nome é obrigatório")
		}
		element.Name = name
	}

	if input.ConsumptionLPM != nil {
		if *input.ConsumptionLPM < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("consumo (L/min) não pode ser negativo")
		}
		element.ConsumptionLPM = *input.ConsumptionLPM
	}

	return nil
}

// DeleteElement removes the element unless a sample or flame time still references it.
func (srv *elementService) DeleteElement(ctx context.Context, owner uuid.UUID, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ElementRepo().Get(ctx, owner, id); err != nil {
			return err
		}

		if err := ensureNoDependents(ctx, repoFactory, owner, func(counter repository.ReferenceCounter) (int64, error) {
			return counter.CountByElement(ctx, owner, id)
		}); err != nil {
			return err
		}

		return repoFactory.ElementRepo().Delete(ctx, owner, id)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete element")
	}

	srv.events.emit(ctx, owner, constants.EntityElement, constants.ActionDeleted, id)

	return nil
}
