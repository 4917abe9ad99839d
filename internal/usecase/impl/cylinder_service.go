package impl

import (
	"context"
	"fmt"
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

// cylinderService implements the CylinderUsecase interface.
type cylinderService struct {
	txManager    repository.TransactionManager
	cylinderRepo repository.CylinderRepository
	qrcode       service.QRCodeService
	events       *recordEvents
	logger       *slog.Logger
}

// CylinderServiceParams holds dependencies for CylinderService, injected by Fx.
type CylinderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CylinderRepo repository.CylinderRepository
	QRCode       service.QRCodeService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewCylinderService is the constructor for cylinderService.
func NewCylinderService(params CylinderServiceParams) usecase.CylinderUsecase {
	return &cylinderService{
		txManager:    params.TxManager,
		cylinderRepo: params.CylinderRepo,
		qrcode:       params.QRCode,
		events:       newRecordEvents(params.Publisher, params.Logger),
		logger:       params.Logger,
	}
}

func (srv *cylinderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cylinderService) ListCylinders(ctx context.Context, owner uuid.UUID, filter usecase.CylinderFilter) ([]*entity.Cylinder, error) {
	if filter.Status == nil {
		return srv.cylinderRepo.List(ctx, owner)
	}

	if !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("status inválido: %s", *filter.Status))
	}

	return srv.cylinderRepo.ListByStatus(ctx, owner, *filter.Status)
}

func (srv *cylinderService) GetCylinder(ctx context.Context, owner uuid.UUID, id int64) (*entity.Cylinder, error) {
	return srv.cylinderRepo.Get(ctx, owner, id)
}

// CreateCylinder validates input, applies the defaults and derives liters from gas mass.
func (srv *cylinderService) CreateCylinder(ctx context.Context, owner uuid.UUID, input *usecase.CreateCylinderInput) (*entity.Cylinder, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("código é obrigatório")
	}
	if input.PurchaseDate.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("data de compra é obrigatória")
	}

	cylinder := &entity.Cylinder{
		Code:         code,
		PurchaseDate: input.PurchaseDate,
		Cost:         entity.DefaultCylinderCost,
		Status:       entity.CylinderStatusActive,
	}
	cylinder.SetGasKg(entity.DefaultGasKg)

	if err := applyCylinderPatch(cylinder, &usecase.UpdateCylinderInput{
		GasKg:  input.GasKg,
		Cost:   input.Cost,
		Status: input.Status,
	}); err != nil {
		return nil, err
	}

	if err := srv.cylinderRepo.Insert(ctx, owner, cylinder); err != nil {
		return nil, errors.Wrap(err, "failed to create cylinder")
	}

	srv.log(ctx).Info("Cylinder created", slog.Int64("cylinder_id", cylinder.ID), slog.String("code", cylinder.Code))
	srv.events.emit(ctx, owner, constants.EntityCylinder, constants.ActionCreated, cylinder.ID)

	return cylinder, nil
}

// UpdateCylinder merges input into the stored cylinder. A code collision is
// reported by the store as a duplicate.
func (srv *cylinderService) UpdateCylinder(ctx context.Context, owner uuid.UUID, id int64, input *usecase.UpdateCylinderInput) (*entity.Cylinder, error) {
	cylinder, err := srv.cylinderRepo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if err := applyCylinderPatch(cylinder, input); err != nil {
		return nil, err
	}

	if err := srv.cylinderRepo.Update(ctx, owner, cylinder); err != nil {
		return nil, errors.Wrap(err, "failed to update cylinder")
	}

	srv.events.emit(ctx, owner, constants.EntityCylinder, constants.ActionUpdated, cylinder.ID)

	return cylinder, nil
}

func applyCylinderPatch(cylinder *entity.Cylinder, input *usecase.UpdateCylinderInput) error {
	if input.Code != nil {
		code := strings.TrimSpace(*input.Code)
		if code == "" {
			return domainerrors.ErrValidationFailed.WithDetails("código não pode ser vazio")
		}
		cylinder.Code = code
	}

	if input.PurchaseDate != nil {
		if input.PurchaseDate.IsZero() {
			return domainerrors.ErrValidationFailed.WithDetails("data de compra inválida")
		}
		cylinder.PurchaseDate = *input.PurchaseDate
	}

	if input.GasKg != nil {
		if *input.GasKg < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("gás (kg) não pode ser negativo")
		}
		cylinder.SetGasKg(*input.GasKg)
	}

	if input.Cost != nil {
		if *input.Cost < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("custo não pode ser negativo")
		}
		cylinder.Cost = *input.Cost
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("status inválido: %s", *input.Status))
		}
		cylinder.Status = *input.Status
	}

	return nil
}

// DeleteCylinder removes the cylinder unless a sample or flame time still references it.
func (srv *cylinderService) DeleteCylinder(ctx context.Context, owner uuid.UUID, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.CylinderRepo().Get(ctx, owner, id); err != nil {
			return err
		}

		if err := ensureNoDependents(ctx, repoFactory, owner, func(counter repository.ReferenceCounter) (int64, error) {
			return counter.CountByCylinder(ctx, owner, id)
		}); err != nil {
			return err
		}

		return repoFactory.CylinderRepo().Delete(ctx, owner, id)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete cylinder")
	}

	srv.events.emit(ctx, owner, constants.EntityCylinder, constants.ActionDeleted, id)

	return nil
}

// CylinderLabel renders the QR label of a cylinder.
func (srv *cylinderService) CylinderLabel(ctx context.Context, owner uuid.UUID, id int64) ([]byte, error) {
	cylinder, err := srv.cylinderRepo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateCylinderLabel(cylinder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render cylinder label")
	}

	return png, nil
}

// ensureNoDependents fails with ErrHasDependents when samples or flame times
// counted by count exist.
func ensureNoDependents(ctx context.Context, repoFactory repository.RepositoryFactory, owner uuid.UUID, count func(repository.ReferenceCounter) (int64, error)) error {
	samples, err := count(repoFactory.SampleRepo())
	if err != nil {
		return err
	}

	flameTimes, err := count(repoFactory.FlameTimeRepo())
	if err != nil {
		return err
	}

	if samples+flameTimes > 0 {
		return domainerrors.ErrHasDependents.WithDetails(
			fmt.Sprintf("%d amostra(s) e %d registro(s) de tempo de chama vinculados", samples, flameTimes),
		)
	}

	return nil
}
