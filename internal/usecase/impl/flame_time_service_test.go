package impl

import (
	"context"
	"testing"

	"labgas/internal/domain/constants"
	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"
	mockRepo "labgas/internal/mocks/repository"
	mockSvc "labgas/internal/mocks/service"
	"labgas/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type flameTimeServiceFixtures struct {
	service       usecase.FlameTimeUsecase
	flameTimeRepo *mockRepo.MockFlameTimeRepository
	cylinderRepo  *mockRepo.MockCylinderRepository
	elementRepo   *mockRepo.MockElementRepository
	publisher     *mockSvc.MockEventPublisher
}

func createTestFlameTimeService(t *testing.T) flameTimeServiceFixtures {
	flameTimeRepo := mockRepo.NewMockFlameTimeRepository(t)
	cylinderRepo := mockRepo.NewMockCylinderRepository(t)
	elementRepo := mockRepo.NewMockElementRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return flameTimeServiceFixtures{
		service: NewFlameTimeService(FlameTimeServiceParams{
			FlameTimeRepo: flameTimeRepo,
			CylinderRepo:  cylinderRepo,
			ElementRepo:   elementRepo,
			Publisher:     publisher,
			Logger:        newDiscardLogger(),
		}),
		flameTimeRepo: flameTimeRepo,
		cylinderRepo:  cylinderRepo,
		elementRepo:   elementRepo,
		publisher:     publisher,
	}
}

func TestFlameTimeService_CreateFlameTime_ComputesConsumption(t *testing.T) {
	fx := createTestFlameTimeService(t)
	ctx := context.Background()
	owner := uuid.New()
	element := &entity.Element{ID: 2, Name: "Cobre", ConsumptionLPM: 1.5}

	fx.elementRepo.EXPECT().Get(ctx, owner, int64(2)).Return(element, nil).Twice()
	fx.flameTimeRepo.EXPECT().
		Insert(ctx, owner, mock.AnythingOfType("*entity.FlameTimeRecord")).
		Run(func(_ context.Context, _ uuid.UUID, r *entity.FlameTimeRecord) { r.ID = 40 }).
		Return(nil)
	fx.publisher.EXPECT().PublishRecordEvent(ctx, recordEvent(constants.EntityFlameTime, constants.ActionCreated, 40)).Return(nil)

	view, err := fx.service.CreateFlameTime(ctx, owner, &usecase.CreateFlameTimeInput{
		Hours:     ptr(0),
		Minutes:   ptr(2),
		Seconds:   ptr(0),
		ElementID: ptr(int64(2)),
	})
	require.NoError(t, err)
	assert.Equal(t, 120, view.TotalSeconds)
	assert.InDelta(t, 3.0, view.ConsumptionLiters, 1e-9)
	assert.Equal(t, "Cobre", view.ElementName)
}

func TestFlameTimeService_CreateFlameTime_ZeroDurationIsAccepted(t *testing.T) {
	fx := createTestFlameTimeService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.flameTimeRepo.EXPECT().Insert(ctx, owner, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishRecordEvent(ctx, mock.Anything).Return(nil)

	view, err := fx.service.CreateFlameTime(ctx, owner, &usecase.CreateFlameTimeInput{Hours: ptr(0), Minutes: ptr(0), Seconds: ptr(0)})
	require.NoError(t, err)
	assert.Zero(t, view.TotalSeconds)
	assert.Zero(t, view.ConsumptionLiters)
}

func TestFlameTimeService_CreateFlameTime_Validation(t *testing.T) {
	fx := createTestFlameTimeService(t)
	owner := uuid.New()

	tests := []struct {
		name  string
		input *usecase.CreateFlameTimeInput
	}{
		{"missing minutes", &usecase.CreateFlameTimeInput{Hours: ptr(1), Seconds: ptr(0)}},
		{"missing all", &usecase.CreateFlameTimeInput{}},
		{"negative seconds", &usecase.CreateFlameTimeInput{Hours: ptr(0), Minutes: ptr(1), Seconds: ptr(-5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.CreateFlameTime(context.Background(), owner, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestFlameTimeService_CreateFlameTime_ForeignElement(t *testing.T) {
	fx := createTestFlameTimeService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.elementRepo.EXPECT().Get(ctx, owner, int64(5)).Return(nil, domainerrors.ErrElementNotFound)

	_, err := fx.service.CreateFlameTime(ctx, owner, &usecase.CreateFlameTimeInput{
		Hours: ptr(0), Minutes: ptr(1), Seconds: ptr(0), ElementID: ptr(int64(5)),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
}

func TestFlameTimeService_ListFlameTimes_UsesCurrentRate(t *testing.T) {
	fx := createTestFlameTimeService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.flameTimeRepo.EXPECT().List(ctx, owner).Return([]*entity.FlameTimeRecord{
		{ID: 1, Hours: 1, ElementID: ptr(int64(2))},
	}, nil)
	fx.cylinderRepo.EXPECT().List(ctx, owner).Return(nil, nil)
	fx.elementRepo.EXPECT().List(ctx, owner).Return([]*entity.Element{{ID: 2, Name: "Ferro", ConsumptionLPM: 2}}, nil)

	views, err := fx.service.ListFlameTimes(ctx, owner)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 3600, views[0].TotalSeconds)
	assert.InDelta(t, 120.0, views[0].ConsumptionLiters, 1e-9)
}

func TestFlameTimeService_Summary(t *testing.T) {
	fx := createTestFlameTimeService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.flameTimeRepo.EXPECT().List(ctx, owner).Return([]*entity.FlameTimeRecord{
		{ID: 1, Minutes: 2, ElementID: ptr(int64(2)), CylinderID: ptr(int64(7))},
		{ID: 2, Minutes: 4, ElementID: ptr(int64(2))},
		{ID: 3, Minutes: 1, ElementID: ptr(int64(99))},
		{ID: 4, Seconds: 30},
	}, nil)
	fx.cylinderRepo.EXPECT().List(ctx, owner).Return([]*entity.Cylinder{{ID: 7, Code: "CIL-007"}}, nil)
	fx.elementRepo.EXPECT().List(ctx, owner).Return([]*entity.Element{{ID: 2, Name: "Cobre", ConsumptionLPM: 1.5}}, nil)

	summary, err := fx.service.Summary(ctx, owner)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.RecordCount)
	assert.Equal(t, 450, summary.TotalSeconds)
	assert.InDelta(t, 9.0, summary.TotalLiters, 1e-9)
	assert.InDelta(t, 9.0/entity.LitersPerKilogram, summary.TotalKilograms, 1e-12)
	assert.InDelta(t, 9.0, summary.LitersByElement["Cobre"], 1e-9)
	assert.Zero(t, summary.LitersByElement[unassignedElementLabel])
	assert.Contains(t, summary.LitersByElement, unassignedElementLabel)
	assert.InDelta(t, 3.0, summary.LitersByCylinder["CIL-007"], 1e-9)
	assert.InDelta(t, 6.0, summary.LitersByCylinder[unassignedCylinderLabel], 1e-9)
}

func TestFlameTimeService_Summary_Empty(t *testing.T) {
	fx := createTestFlameTimeService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.flameTimeRepo.EXPECT().List(ctx, owner).Return(nil, nil)
	fx.cylinderRepo.EXPECT().List(ctx, owner).Return(nil, nil)
	fx.elementRepo.EXPECT().List(ctx, owner).Return(nil, nil)

	summary, err := fx.service.Summary(ctx, owner)
	require.NoError(t, err)
	assert.Zero(t, summary.RecordCount)
	assert.Zero(t, summary.TotalLiters)
	assert.Empty(t, summary.LitersByElement)
	assert.Empty(t, summary.LitersByCylinder)
}

func TestFlameTimeService_DeleteFlameTime(t *testing.T) {
	fx := createTestFlameTimeService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.flameTimeRepo.EXPECT().Delete(ctx, owner, int64(9)).Return(nil)
	fx.publisher.EXPECT().PublishRecordEvent(ctx, recordEvent(constants.EntityFlameTime, constants.ActionDeleted, 9)).Return(nil)

	require.NoError(t, fx.service.DeleteFlameTime(ctx, owner, 9))
}

func TestFlameTimeService_CreateFlameTime_NinetySecondsOfCopper(t *testing.T) {
	fx := createTestFlameTimeService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.elementRepo.EXPECT().Get(ctx, owner, int64(2)).Return(&entity.Element{ID: 2, Name: "Cobre", ConsumptionLPM: 1.5}, nil)
	fx.flameTimeRepo.EXPECT().
		Insert(ctx, owner, mock.MatchedBy(func(r *entity.FlameTimeRecord) bool {
			return r.Hours == 0 && r.Minutes == 1 && r.Seconds == 30
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishRecordEvent(ctx, mock.Anything).Return(nil)

	view, err := fx.service.CreateFlameTime(ctx, owner, &usecase.CreateFlameTimeInput{
		Hours:     ptr(0),
		Minutes:   ptr(1),
		Seconds:   ptr(30),
		ElementID: ptr(int64(2)),
	})
	require.NoError(t, err)
	assert.Equal(t, 90, view.TotalSeconds)
	assert.InDelta(t, 2.25, view.ConsumptionLiters, 1e-9)
}

func TestFlameTimeService_DeleteFlameTime_NotFound(t *testing.T) {
	fx := createTestFlameTimeService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.flameTimeRepo.EXPECT().Delete(ctx, owner, int64(404)).Return(domainerrors.ErrFlameTimeNotFound)

	err := fx.service.DeleteFlameTime(ctx, owner, 404)
	assert.ErrorIs(t, err, domainerrors.ErrFlameTimeNotFound)
}
