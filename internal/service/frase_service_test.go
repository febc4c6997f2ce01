package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "frases/internal/errors"
	"frases/internal/model"
	"frases/internal/notify"
)

// MockFraseRepository is a mock implementation of FraseRepository.
type MockFraseRepository struct {
	mock.Mock
}

func (m *MockFraseRepository) Create(ctx context.Context, frase *model.Frase) error {
	args := m.Called(ctx, frase)
	return args.Error(0)
}

func (m *MockFraseRepository) FindByID(ctx context.Context, id uint) (*model.Frase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Frase), args.Error(1)
}

func (m *MockFraseRepository) ListByAprobada(ctx context.Context, aprobada bool) ([]model.Frase, error) {
	args := m.Called(ctx, aprobada)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Frase), args.Error(1)
}

func (m *MockFraseRepository) ListAll(ctx context.Context) ([]model.Frase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Frase), args.Error(1)
}

func (m *MockFraseRepository) Update(ctx context.Context, frase *model.Frase) error {
	args := m.Called(ctx, frase)
	return args.Error(0)
}

func (m *MockFraseRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBroadcaster is a mock implementation of Broadcaster.
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(ev notify.Event) {
	m.Called(ev)
}

func TestFraseService_Create(t *testing.T) {
	autor := "Cervantes"

	tests := []struct {
		name          string
		texto         string
		autor         *string
		setupMock     func(*MockFraseRepository, *MockBroadcaster)
		expectedError error
	}{
		{
			name:  "successful submission",
			texto: "Hola",
			autor: &autor,
			setupMock: func(mRepo *MockFraseRepository, mHub *MockBroadcaster) {
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Frase")).Return(nil)
				mHub.On("Broadcast", notify.EventQuoteUpdated).Return()
			},
			expectedError: nil,
		},
		{
			name:  "submission without author",
			texto: "Hola",
			autor: nil,
			setupMock: func(mRepo *MockFraseRepository, mHub *MockBroadcaster) {
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Frase")).Return(nil)
				mHub.On("Broadcast", notify.EventQuoteUpdated).Return()
			},
			expectedError: nil,
		},
		{
			name:          "empty texto rejected",
			texto:         "",
			autor:         nil,
			setupMock:     func(mRepo *MockFraseRepository, mHub *MockBroadcaster) {},
			expectedError: apperrors.ErrEmptyTexto,
		},
		{
			name:          "whitespace texto rejected",
			texto:         "   ",
			autor:         nil,
			setupMock:     func(mRepo *MockFraseRepository, mHub *MockBroadcaster) {},
			expectedError: apperrors.ErrEmptyTexto,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockFraseRepository)
			mockHub := new(MockBroadcaster)
			tt.setupMock(mockRepo, mockHub)

			svc := NewFraseService(mockRepo, nil, mockHub)
			frase, err := svc.Create(context.Background(), tt.texto, tt.autor)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, frase)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, frase)
				assert.Equal(t, tt.texto, frase.Texto)
				assert.Equal(t, tt.autor, frase.Autor)
				assert.False(t, frase.Aprobada)
				assert.False(t, frase.Fijada)
			}

			mockRepo.AssertExpectations(t)
			mockHub.AssertExpectations(t)
		})
	}
}

func TestFraseService_Approve(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		setupMock     func(*MockFraseRepository, *MockBroadcaster)
		expectedError error
	}{
		{
			name: "approve pending frase",
			id:   1,
			setupMock: func(mRepo *MockFraseRepository, mHub *MockBroadcaster) {
				mRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Frase{ID: 1, Texto: "Hola"}, nil)
				mRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Frase")).Return(nil)
				mHub.On("Broadcast", notify.EventQuoteUpdated).Return()
			},
			expectedError: nil,
		},
		{
			name: "approve already approved frase is idempotent",
			id:   2,
			setupMock: func(mRepo *MockFraseRepository, mHub *MockBroadcaster) {
				mRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.Frase{ID: 2, Texto: "Hola", Aprobada: true}, nil)
				mRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Frase")).Return(nil)
				mHub.On("Broadcast", notify.EventQuoteUpdated).Return()
			},
			expectedError: nil,
		},
		{
			name: "frase not found",
			id:   99,
			setupMock: func(mRepo *MockFraseRepository, mHub *MockBroadcaster) {
				mRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrFraseNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockFraseRepository)
			mockHub := new(MockBroadcaster)
			tt.setupMock(mockRepo, mockHub)

			svc := NewFraseService(mockRepo, nil, mockHub)
			frase, err := svc.Approve(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, frase)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, frase)
				assert.True(t, frase.Aprobada)
			}

			mockRepo.AssertExpectations(t)
			mockHub.AssertExpectations(t)
		})
	}
}

func TestFraseService_SetPinned(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		fijada        bool
		setupMock     func(*MockFraseRepository, *MockBroadcaster)
		expectedError error
	}{
		{
			name:   "pin frase",
			id:     1,
			fijada: true,
			setupMock: func(mRepo *MockFraseRepository, mHub *MockBroadcaster) {
				mRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Frase{ID: 1, Texto: "Hola"}, nil)
				mRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Frase")).Return(nil)
				mHub.On("Broadcast", notify.EventQuoteUpdated).Return()
			},
		},
		{
			name:   "unpin frase",
			id:     1,
			fijada: false,
			setupMock: func(mRepo *MockFraseRepository, mHub *MockBroadcaster) {
				mRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Frase{ID: 1, Texto: "Hola", Fijada: true}, nil)
				mRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Frase")).Return(nil)
				mHub.On("Broadcast", notify.EventQuoteUpdated).Return()
			},
		},
		{
			name:   "frase not found",
			id:     99,
			fijada: true,
			setupMock: func(mRepo *MockFraseRepository, mHub *MockBroadcaster) {
				mRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrFraseNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockFraseRepository)
			mockHub := new(MockBroadcaster)
			tt.setupMock(mockRepo, mockHub)

			svc := NewFraseService(mockRepo, nil, mockHub)
			frase, err := svc.SetPinned(context.Background(), tt.id, tt.fijada)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, frase)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, frase)
				assert.Equal(t, tt.fijada, frase.Fijada)
			}

			mockRepo.AssertExpectations(t)
			mockHub.AssertExpectations(t)
		})
	}
}

func TestFraseService_Delete(t *testing.T) {
	t.Run("successful delete broadcasts", func(t *testing.T) {
		mockRepo := new(MockFraseRepository)
		mockHub := new(MockBroadcaster)
		mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil)
		mockHub.On("Broadcast", notify.EventQuoteUpdated).Return()

		svc := NewFraseService(mockRepo, nil, mockHub)
		err := svc.Delete(context.Background(), 1)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockHub.AssertExpectations(t)
	})

	t.Run("deleting a nonexistent frase returns not found", func(t *testing.T) {
		mockRepo := new(MockFraseRepository)
		mockHub := new(MockBroadcaster)
		mockRepo.On("Delete", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)

		svc := NewFraseService(mockRepo, nil, mockHub)
		err := svc.Delete(context.Background(), 99)

		assert.Equal(t, apperrors.ErrFraseNotFound, err)
		mockHub.AssertNotCalled(t, "Broadcast", mock.Anything)
	})
}

func TestFraseService_Listings(t *testing.T) {
	t.Run("pending lists unapproved", func(t *testing.T) {
		mockRepo := new(MockFraseRepository)
		mockRepo.On("ListByAprobada", mock.Anything, false).Return([]model.Frase{{ID: 1, Texto: "Hola"}}, nil)

		svc := NewFraseService(mockRepo, nil, nil)
		frases, err := svc.ListPending(context.Background())

		assert.NoError(t, err)
		assert.Len(t, frases, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("approved lists approved", func(t *testing.T) {
		mockRepo := new(MockFraseRepository)
		mockRepo.On("ListByAprobada", mock.Anything, true).Return([]model.Frase{{ID: 2, Texto: "Adios", Aprobada: true}}, nil)

		svc := NewFraseService(mockRepo, nil, nil)
		frases, err := svc.ListApproved(context.Background())

		assert.NoError(t, err)
		assert.Len(t, frases, 1)
		assert.True(t, frases[0].Aprobada)
		mockRepo.AssertExpectations(t)
	})

	t.Run("admin listing returns everything", func(t *testing.T) {
		mockRepo := new(MockFraseRepository)
		mockRepo.On("ListAll", mock.Anything).Return([]model.Frase{{ID: 2, Aprobada: true}, {ID: 1}}, nil)

		svc := NewFraseService(mockRepo, nil, nil)
		frases, err := svc.ListAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, frases, 2)
		mockRepo.AssertExpectations(t)
	})
}
