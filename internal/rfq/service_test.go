package rfq

import (
	"context"
	"errors"
	"testing"

	"buildmart-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, r *RFQ) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, limit int) ([]RFQ, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RFQ), args.Error(1)
}

func buyerCtx() context.Context {
	return utils.SetUserContext(context.Background(), 7, "buyer@example.com", utils.RoleBuyer)
}

func TestService_Create(t *testing.T) {
	t.Run("ScoresAndPersists", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(r *RFQ) bool {
			return r.UserID == 7 && r.Category == CategoryConcrete && r.Score > 0
		})).Return(nil)

		svc := NewService(repo)
		r, err := svc.Create(buyerCtx(), CreateInput{Description: "urgent concrete delivery", Budget: decPtr("2000")})

		require.NoError(t, err)
		assert.Equal(t, CategoryConcrete, r.Category)
		assert.Equal(t, 55, r.Score)
		repo.AssertExpectations(t)
	})

	t.Run("EmptyDescriptionRejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(buyerCtx(), CreateInput{Description: "   "})
		assert.ErrorIs(t, err, ErrEmptyDescription)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("AnonymousRejected", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(context.Background(), CreateInput{Description: "cement"})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("RepoErrorPropagates", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

		svc := NewService(repo)
		_, err := svc.Create(buyerCtx(), CreateInput{Description: "cement"})
		assert.Error(t, err)
	})
}

func TestService_List(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, defaultListLimit).Return([]RFQ{{ID: 1, Score: 80}, {ID: 2, Score: 40}}, nil)

	svc := NewService(repo)
	out, err := svc.List(buyerCtx())

	require.NoError(t, err)
	assert.Len(t, out, 2)
	repo.AssertExpectations(t)
}
