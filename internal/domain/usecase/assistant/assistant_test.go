package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuberai/gold-service/internal/domain/entity"
	errs "github.com/kuberai/gold-service/internal/domain/error"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
func (nopLogger) Flush() error                 { return nil }

// fakeUserRepo serves a single known user
type fakeUserRepo struct {
	user *entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, userID uint64) (*entity.User, error) {
	if f.user == nil || f.user.ID != userID {
		return nil, errs.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepo) ExecutePurchase(ctx context.Context, purchase *entity.Purchase) (*entity.User, error) {
	return nil, errs.ErrInternalServer
}

func knownUser() *entity.User {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return entity.RestoreUser(1, "Asha", 10000, 0, now, now)
}

func TestAsk(t *testing.T) {
	ctx := context.Background()
	service := NewService(&fakeUserRepo{user: knownUser()}, nopLogger{})

	t.Run("Gold query gets facts, nudge and next step", func(t *testing.T) {
		reply, err := service.Ask(ctx, 1, "Should I buy gold?")

		require.NoError(t, err)
		assert.True(t, reply.IsGoldQuery)
		assert.Equal(t, cannedFacts, reply.Response)
		assert.Equal(t, cannedNudge, reply.Nudge)
		assert.Equal(t, purchasePath, reply.NextStep)
	})

	t.Run("Off-topic query gets the redirect", func(t *testing.T) {
		reply, err := service.Ask(ctx, 1, "What's the weather?")

		require.NoError(t, err)
		assert.False(t, reply.IsGoldQuery)
		assert.Equal(t, redirectMessage, reply.Response)
		assert.Empty(t, reply.Nudge)
		assert.Empty(t, reply.NextStep)
	})

	t.Run("Unknown user is rejected before classification", func(t *testing.T) {
		reply, err := service.Ask(ctx, 99, "Should I buy gold?")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, reply)
	})

	t.Run("Zero user ID is rejected", func(t *testing.T) {
		reply, err := service.Ask(ctx, 0, "Should I buy gold?")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, reply)
	})
}
