package purchase

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

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time {
	return c.now
}

// fakeStore backs both repository ports so ExecutePurchase can mimic the real
// adapter: debit the balance, credit the gold and append to the ledger in one
// step, or fail without touching either.
type fakeStore struct {
	users     map[uint64]*entity.User
	ledger    []*entity.Purchase
	nextRowID uint64
	clock     *stubClock
}

func newFakeStore(clock *stubClock) *fakeStore {
	return &fakeStore{users: map[uint64]*entity.User{}, nextRowID: 1, clock: clock}
}

func (f *fakeStore) addUser(name string, balancePaise int64) *entity.User {
	user := entity.RestoreUser(uint64(len(f.users)+1), name, balancePaise, 0, f.clock.Now(), f.clock.Now())
	f.users[user.ID] = user
	return user
}

func (f *fakeStore) Create(ctx context.Context, user *entity.User) error {
	return errs.ErrInternalServer
}

func (f *fakeStore) GetByID(ctx context.Context, userID uint64) (*entity.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeStore) ExecutePurchase(ctx context.Context, purchase *entity.Purchase) (*entity.User, error) {
	user, ok := f.users[purchase.UserID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	if user.BalancePaise() < purchase.AmountPaise {
		return nil, errs.NewInsufficientBalanceError(
			purchase.UserID,
			entity.FormatINR(purchase.AmountPaise),
			entity.FormatINR(user.BalancePaise()),
		)
	}
	updated := entity.RestoreUser(
		user.ID, user.Name,
		user.BalancePaise()-purchase.AmountPaise,
		user.GoldMicrograms()+purchase.Micrograms,
		user.CreatedAt, f.clock.Now(),
	)
	f.users[user.ID] = updated
	purchase.ID = f.nextRowID
	f.nextRowID++
	f.ledger = append(f.ledger, purchase)
	return updated, nil
}

func (f *fakeStore) ListByUser(ctx context.Context, userID uint64) ([]*entity.Purchase, error) {
	var result []*entity.Purchase
	for i := len(f.ledger) - 1; i >= 0; i-- {
		if f.ledger[i].UserID == userID {
			result = append(result, f.ledger[i])
		}
	}
	return result, nil
}

// 6000 INR per gram, expressed in paise
const ratePaisePerGram = int64(600000)

func TestPurchaseGold(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Deducts cash and credits gold at the rate", func(t *testing.T) {
		clock := &stubClock{now: fixedTime}
		store := newFakeStore(clock)
		user := store.addUser("Asha", 10000) // ₹100
		service := NewService(store, store, ratePaisePerGram, clock, nopLogger{})

		result, err := service.PurchaseGold(ctx, user.ID, 6000) // ₹60

		require.NoError(t, err)
		assert.Equal(t, int64(10000), result.Purchase.Micrograms) // 0.01 g
		assert.Equal(t, int64(4000), result.User.BalancePaise())  // ₹40 left
		assert.Equal(t, int64(10000), result.User.GoldMicrograms())
		require.Len(t, result.Purchases, 1)
		assert.Equal(t, result.Purchase.Reference, result.Purchases[0].Reference)
	})

	t.Run("Second purchase over the remaining balance is rejected", func(t *testing.T) {
		clock := &stubClock{now: fixedTime}
		store := newFakeStore(clock)
		user := store.addUser("Asha", 10000)
		service := NewService(store, store, ratePaisePerGram, clock, nopLogger{})

		_, err := service.PurchaseGold(ctx, user.ID, 6000)
		require.NoError(t, err)

		result, err := service.PurchaseGold(ctx, user.ID, 6000)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Contains(t, err.Error(), "Available: 40")
		assert.Nil(t, result)
		// The failed attempt must not touch balance or ledger
		assert.Equal(t, int64(4000), store.users[user.ID].BalancePaise())
		assert.Len(t, store.ledger, 1)
	})

	t.Run("Ledger is returned newest first", func(t *testing.T) {
		clock := &stubClock{now: fixedTime}
		store := newFakeStore(clock)
		user := store.addUser("Asha", 10000)
		service := NewService(store, store, ratePaisePerGram, clock, nopLogger{})

		_, err := service.PurchaseGold(ctx, user.ID, 1000)
		require.NoError(t, err)
		result, err := service.PurchaseGold(ctx, user.ID, 2000)
		require.NoError(t, err)

		require.Len(t, result.Purchases, 2)
		assert.Equal(t, int64(2000), result.Purchases[0].AmountPaise)
		assert.Equal(t, int64(1000), result.Purchases[1].AmountPaise)
	})

	t.Run("Unknown user leaves the ledger untouched", func(t *testing.T) {
		clock := &stubClock{now: fixedTime}
		store := newFakeStore(clock)
		service := NewService(store, store, ratePaisePerGram, clock, nopLogger{})

		result, err := service.PurchaseGold(ctx, 42, 6000)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, result)
		assert.Empty(t, store.ledger)
	})

	t.Run("Non-positive amounts are rejected before any repository call", func(t *testing.T) {
		clock := &stubClock{now: fixedTime}
		store := newFakeStore(clock)
		user := store.addUser("Asha", 10000)
		service := NewService(store, store, ratePaisePerGram, clock, nopLogger{})

		for _, amount := range []int64{0, -100} {
			result, err := service.PurchaseGold(ctx, user.ID, amount)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			assert.Nil(t, result)
		}
		assert.Equal(t, int64(10000), store.users[user.ID].BalancePaise())
		assert.Empty(t, store.ledger)
	})

	t.Run("Zero user ID is rejected", func(t *testing.T) {
		clock := &stubClock{now: fixedTime}
		store := newFakeStore(clock)
		service := NewService(store, store, ratePaisePerGram, clock, nopLogger{})

		result, err := service.PurchaseGold(ctx, 0, 6000)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, result)
	})

	t.Run("Exact balance spends down to zero", func(t *testing.T) {
		clock := &stubClock{now: fixedTime}
		store := newFakeStore(clock)
		user := store.addUser("Asha", 6000)
		service := NewService(store, store, ratePaisePerGram, clock, nopLogger{})

		result, err := service.PurchaseGold(ctx, user.ID, 6000)

		require.NoError(t, err)
		assert.Equal(t, int64(0), result.User.BalancePaise())
		assert.Equal(t, int64(10000), result.User.GoldMicrograms())
	})
}
