package user

import (
	"context"

	"github.com/kuberai/gold-service/internal/domain/entity"
)

// CreateUser creates a new user with the given name and initial deposit in paise.
// The deposit may be zero; the generated ID is set on the returned entity.
func (u *UserUseCase) CreateUser(ctx context.Context, name string, initialDepositPaise int64) (*entity.User, error) {
	user, err := entity.NewUser(name, initialDepositPaise, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"name":  name,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId":         user.ID,
		"name":           user.Name,
		"initialBalance": entity.FormatINR(user.BalancePaise()),
	})

	return user, nil
}
