package dto

import (
	"github.com/kuberai/gold-service/internal/domain/entity"
)

// CreateUserRequest represents the API request for creating a user
type CreateUserRequest struct {
	Name           string  `json:"name" binding:"required"`
	InitialDeposit float64 `json:"initial_deposit"`
}

// CreateUserResponse represents the API response after creating a user
type CreateUserResponse struct {
	Status  string  `json:"status"`
	UserID  uint64  `json:"user_id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// UserResponse represents an account snapshot in API responses
type UserResponse struct {
	UserID    uint64  `json:"user_id"`
	Name      string  `json:"name"`
	Balance   float64 `json:"balance"`
	GoldGrams float64 `json:"gold_grams"`
}

// ProfileResponse represents the API response for a user profile with its ledger
type ProfileResponse struct {
	User      UserResponse       `json:"user"`
	Purchases []PurchaseResponse `json:"purchases"`
}

// NewUserResponse maps a user entity to its API representation
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Balance:   user.BalanceINR(),
		GoldGrams: user.GoldGrams(),
	}
}
