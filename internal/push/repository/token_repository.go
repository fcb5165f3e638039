package repository

import (
	"context"
	"fmt"

	pushdomain "howler-relay/internal/push/domain"

	"gorm.io/gorm"
)

// TokenRepository reads and deletes device tokens. Tokens are created by the
// client app's registration flow, never here.
type TokenRepository interface {
	TokensForUsers(ctx context.Context, userIDs []int64) ([]pushdomain.DeviceToken, error)
	DeleteToken(ctx context.Context, id string) error
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) TokensForUsers(ctx context.Context, userIDs []int64) ([]pushdomain.DeviceToken, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var tokens []pushdomain.DeviceToken
	err := r.db.WithContext(ctx).Where("userId IN ?", userIDs).Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("select tokens for %d users: %w", len(userIDs), err)
	}
	return tokens, nil
}

// DeleteToken removes a device token. Deleting a token that is already gone
// is a no-op, not an error; concurrent passes may race on the same token.
func (r *tokenRepository) DeleteToken(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Delete(&pushdomain.DeviceToken{}, "id = ?", id).Error
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
