package user

import (
	"context"
	"fmt"

	"invoicely/models"
	"invoicely/utils"

	"go.uber.org/zap"
)

// GetProfile returns the account's profile.
func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if usr == nil {
		return nil, AuthError{Reason: "account no longer exists"}
	}
	return usr, nil
}

// UpdateProfile updates non-empty profile fields using a partial update.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*models.User, error) {
	logger := utils.GetLogger()

	updateFields := map[string]any{}
	if in.Name != "" {
		updateFields["name"] = in.Name
	}
	if in.BusinessName != "" {
		updateFields["businessName"] = in.BusinessName
	}
	if in.Address != "" {
		updateFields["address"] = in.Address
	}
	if in.Phone != "" {
		updateFields["phone"] = in.Phone
	}

	if len(updateFields) == 0 {
		logger.Warn("No updatable fields provided", zap.String("userID", userID))
		return nil, fmt.Errorf("no updatable fields provided")
	}

	updated, err := s.Repo.UpdateProfile(ctx, userID, updateFields)
	if err != nil {
		logger.Error("Failed to update profile", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if updated == nil {
		return nil, AuthError{Reason: "account no longer exists"}
	}
	return updated, nil
}
