package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dbug/internal/domain/verification"
	"dbug/internal/infrastructure/persistence/mappers"
	"dbug/internal/infrastructure/persistence/models"
)

// OTPRepository keeps at most one live code per email. Concurrent
// upserts for the same email race with last write wins, which is
// acceptable since only one code should be valid at a time.
type OTPRepository struct {
	db     *gorm.DB
	mapper mappers.OTPMapper
}

func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{
		db:     db,
		mapper: mappers.NewOTPMapper(),
	}
}

func (r *OTPRepository) Upsert(ctx context.Context, otp *verification.OTP) error {
	model := r.mapper.ToModel(otp)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_input"}},
			DoUpdates: clause.AssignmentColumns([]string{"otp", "expiry_time"}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert otp: %w", err)
	}

	return nil
}

func (r *OTPRepository) GetByEmail(ctx context.Context, email string) (*verification.OTP, error) {
	var model models.OTPModel
	err := r.db.WithContext(ctx).
		Where("user_input = ?", email).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, verification.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find otp: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
