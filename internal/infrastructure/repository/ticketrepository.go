package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dbug/internal/domain/ticket"
	"dbug/internal/infrastructure/persistence/mappers"
	"dbug/internal/infrastructure/persistence/models"
)

type TicketRepository struct {
	db        *gorm.DB
	mapper    mappers.TicketMapper
	formatter ticket.NumberFormatter
}

func NewTicketRepository(db *gorm.DB, formatter ticket.NumberFormatter) *TicketRepository {
	return &TicketRepository{
		db:        db,
		mapper:    mappers.NewTicketMapper(),
		formatter: formatter,
	}
}

// Create inserts the ticket with the placeholder number, derives the
// display number from the auto-assigned ID, and patches the row. Both
// writes run in one transaction so the placeholder never escapes.
func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to insert ticket: %w", err)
		}

		number := r.formatter.Format(model.AutoID)
		err := tx.Model(&models.TicketModel{}).
			Where("auto_id = ?", model.AutoID).
			Update("ticket_id", number).Error
		if err != nil {
			return fmt.Errorf("failed to assign ticket number: %w", err)
		}

		model.TicketID = number
		return nil
	})
	if err != nil {
		return err
	}

	if err := t.SetID(model.AutoID); err != nil {
		return err
	}
	return t.SetNumber(model.TicketID)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", number).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
