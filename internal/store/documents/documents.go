// Package documents implements the remote expense store on top of gorm.
package documents

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/store"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Store keeps expense documents in the expenses table.
type Store struct {
	db *gorm.DB
}

var _ store.Remote = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListByOwner(ctx context.Context, owner string) ([]models.Expense, error) {
	var expenses []models.Expense

	err := s.db.WithContext(ctx).
		Where(&models.Expense{UserID: owner}).
		Order("rowid").
		Find(&expenses).Error
	if err != nil {
		log.Error().Err(err).Str("owner", owner).Msg("listing expenses")
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	return expenses, nil
}

func (s *Store) Create(ctx context.Context, e models.Expense) error {
	err := s.db.WithContext(ctx).Create(&e).Error
	if err != nil {
		log.Error().Err(err).Str("id", string(e.ID)).Msg("adding expense")
		return fmt.Errorf("adding expense: %w", err)
	}

	return nil
}

func (s *Store) Update(ctx context.Context, owner string, id models.ExpenseID, fields store.Fields) error {
	tx := s.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", id, owner).
		Updates(map[string]any{
			"name":     fields.Name,
			"category": fields.Category,
			"amount":   fields.Amount,
		})

	if tx.Error != nil {
		log.Error().Err(tx.Error).Str("id", string(id)).Msg("updating expense")
		return fmt.Errorf("updating expense: %w", tx.Error)
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w expense with id %s", models.ErrResourceNotFound, id)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, owner string, id models.ExpenseID) error {
	tx := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, owner).
		Delete(&models.Expense{})

	if tx.Error != nil {
		log.Error().Err(tx.Error).Str("id", string(id)).Msg("deleting expense")
		return fmt.Errorf("deleting expense: %w", tx.Error)
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w expense with id %s", models.ErrResourceNotFound, id)
	}

	return nil
}
