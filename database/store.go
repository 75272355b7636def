package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"signal-webhook/models"
)

// ErrStorage wraps every failure of the underlying database.
var ErrStorage = errors.New("storage failure")

// SignalStore is the only writer of the signals table.
type SignalStore struct {
	db *gorm.DB
}

func NewSignalStore(db *DB) *SignalStore {
	return &SignalStore{db: db.Gorm}
}

// Append inserts sig under the next unused id and returns the stored row.
// Any id already set on sig is ignored.
func (s *SignalStore) Append(ctx context.Context, sig models.Signal) (models.Signal, error) {
	sig.ID = 0
	if err := s.db.WithContext(ctx).Create(&sig).Error; err != nil {
		return models.Signal{}, fmt.Errorf("%w: insert signal: %w", ErrStorage, err)
	}
	return sig, nil
}

// ListAll returns every signal in ascending id order.
func (s *SignalStore) ListAll(ctx context.Context) ([]models.Signal, error) {
	signals := make([]models.Signal, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&signals).Error; err != nil {
		return nil, fmt.Errorf("%w: list signals: %w", ErrStorage, err)
	}
	return signals, nil
}

// ClearAll deletes every signal. The id sequence is left untouched.
func (s *SignalStore) ClearAll(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Signal{}).Error
	if err != nil {
		return fmt.Errorf("%w: clear signals: %w", ErrStorage, err)
	}
	return nil
}

// Stats counts stored signals per event inside one read transaction.
func (s *SignalStore) Stats(ctx context.Context) (models.SignalStats, error) {
	var stats models.SignalStats
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Signal{}).Count(&stats.Total).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Signal{}).Where("event = ?", models.EventBuy).Count(&stats.Buy).Error; err != nil {
			return err
		}
		return tx.Model(&models.Signal{}).Where("event = ?", models.EventSell).Count(&stats.Sell).Error
	})
	if err != nil {
		return models.SignalStats{}, fmt.Errorf("%w: count signals: %w", ErrStorage, err)
	}
	return stats, nil
}

func (s *SignalStore) Ping(ctx context.Context) error {
	sqldb, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping: %w", ErrStorage, err)
	}
	return nil
}
