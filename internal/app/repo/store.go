package repo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/moonvest/investd/internal/models"
	"github.com/moonvest/investd/pkg/types"
)

// Store is the document-store façade over postgres. All reads and mutations
// the services perform go through here; balance mutations are expressed as
// atomic column updates so concurrent credits and debits cannot lose writes.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// --- users ---

func (s *Store) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUser creates or refreshes a user profile, keeping an existing balance
// untouched.
func (s *Store) UpsertUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "first_name", "last_name", "updated_at"}),
	}).Create(user).Error
}

// CreditUserBalance adds amount to the user's balance as a single atomic
// update.
func (s *Store) CreditUserBalance(ctx context.Context, userID string, amount float64) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumns(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", amount),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to credit balance: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DebitUserBalance subtracts amount only while the balance covers it,
// reporting whether the debit was applied. The guard runs inside the update
// so a concurrent earnings credit cannot be lost and the balance can never go
// negative.
func (s *Store) DebitUserBalance(ctx context.Context, userID string, amount float64) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		UpdateColumns(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, fmt.Errorf("failed to debit balance: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// --- subscriptions ---

func (s *Store) CreateSubscription(ctx context.Context, sub *models.Subscription) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *Store) GetSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *Store) QuerySubscriptionsByUser(ctx context.Context, userID string) ([]*models.Subscription, error) {
	var subs []*models.Subscription
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// SettleSubscriptionEarnings posts earnings with a compare-and-swap on
// last_earnings_update: the update only lands while the posting instant still
// equals prevUpdate, so two same-day reads settle at most once.
func (s *Store) SettleSubscriptionEarnings(ctx context.Context, subscriptionID string, totalEarned float64, prevUpdate, now time.Time) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("id = ? AND last_earnings_update = ?", subscriptionID, prevUpdate).
		UpdateColumns(map[string]interface{}{
			"total_earned":         totalEarned,
			"last_earnings_update": now,
			"updated_at":           time.Now(),
		})
	if res.Error != nil {
		return false, fmt.Errorf("failed to settle earnings: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// UpdateSubscriptionStatus is idempotent; re-applying the current status is a
// no-op.
func (s *Store) UpdateSubscriptionStatus(ctx context.Context, subscriptionID string, status types.SubscriptionStatus) error {
	return s.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("id = ? AND status <> ?", subscriptionID, status).
		UpdateColumn("status", status).Error
}

// --- deposits & withdrawals ---

func (s *Store) CreateDeposit(ctx context.Context, d *models.Deposit) error {
	return s.db.WithContext(ctx).Create(d).Error
}

func (s *Store) ListDepositsByUser(ctx context.Context, userID string) ([]*models.Deposit, error) {
	var items []*models.Deposit
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreateWithdrawal(ctx context.Context, w *models.Withdrawal) error {
	return s.db.WithContext(ctx).Create(w).Error
}

func (s *Store) ListWithdrawalsByUser(ctx context.Context, userID string) ([]*models.Withdrawal, error) {
	var items []*models.Withdrawal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- networks ---

func (s *Store) ListActiveNetworks(ctx context.Context) ([]*models.Network, error) {
	var items []*models.Network
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("type asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
