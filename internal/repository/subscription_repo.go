package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/snowpeak/skistation/internal/models"
)

type SubscriptionRepo struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

func (r *SubscriptionRepo) FindByID(ctx context.Context, id uint) (*models.Subscription, error) {
	var s models.Subscription
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find subscription %d: %w", id, err)
	}
	return &s, nil
}

func (r *SubscriptionRepo) FindAll(ctx context.Context) ([]models.Subscription, error) {
	out := []models.Subscription{}
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return out, nil
}

func (r *SubscriptionRepo) Save(ctx context.Context, s *models.Subscription) error {
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return fmt.Errorf("save subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepo) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Skier{}).Where("subscription_id = ?", id).
			Update("subscription_id", nil).Error; err != nil {
			return fmt.Errorf("detach skier: %w", err)
		}
		if err := tx.Delete(&models.Subscription{}, id).Error; err != nil {
			return fmt.Errorf("delete subscription %d: %w", id, err)
		}
		return nil
	})
}

func (r *SubscriptionRepo) FindByTypeOrderByStartDate(ctx context.Context, t models.TypeSubscription) ([]models.Subscription, error) {
	out := []models.Subscription{}
	if err := r.db.WithContext(ctx).
		Where(&models.Subscription{TypeSub: t}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "start_date"}}).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("subscriptions by type %s: %w", t, err)
	}
	return out, nil
}

// FindByStartDateBetween returns subscriptions starting within [from, to].
func (r *SubscriptionRepo) FindByStartDateBetween(ctx context.Context, from, to models.Date) ([]models.Subscription, error) {
	out := []models.Subscription{}
	if err := r.db.WithContext(ctx).
		Where("start_date BETWEEN ? AND ?", from, to).
		Order("start_date, id").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("subscriptions between %s and %s: %w", from, to, err)
	}
	return out, nil
}

// FindAllOrderByEndDate lists every subscription, earliest end date first.
// Subscriptions without an end date come last.
func (r *SubscriptionRepo) FindAllOrderByEndDate(ctx context.Context) ([]models.Subscription, error) {
	out := []models.Subscription{}
	if err := r.db.WithContext(ctx).
		Order("end_date IS NULL").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "end_date"}}).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("subscriptions by end date: %w", err)
	}
	return out, nil
}

// RevenueByType sums subscription prices per type in one GROUP BY.
func (r *SubscriptionRepo) RevenueByType(ctx context.Context) (map[models.TypeSubscription]float64, error) {
	type agg struct {
		TypeSub models.TypeSubscription
		Total   float64
	}
	var rows []agg
	if err := r.db.WithContext(ctx).Model(&models.Subscription{}).
		Select("type_sub, COALESCE(SUM(price), 0) AS total").
		Group("type_sub").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("revenue by type: %w", err)
	}
	out := make(map[models.TypeSubscription]float64, len(rows))
	for _, row := range rows {
		out[row.TypeSub] = row.Total
	}
	return out, nil
}
