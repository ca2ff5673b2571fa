package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/snowpeak/skistation/internal/models"
)

type SkierRepo struct {
	db *gorm.DB
}

func NewSkierRepo(db *gorm.DB) *SkierRepo {
	return &SkierRepo{db: db}
}

func (r *SkierRepo) withGraph(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Subscription").
		Preload("Pistes", func(db *gorm.DB) *gorm.DB { return db.Order("pistes.id") }).
		Preload("Registrations", func(db *gorm.DB) *gorm.DB { return db.Order("registrations.num_week, registrations.id") }).
		Preload("Registrations.Course")
}

func (r *SkierRepo) FindByID(ctx context.Context, id uint) (*models.Skier, error) {
	var s models.Skier
	if err := r.withGraph(ctx).First(&s, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find skier %d: %w", id, err)
	}
	return &s, nil
}

func (r *SkierRepo) FindAll(ctx context.Context) ([]models.Skier, error) {
	out := []models.Skier{}
	if err := r.withGraph(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list skiers: %w", err)
	}
	return out, nil
}

// Save writes the skier row, its subscription and its piste links.
// Registrations are persisted by the registration store.
func (r *SkierRepo) Save(ctx context.Context, s *models.Skier) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.Subscription != nil {
			if err := tx.Save(s.Subscription).Error; err != nil {
				return fmt.Errorf("save subscription: %w", err)
			}
			s.SubscriptionID = &s.Subscription.ID
		} else {
			s.SubscriptionID = nil
		}

		if err := tx.Omit(clause.Associations).Save(s).Error; err != nil {
			return fmt.Errorf("save skier: %w", err)
		}

		pistes := tx.Model(s).Association("Pistes")
		var err error
		if len(s.Pistes) == 0 {
			err = pistes.Clear()
		} else {
			err = pistes.Replace(s.Pistes)
		}
		if err != nil {
			return fmt.Errorf("save skier pistes: %w", err)
		}
		return nil
	})
}

// DeleteByID removes the skier with its registrations, piste links and
// owned subscription. Deleting a missing id is not an error.
func (r *SkierRepo) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s models.Skier
		if err := tx.Select("id", "subscription_id").First(&s, id).Error; err != nil {
			if isNotFound(err) {
				return nil
			}
			return fmt.Errorf("find skier %d: %w", id, err)
		}
		if err := tx.Exec("DELETE FROM skier_pistes WHERE skier_id = ?", id).Error; err != nil {
			return fmt.Errorf("unlink pistes: %w", err)
		}
		if err := tx.Where("skier_id = ?", id).Delete(&models.Registration{}).Error; err != nil {
			return fmt.Errorf("delete registrations: %w", err)
		}
		if err := tx.Delete(&models.Skier{}, id).Error; err != nil {
			return fmt.Errorf("delete skier %d: %w", id, err)
		}
		if s.SubscriptionID != nil {
			if err := tx.Delete(&models.Subscription{}, *s.SubscriptionID).Error; err != nil {
				return fmt.Errorf("delete subscription: %w", err)
			}
		}
		return nil
	})
}

func (r *SkierRepo) FindBySubscriptionType(ctx context.Context, t models.TypeSubscription) ([]models.Skier, error) {
	subIDs := r.db.Model(&models.Subscription{}).Select("id").Where("type_sub = ?", t)

	out := []models.Skier{}
	if err := r.withGraph(ctx).
		Where("subscription_id IN (?)", subIDs).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("skiers by subscription type %s: %w", t, err)
	}
	return out, nil
}

func (r *SkierRepo) FindBySubscriptionID(ctx context.Context, subscriptionID uint) (*models.Skier, error) {
	var s models.Skier
	if err := r.db.WithContext(ctx).Where("subscription_id = ?", subscriptionID).First(&s).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("skier by subscription %d: %w", subscriptionID, err)
	}
	return &s, nil
}
