package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/snowpeak/skistation/internal/models"
)

type PisteRepo struct {
	db *gorm.DB
}

func NewPisteRepo(db *gorm.DB) *PisteRepo {
	return &PisteRepo{db: db}
}

func (r *PisteRepo) FindByID(ctx context.Context, id uint) (*models.Piste, error) {
	var p models.Piste
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find piste %d: %w", id, err)
	}
	return &p, nil
}

func (r *PisteRepo) FindAll(ctx context.Context) ([]models.Piste, error) {
	out := []models.Piste{}
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list pistes: %w", err)
	}
	return out, nil
}

func (r *PisteRepo) Save(ctx context.Context, p *models.Piste) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("save piste: %w", err)
	}
	return nil
}

func (r *PisteRepo) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM skier_pistes WHERE piste_id = ?", id).Error; err != nil {
			return fmt.Errorf("unlink skiers: %w", err)
		}
		if err := tx.Delete(&models.Piste{}, id).Error; err != nil {
			return fmt.Errorf("delete piste %d: %w", id, err)
		}
		return nil
	})
}
