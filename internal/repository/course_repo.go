package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/snowpeak/skistation/internal/models"
)

type CourseRepo struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) *CourseRepo {
	return &CourseRepo{db: db}
}

func (r *CourseRepo) FindByID(ctx context.Context, id uint) (*models.Course, error) {
	var c models.Course
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find course %d: %w", id, err)
	}
	return &c, nil
}

func (r *CourseRepo) FindAll(ctx context.Context) ([]models.Course, error) {
	out := []models.Course{}
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return out, nil
}

func (r *CourseRepo) Save(ctx context.Context, c *models.Course) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error; err != nil {
		return fmt.Errorf("save course: %w", err)
	}
	return nil
}

// DeleteByID removes the course, its registrations and its instructor links.
func (r *CourseRepo) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM instructor_courses WHERE course_id = ?", id).Error; err != nil {
			return fmt.Errorf("unlink instructors: %w", err)
		}
		if err := tx.Where("course_id = ?", id).Delete(&models.Registration{}).Error; err != nil {
			return fmt.Errorf("delete registrations: %w", err)
		}
		if err := tx.Delete(&models.Course{}, id).Error; err != nil {
			return fmt.Errorf("delete course %d: %w", id, err)
		}
		return nil
	})
}
