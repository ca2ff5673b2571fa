package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/snowpeak/skistation/internal/models"
)

type InstructorRepo struct {
	db *gorm.DB
}

func NewInstructorRepo(db *gorm.DB) *InstructorRepo {
	return &InstructorRepo{db: db}
}

func (r *InstructorRepo) withCourses(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Courses", func(db *gorm.DB) *gorm.DB {
		return db.Order("courses.id")
	})
}

func (r *InstructorRepo) FindByID(ctx context.Context, id uint) (*models.Instructor, error) {
	var in models.Instructor
	if err := r.withCourses(ctx).First(&in, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find instructor %d: %w", id, err)
	}
	return &in, nil
}

func (r *InstructorRepo) FindAll(ctx context.Context) ([]models.Instructor, error) {
	out := []models.Instructor{}
	if err := r.withCourses(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return out, nil
}

// Save writes the instructor and replaces its course links with in.Courses.
func (r *InstructorRepo) Save(ctx context.Context, in *models.Instructor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(in).Error; err != nil {
			return fmt.Errorf("save instructor: %w", err)
		}
		courses := tx.Model(in).Association("Courses")
		var err error
		if len(in.Courses) == 0 {
			err = courses.Clear()
		} else {
			err = courses.Replace(in.Courses)
		}
		if err != nil {
			return fmt.Errorf("save instructor courses: %w", err)
		}
		return nil
	})
}

func (r *InstructorRepo) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM instructor_courses WHERE instructor_id = ?", id).Error; err != nil {
			return fmt.Errorf("unlink courses: %w", err)
		}
		if err := tx.Delete(&models.Instructor{}, id).Error; err != nil {
			return fmt.Errorf("delete instructor %d: %w", id, err)
		}
		return nil
	})
}
