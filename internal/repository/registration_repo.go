package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/snowpeak/skistation/internal/models"
)

type RegistrationRepo struct {
	db *gorm.DB
}

func NewRegistrationRepo(db *gorm.DB) *RegistrationRepo {
	return &RegistrationRepo{db: db}
}

func (r *RegistrationRepo) FindByID(ctx context.Context, id uint) (*models.Registration, error) {
	var reg models.Registration
	if err := r.db.WithContext(ctx).Preload("Course").First(&reg, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find registration %d: %w", id, err)
	}
	return &reg, nil
}

func (r *RegistrationRepo) FindByCode(ctx context.Context, code string) (*models.Registration, error) {
	var reg models.Registration
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&reg).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find registration %q: %w", code, err)
	}
	return &reg, nil
}

// Save writes the registration row only; the skier and course it points
// at are referenced by id.
func (r *RegistrationRepo) Save(ctx context.Context, reg *models.Registration) error {
	if reg.Skier != nil {
		reg.SkierID = &reg.Skier.ID
	}
	if reg.Course != nil {
		reg.CourseID = &reg.Course.ID
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(reg).Error; err != nil {
		return fmt.Errorf("save registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepo) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Registration{}, id).Error; err != nil {
		return fmt.Errorf("delete registration %d: %w", id, err)
	}
	return nil
}

func (r *RegistrationRepo) CountByWeekSkierAndCourse(ctx context.Context, week int, skierID, courseID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Registration{}).
		Where("num_week = ? AND skier_id = ? AND course_id = ?", week, skierID, courseID).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return n, nil
}

func (r *RegistrationRepo) CountByCourseAndWeek(ctx context.Context, courseID uint, week int) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Registration{}).
		Where("course_id = ? AND num_week = ?", courseID, week).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count course registrations: %w", err)
	}
	return n, nil
}

// LoadByWeek counts registrations per course for one week in a single
// GROUP BY instead of a COUNT per course.
func (r *RegistrationRepo) LoadByWeek(ctx context.Context, week int) ([]models.CourseLoad, error) {
	var out []models.CourseLoad
	if err := r.db.WithContext(ctx).Table("registrations").
		Select("course_id, COUNT(*) AS registered").
		Where("num_week = ? AND course_id IS NOT NULL", week).
		Group("course_id").
		Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("registration load for week %d: %w", week, err)
	}
	return out, nil
}

// WeeksByInstructorAndSupport lists the distinct weeks in which the
// instructor's courses of the given support have registrations.
func (r *RegistrationRepo) WeeksByInstructorAndSupport(ctx context.Context, instructorID uint, support models.Support) ([]int, error) {
	weeks := []int{}
	if err := r.db.WithContext(ctx).Table("registrations r").
		Select("DISTINCT r.num_week").
		Joins("JOIN instructor_courses ic ON ic.course_id = r.course_id").
		Joins("JOIN courses c ON c.id = r.course_id").
		Where("ic.instructor_id = ? AND c.support = ?", instructorID, support).
		Order("r.num_week ASC").
		Scan(&weeks).Error; err != nil {
		return nil, fmt.Errorf("weeks for instructor %d: %w", instructorID, err)
	}
	if weeks == nil {
		weeks = []int{}
	}
	return weeks, nil
}
