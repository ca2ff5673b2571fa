package services

import (
	"context"

	"github.com/snowpeak/skistation/internal/models"
)

// Stores return (nil, nil) from FindByID when the row does not exist.

type SkierStore interface {
	FindByID(ctx context.Context, id uint) (*models.Skier, error)
	FindAll(ctx context.Context) ([]models.Skier, error)
	Save(ctx context.Context, s *models.Skier) error
	DeleteByID(ctx context.Context, id uint) error
	FindBySubscriptionType(ctx context.Context, t models.TypeSubscription) ([]models.Skier, error)
	FindBySubscriptionID(ctx context.Context, subscriptionID uint) (*models.Skier, error)
}

type SubscriptionStore interface {
	FindByID(ctx context.Context, id uint) (*models.Subscription, error)
	FindAll(ctx context.Context) ([]models.Subscription, error)
	Save(ctx context.Context, s *models.Subscription) error
	FindByTypeOrderByStartDate(ctx context.Context, t models.TypeSubscription) ([]models.Subscription, error)
	FindByStartDateBetween(ctx context.Context, from, to models.Date) ([]models.Subscription, error)
	FindAllOrderByEndDate(ctx context.Context) ([]models.Subscription, error)
	RevenueByType(ctx context.Context) (map[models.TypeSubscription]float64, error)
}

type CourseStore interface {
	FindByID(ctx context.Context, id uint) (*models.Course, error)
	FindAll(ctx context.Context) ([]models.Course, error)
	Save(ctx context.Context, c *models.Course) error
	DeleteByID(ctx context.Context, id uint) error
}

type InstructorStore interface {
	FindByID(ctx context.Context, id uint) (*models.Instructor, error)
	FindAll(ctx context.Context) ([]models.Instructor, error)
	Save(ctx context.Context, in *models.Instructor) error
	DeleteByID(ctx context.Context, id uint) error
}

type PisteStore interface {
	FindByID(ctx context.Context, id uint) (*models.Piste, error)
	FindAll(ctx context.Context) ([]models.Piste, error)
	Save(ctx context.Context, p *models.Piste) error
	DeleteByID(ctx context.Context, id uint) error
}

type RegistrationStore interface {
	FindByID(ctx context.Context, id uint) (*models.Registration, error)
	FindByCode(ctx context.Context, code string) (*models.Registration, error)
	Save(ctx context.Context, r *models.Registration) error
	CountByWeekSkierAndCourse(ctx context.Context, week int, skierID, courseID uint) (int64, error)
	CountByCourseAndWeek(ctx context.Context, courseID uint, week int) (int64, error)
	LoadByWeek(ctx context.Context, week int) ([]models.CourseLoad, error)
	WeeksByInstructorAndSupport(ctx context.Context, instructorID uint, support models.Support) ([]int, error)
}
