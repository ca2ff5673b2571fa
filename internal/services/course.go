package services

import (
	"context"

	"github.com/snowpeak/skistation/internal/models"
)

type CourseService struct {
	courses CourseStore
}

func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{courses: courses}
}

func (s *CourseService) AddCourse(ctx context.Context, c *models.Course) (*models.Course, error) {
	if err := s.courses.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, c *models.Course) (*models.Course, error) {
	return s.AddCourse(ctx, c)
}

func (s *CourseService) RetrieveCourse(ctx context.Context, id uint) (*models.Course, error) {
	return s.courses.FindByID(ctx, id)
}

func (s *CourseService) RetrieveAllCourses(ctx context.Context) ([]models.Course, error) {
	return s.courses.FindAll(ctx)
}

func (s *CourseService) RemoveCourse(ctx context.Context, id uint) error {
	return s.courses.DeleteByID(ctx, id)
}
