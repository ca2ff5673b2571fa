package services

import (
	"context"

	"github.com/snowpeak/skistation/internal/models"
)

type InstructorService struct {
	instructors InstructorStore
	courses     CourseStore
}

func NewInstructorService(instructors InstructorStore, courses CourseStore) *InstructorService {
	return &InstructorService{instructors: instructors, courses: courses}
}

func (s *InstructorService) AddInstructor(ctx context.Context, in *models.Instructor) (*models.Instructor, error) {
	if in.Courses == nil {
		in.Courses = []models.Course{}
	}
	if err := s.instructors.Save(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *InstructorService) UpdateInstructor(ctx context.Context, in *models.Instructor) (*models.Instructor, error) {
	return s.AddInstructor(ctx, in)
}

func (s *InstructorService) RetrieveInstructor(ctx context.Context, id uint) (*models.Instructor, error) {
	return s.instructors.FindByID(ctx, id)
}

func (s *InstructorService) RetrieveAllInstructors(ctx context.Context) ([]models.Instructor, error) {
	return s.instructors.FindAll(ctx)
}

func (s *InstructorService) RemoveInstructor(ctx context.Context, id uint) error {
	return s.instructors.DeleteByID(ctx, id)
}

// AddInstructorAndAssignToCourse appends the course when it exists (once)
// and saves the instructor either way.
func (s *InstructorService) AddInstructorAndAssignToCourse(ctx context.Context, in *models.Instructor, courseID uint) (*models.Instructor, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course != nil && !in.HasCourse(course.ID) {
		in.Courses = append(in.Courses, *course)
	}
	return s.AddInstructor(ctx, in)
}
