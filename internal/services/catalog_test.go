package services

import (
	"context"
	"testing"

	"github.com/snowpeak/skistation/internal/models"
)

func TestAddInstructorAndAssignToCourse(t *testing.T) {
	ctx := context.Background()
	courses := newFakeCourses()
	instructors := newFakeInstructors()
	svc := NewInstructorService(instructors, courses)
	course := models.Course{TypeCourse: models.CourseCollectiveAdult, Support: models.SupportSnowboard}
	courses.Save(ctx, &course)

	in := &models.Instructor{FirstName: "Jo", LastName: "Glace", DateOfHire: models.NewDate(2010, 12, 1)}
	got, err := svc.AddInstructorAndAssignToCourse(ctx, in, course.ID)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if len(got.Courses) != 1 {
		t.Fatalf("courses: want 1, got %d", len(got.Courses))
	}

	got, _ = svc.AddInstructorAndAssignToCourse(ctx, got, course.ID)
	if len(got.Courses) != 1 {
		t.Errorf("course appended twice: %d", len(got.Courses))
	}

	other := &models.Instructor{FirstName: "No", LastName: "Course"}
	got, err = svc.AddInstructorAndAssignToCourse(ctx, other, 404)
	if err != nil {
		t.Fatalf("unknown course: %v", err)
	}
	if got.ID == 0 || len(got.Courses) != 0 {
		t.Errorf("instructor should be saved without courses: %+v", got)
	}
	if instructors.saves != 3 {
		t.Errorf("saves: want 3, got %d", instructors.saves)
	}
}

func TestRetrieveMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	courses := NewCourseService(newFakeCourses())
	pistes := NewPisteService(newFakePistes())
	instructors := NewInstructorService(newFakeInstructors(), newFakeCourses())

	if c, err := courses.RetrieveCourse(ctx, 1); c != nil || err != nil {
		t.Errorf("course: %+v %v", c, err)
	}
	if p, err := pistes.RetrievePiste(ctx, 1); p != nil || err != nil {
		t.Errorf("piste: %+v %v", p, err)
	}
	if in, err := instructors.RetrieveInstructor(ctx, 1); in != nil || err != nil {
		t.Errorf("instructor: %+v %v", in, err)
	}

	all, _ := courses.RetrieveAllCourses(ctx)
	if all == nil || len(all) != 0 {
		t.Errorf("empty course list should be non-nil and empty, got %#v", all)
	}
}

func TestCourseAndPisteCRUD(t *testing.T) {
	ctx := context.Background()
	courses := NewCourseService(newFakeCourses())
	pistes := NewPisteService(newFakePistes())

	c, _ := courses.AddCourse(ctx, &models.Course{Level: 1, TypeCourse: models.CourseIndividual, Support: models.SupportSki, Price: 80})
	c.Price = 95
	courses.UpdateCourse(ctx, c)
	got, _ := courses.RetrieveCourse(ctx, c.ID)
	if got == nil || got.Price != 95 {
		t.Errorf("course update lost: %+v", got)
	}
	if err := courses.RemoveCourse(ctx, c.ID); err != nil {
		t.Fatalf("RemoveCourse: %v", err)
	}
	if err := courses.RemoveCourse(ctx, c.ID); err != nil {
		t.Errorf("second remove should be silent: %v", err)
	}

	p, _ := pistes.AddPiste(ctx, &models.Piste{Name: "Green Meadow", Color: models.ColorGreen, Length: 400, Slope: 5})
	all, _ := pistes.RetrieveAllPistes(ctx)
	if len(all) != 1 || all[0].Name != "Green Meadow" {
		t.Errorf("pistes: %+v", all)
	}
	pistes.RemovePiste(ctx, p.ID)
	if got, _ := pistes.RetrievePiste(ctx, p.ID); got != nil {
		t.Errorf("piste still present")
	}
}
