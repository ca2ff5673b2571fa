package services

import (
	"context"
	"fmt"
	"time"

	"github.com/snowpeak/skistation/internal/events"
	"github.com/snowpeak/skistation/internal/models"
)

const (
	// MaxPerCourseWeek is the number of skiers a course takes in one week.
	MaxPerCourseWeek = 6
	// ChildAgeLimit is the first age at which a skier counts as an adult.
	ChildAgeLimit = 16

	minWeek = 1
	maxWeek = 53
)

type RegistrationService struct {
	regs        RegistrationStore
	skiers      SkierStore
	courses     CourseStore
	instructors InstructorStore

	now func() time.Time
}

func NewRegistrationService(regs RegistrationStore, skiers SkierStore, courses CourseStore, instructors InstructorStore) *RegistrationService {
	return &RegistrationService{
		regs:        regs,
		skiers:      skiers,
		courses:     courses,
		instructors: instructors,
		now:         time.Now,
	}
}

// WithClock replaces the clock used for age computation.
func (s *RegistrationService) WithClock(now func() time.Time) *RegistrationService {
	s.now = now
	return s
}

// AgeOn returns the age in full years reached on day.
func AgeOn(dob, day models.Date) int {
	age := day.Year() - dob.Year()
	if day.Month() < dob.Month() || (day.Month() == dob.Month() && day.Day() < dob.Day()) {
		age--
	}
	return age
}

// Eligible reports whether a skier of the given age may take a course of
// type t.
func Eligible(t models.TypeCourse, age int) bool {
	switch t {
	case models.CourseIndividual:
		return true
	case models.CourseCollectiveChildren:
		return age < ChildAgeLimit
	case models.CourseCollectiveAdult:
		return age >= ChildAgeLimit
	}
	return false
}

// AddRegistrationAndAssignToSkierAndCourse registers the skier to the
// course for reg.NumWeek. The registration is always created as a new row
// and is saved only when checkSeat lets the skier in.
func (s *RegistrationService) AddRegistrationAndAssignToSkierAndCourse(ctx context.Context, reg *models.Registration, skierID, courseID uint) (*models.Registration, error) {
	resetNew(reg)
	if reg.NumWeek < minWeek || reg.NumWeek > maxWeek {
		return nil, ErrInvalidWeek
	}
	sk, err := s.skiers.FindByID(ctx, skierID)
	if err != nil {
		return nil, err
	}
	if sk == nil {
		return nil, ErrSkierNotFound
	}
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	if err := s.checkSeat(ctx, sk, course, reg.NumWeek); err != nil {
		return nil, err
	}

	reg.SkierID = &sk.ID
	reg.CourseID = &course.ID
	reg.Course = course
	return s.save(ctx, reg)
}

// AddRegistrationAndAssignToSkier attaches a new course-less registration
// to an existing skier.
func (s *RegistrationService) AddRegistrationAndAssignToSkier(ctx context.Context, reg *models.Registration, skierID uint) (*models.Registration, error) {
	resetNew(reg)
	if reg.NumWeek < minWeek || reg.NumWeek > maxWeek {
		return nil, ErrInvalidWeek
	}
	sk, err := s.skiers.FindByID(ctx, skierID)
	if err != nil {
		return nil, err
	}
	if sk == nil {
		return nil, ErrSkierNotFound
	}
	reg.SkierID = &sk.ID
	return s.save(ctx, reg)
}

// AssignRegistrationToCourse moves an existing registration to a course,
// under the same rules as a new registration. Assigning a registration to
// the course it already has is a no-op.
func (s *RegistrationService) AssignRegistrationToCourse(ctx context.Context, registrationID, courseID uint) (*models.Registration, error) {
	reg, err := s.regs.FindByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrRegistrationNotFound
	}
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	if reg.CourseID != nil && *reg.CourseID == course.ID {
		reg.Course = course
		return reg, nil
	}

	var sk *models.Skier
	if reg.SkierID != nil {
		if sk, err = s.skiers.FindByID(ctx, *reg.SkierID); err != nil {
			return nil, err
		}
		if sk == nil {
			return nil, ErrSkierNotFound
		}
	}
	if err := s.checkSeat(ctx, sk, course, reg.NumWeek); err != nil {
		return nil, err
	}

	reg.CourseID = &course.ID
	reg.Course = course
	if err := s.regs.Save(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// checkSeat applies the course rules for placing sk on course in week:
// the skier's age fits the course type, the skier holds no registration
// for that course and week, and the course has a free seat. A nil sk
// only checks the seat; an unsaved sk (ID 0) skips the duplicate lookup.
func (s *RegistrationService) checkSeat(ctx context.Context, sk *models.Skier, course *models.Course, week int) error {
	if sk != nil {
		if !Eligible(course.TypeCourse, AgeOn(sk.DateOfBirth, models.DateOf(s.now()))) {
			return ErrNotEligible
		}
		if sk.ID != 0 {
			dup, err := s.regs.CountByWeekSkierAndCourse(ctx, week, sk.ID, course.ID)
			if err != nil {
				return err
			}
			if dup > 0 {
				return ErrAlreadyRegistered
			}
		}
	}

	taken, err := s.regs.CountByCourseAndWeek(ctx, course.ID, week)
	if err != nil {
		return err
	}
	if taken >= MaxPerCourseWeek {
		return ErrCourseFull
	}
	return nil
}

// checkNewSkier validates the registrations a skier that is not saved yet
// brings along for course. Nothing is written.
func (s *RegistrationService) checkNewSkier(ctx context.Context, sk *models.Skier, course *models.Course) error {
	weeks := make(map[int]bool, len(sk.Registrations))
	for i := range sk.Registrations {
		reg := &sk.Registrations[i]
		resetNew(reg)
		if reg.NumWeek < minWeek || reg.NumWeek > maxWeek {
			return ErrInvalidWeek
		}
		if weeks[reg.NumWeek] {
			return ErrAlreadyRegistered
		}
		weeks[reg.NumWeek] = true
		if err := s.checkSeat(ctx, sk, course, reg.NumWeek); err != nil {
			return fmt.Errorf("week %d: %w", reg.NumWeek, err)
		}
	}
	return nil
}

// resetNew clears the fields a caller must not choose for a registration
// being created: its row id and its check-in code.
func resetNew(reg *models.Registration) {
	reg.ID = 0
	reg.Code = ""
}

func (s *RegistrationService) RetrieveRegistration(ctx context.Context, id uint) (*models.Registration, error) {
	return s.regs.FindByID(ctx, id)
}

func (s *RegistrationService) RetrieveRegistrationByCode(ctx context.Context, code string) (*models.Registration, error) {
	return s.regs.FindByCode(ctx, code)
}

// NumWeeksCourseOfInstructorBySupport lists the weeks, ascending, in which
// the instructor's courses of that support have registrations. It returns
// nil for an unknown instructor.
func (s *RegistrationService) NumWeeksCourseOfInstructorBySupport(ctx context.Context, instructorID uint, support models.Support) ([]int, error) {
	in, err := s.instructors.FindByID(ctx, instructorID)
	if err != nil || in == nil {
		return nil, err
	}
	return s.regs.WeeksByInstructorAndSupport(ctx, instructorID, support)
}

// CourseCapacity is one course's seat usage for a week.
type CourseCapacity struct {
	Course      models.Course `json:"course"`
	Registered  int64         `json:"registered"`
	Available   int64         `json:"available"`
	FillPercent int           `json:"fillPercent"`
}

// CapacityReport returns the seat usage of every course for week, using
// one aggregated count per week.
func (s *RegistrationService) CapacityReport(ctx context.Context, week int) ([]CourseCapacity, error) {
	if week < minWeek || week > maxWeek {
		return nil, ErrInvalidWeek
	}
	courses, err := s.courses.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	load, err := s.regs.LoadByWeek(ctx, week)
	if err != nil {
		return nil, err
	}
	byCourse := make(map[uint]int64, len(load))
	for _, l := range load {
		byCourse[l.CourseID] = l.Registered
	}

	out := make([]CourseCapacity, 0, len(courses))
	for _, c := range courses {
		n := byCourse[c.ID]
		avail := int64(MaxPerCourseWeek) - n
		if avail < 0 {
			avail = 0
		}
		out = append(out, CourseCapacity{
			Course:      c,
			Registered:  n,
			Available:   avail,
			FillPercent: int(n * 100 / MaxPerCourseWeek),
		})
	}
	return out, nil
}

// save assigns the check-in code, writes the registration and fires
// events.OnRegistrationCreated.
func (s *RegistrationService) save(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	if reg.Code == "" {
		reg.Code = newRegistrationCode()
	}
	if err := s.regs.Save(ctx, reg); err != nil {
		return nil, fmt.Errorf("save registration: %w", err)
	}
	if events.OnRegistrationCreated != nil {
		events.OnRegistrationCreated(*reg)
	}
	return reg, nil
}
