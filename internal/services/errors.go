package services

import "errors"

// Registration and ownership failures. Callers branch on them with errors.Is.
var (
	ErrInvalidWeek          = errors.New("week number must be between 1 and 53")
	ErrSkierNotFound        = errors.New("skier not found")
	ErrCourseNotFound       = errors.New("course not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrNotEligible          = errors.New("skier age does not match the course type")
	ErrAlreadyRegistered    = errors.New("skier is already registered to this course for that week")
	ErrCourseFull           = errors.New("course is full for that week")
	ErrSubscriptionTaken    = errors.New("subscription already belongs to another skier")
)
