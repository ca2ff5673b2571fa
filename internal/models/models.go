package models

import "time"

type TypeSubscription string

const (
	SubscriptionAnnual     TypeSubscription = "ANNUAL"
	SubscriptionSemestriel TypeSubscription = "SEMESTRIEL"
	SubscriptionMonthly    TypeSubscription = "MONTHLY"
)

func (t TypeSubscription) Valid() bool {
	switch t {
	case SubscriptionAnnual, SubscriptionSemestriel, SubscriptionMonthly:
		return true
	}
	return false
}

type TypeCourse string

const (
	CourseCollectiveChildren TypeCourse = "COLLECTIVE_CHILDREN"
	CourseCollectiveAdult    TypeCourse = "COLLECTIVE_ADULT"
	CourseIndividual         TypeCourse = "INDIVIDUAL"
)

type Support string

const (
	SupportSki       Support = "SKI"
	SupportSnowboard Support = "SNOWBOARD"
)

func (s Support) Valid() bool { return s == SupportSki || s == SupportSnowboard }

type Color string

const (
	ColorGreen Color = "GREEN"
	ColorBlue  Color = "BLUE"
	ColorRed   Color = "RED"
	ColorBlack Color = "BLACK"
)

type Subscription struct {
	ID        uint      `gorm:"primaryKey" json:"numSub"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	TypeSub   TypeSubscription `gorm:"index;not null" json:"typeSub" validate:"required,oneof=ANNUAL SEMESTRIEL MONTHLY"`
	StartDate Date             `gorm:"index" json:"startDate" validate:"required"`
	EndDate   Date             `gorm:"index" json:"endDate"`
	Price     float64          `json:"price" validate:"gte=0"`
}

type Skier struct {
	ID        uint      `gorm:"primaryKey" json:"numSkier"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	DateOfBirth Date   `json:"dateOfBirth" validate:"required"`
	City        string `json:"city"`

	SubscriptionID *uint         `gorm:"uniqueIndex" json:"-"`
	Subscription   *Subscription `json:"subscription,omitempty"`

	Registrations []Registration `json:"registrations" validate:"dive"`
	Pistes        []Piste        `gorm:"many2many:skier_pistes" json:"pistes"`
}

// NewSkier returns a skier with its collections initialized.
func NewSkier(firstName, lastName string, dob Date) Skier {
	return Skier{
		FirstName:     firstName,
		LastName:      lastName,
		DateOfBirth:   dob,
		Registrations: []Registration{},
		Pistes:        []Piste{},
	}
}

// HasPiste reports whether a piste with the given id is already linked.
func (s *Skier) HasPiste(id uint) bool {
	for _, p := range s.Pistes {
		if p.ID == id {
			return true
		}
	}
	return false
}

type Course struct {
	ID        uint      `gorm:"primaryKey" json:"numCourse"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Level      int        `json:"level" validate:"gte=0"`
	TypeCourse TypeCourse `gorm:"not null" json:"typeCourse" validate:"required,oneof=COLLECTIVE_CHILDREN COLLECTIVE_ADULT INDIVIDUAL"`
	Support    Support    `gorm:"index;not null" json:"support" validate:"required,oneof=SKI SNOWBOARD"`
	Price      float64    `json:"price" validate:"gte=0"`
	TimeSlot   int        `json:"timeSlot" validate:"gte=0"`

	Registrations []Registration `json:"-"`
}

type Instructor struct {
	ID        uint      `gorm:"primaryKey" json:"numInstructor"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	DateOfHire Date   `json:"dateOfHire"`

	Courses []Course `gorm:"many2many:instructor_courses" json:"courses"`
}

// HasCourse reports whether the course is already in the instructor's list.
func (i *Instructor) HasCourse(id uint) bool {
	for _, c := range i.Courses {
		if c.ID == id {
			return true
		}
	}
	return false
}

type Piste struct {
	ID        uint      `gorm:"primaryKey" json:"numPiste"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name   string `gorm:"column:name_piste" json:"namePiste" validate:"required"`
	Color  Color  `json:"color" validate:"required,oneof=GREEN BLUE RED BLACK"`
	Length int    `json:"length" validate:"gte=0"`
	Slope  int    `json:"slope" validate:"gte=0"`
}

// Registration is a skier's enrollment in a course for one week.
// (skier, course, week) is unique; see db.Migrate for the index.
type Registration struct {
	ID        uint      `gorm:"primaryKey" json:"numRegistration"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	NumWeek int    `json:"numWeek" validate:"min=1,max=53"`
	Code    string `gorm:"uniqueIndex" json:"code,omitempty"` // e.g., REG-1A2B3C4D

	SkierID  *uint   `json:"skierId,omitempty"`
	Skier    *Skier  `json:"-"`
	CourseID *uint   `json:"courseId,omitempty"`
	Course   *Course `json:"course,omitempty"`
}

// CourseLoad is the number of registrations of one course for a week.
type CourseLoad struct {
	CourseID   uint
	Registered int64
}
