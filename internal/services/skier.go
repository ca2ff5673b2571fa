package services

import (
	"context"

	"github.com/snowpeak/skistation/internal/models"
)

type SkierService struct {
	skiers        SkierStore
	subs          SubscriptionStore
	pistes        PisteStore
	courses       CourseStore
	registrations *RegistrationService
}

func NewSkierService(skiers SkierStore, subs SubscriptionStore, pistes PisteStore, courses CourseStore, registrations *RegistrationService) *SkierService {
	return &SkierService{skiers: skiers, subs: subs, pistes: pistes, courses: courses, registrations: registrations}
}

// AddSkier always creates a new skier. A missing subscription end date is
// filled in before saving.
func (s *SkierService) AddSkier(ctx context.Context, sk *models.Skier) (*models.Skier, error) {
	sk.ID = 0
	if err := s.prepareSubscription(ctx, sk); err != nil {
		return nil, err
	}
	if err := s.skiers.Save(ctx, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

// AssignSkierToSubscription returns nil when either id is unknown.
func (s *SkierService) AssignSkierToSubscription(ctx context.Context, skierID, subscriptionID uint) (*models.Skier, error) {
	sk, err := s.skiers.FindByID(ctx, skierID)
	if err != nil || sk == nil {
		return nil, err
	}
	sub, err := s.subs.FindByID(ctx, subscriptionID)
	if err != nil || sub == nil {
		return nil, err
	}
	if err := s.checkOwner(ctx, sub.ID, sk.ID); err != nil {
		return nil, err
	}
	sk.Subscription = sub
	if err := s.skiers.Save(ctx, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

// AssignSkierToPiste links the piste once; repeating the call is a no-op
// apart from the save.
func (s *SkierService) AssignSkierToPiste(ctx context.Context, skierID, pisteID uint) (*models.Skier, error) {
	sk, err := s.skiers.FindByID(ctx, skierID)
	if err != nil || sk == nil {
		return nil, err
	}
	p, err := s.pistes.FindByID(ctx, pisteID)
	if err != nil || p == nil {
		return nil, err
	}
	if !sk.HasPiste(p.ID) {
		sk.Pistes = append(sk.Pistes, *p)
	}
	if err := s.skiers.Save(ctx, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

// AddSkierAndAssignToCourse saves a new skier and each registration it
// carries, pointed at the course. Every registration must pass the course
// rules before anything is written. Nothing is written when the course
// does not exist.
func (s *SkierService) AddSkierAndAssignToCourse(ctx context.Context, sk *models.Skier, courseID uint) (*models.Skier, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil || course == nil {
		return nil, err
	}
	sk.ID = 0
	if err := s.registrations.checkNewSkier(ctx, sk, course); err != nil {
		return nil, err
	}
	if err := s.prepareSubscription(ctx, sk); err != nil {
		return nil, err
	}
	if err := s.skiers.Save(ctx, sk); err != nil {
		return nil, err
	}
	for i := range sk.Registrations {
		reg := &sk.Registrations[i]
		reg.SkierID = &sk.ID
		reg.CourseID = &course.ID
		reg.Course = course
		if _, err := s.registrations.save(ctx, reg); err != nil {
			return nil, err
		}
	}
	return sk, nil
}

// prepareSubscription fills a missing end date and refuses a stored
// subscription that another skier already holds.
func (s *SkierService) prepareSubscription(ctx context.Context, sk *models.Skier) error {
	sub := sk.Subscription
	if sub == nil {
		return nil
	}
	if sub.ID != 0 {
		if err := s.checkOwner(ctx, sub.ID, sk.ID); err != nil {
			return err
		}
	}
	if sub.EndDate.IsZero() {
		sub.EndDate = EndDate(sub.TypeSub, sub.StartDate)
	}
	return nil
}

// checkOwner returns ErrSubscriptionTaken when the subscription belongs to
// a skier other than skierID.
func (s *SkierService) checkOwner(ctx context.Context, subscriptionID, skierID uint) error {
	owner, err := s.skiers.FindBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		return err
	}
	if owner != nil && owner.ID != skierID {
		return ErrSubscriptionTaken
	}
	return nil
}

func (s *SkierService) RemoveSkier(ctx context.Context, id uint) error {
	return s.skiers.DeleteByID(ctx, id)
}

func (s *SkierService) RetrieveSkier(ctx context.Context, id uint) (*models.Skier, error) {
	return s.skiers.FindByID(ctx, id)
}

func (s *SkierService) RetrieveAllSkiers(ctx context.Context) ([]models.Skier, error) {
	return s.skiers.FindAll(ctx)
}

func (s *SkierService) RetrieveSkiersBySubscriptionType(ctx context.Context, t models.TypeSubscription) ([]models.Skier, error) {
	return s.skiers.FindBySubscriptionType(ctx, t)
}
