package services

import (
	"context"
	"fmt"
	"time"

	"github.com/snowpeak/skistation/internal/models"
)

// EndDate returns the day a subscription of type t started on start ends:
// one month, six months or one year later. A day that does not exist in
// the target month is clamped to the month's last day.
func EndDate(t models.TypeSubscription, start models.Date) models.Date {
	switch t {
	case models.SubscriptionMonthly:
		return addMonths(start, 1)
	case models.SubscriptionSemestriel:
		return addMonths(start, 6)
	case models.SubscriptionAnnual:
		return addMonths(start, 12)
	}
	return models.Date{}
}

func addMonths(d models.Date, n int) models.Date {
	first := time.Date(d.Year(), d.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	day := d.Day()
	if day > last {
		day = last
	}
	return models.NewDate(first.Year(), first.Month(), day)
}

// Expired pairs a subscription whose end date has passed with the skier
// holding it. Skier is nil for an orphan subscription.
type Expired struct {
	Subscription models.Subscription
	Skier        *models.Skier
}

type SubscriptionService struct {
	subs   SubscriptionStore
	skiers SkierStore
}

func NewSubscriptionService(subs SubscriptionStore, skiers SkierStore) *SubscriptionService {
	return &SubscriptionService{subs: subs, skiers: skiers}
}

// AddSubscription sets the end date from the type and start date and
// persists the subscription.
func (s *SubscriptionService) AddSubscription(ctx context.Context, sub *models.Subscription) (*models.Subscription, error) {
	sub.EndDate = EndDate(sub.TypeSub, sub.StartDate)
	if err := s.subs.Save(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) UpdateSubscription(ctx context.Context, sub *models.Subscription) (*models.Subscription, error) {
	if err := s.subs.Save(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) RetrieveSubscriptionByID(ctx context.Context, id uint) (*models.Subscription, error) {
	return s.subs.FindByID(ctx, id)
}

func (s *SubscriptionService) GetSubscriptionByType(ctx context.Context, t models.TypeSubscription) ([]models.Subscription, error) {
	return s.subs.FindByTypeOrderByStartDate(ctx, t)
}

// RetrieveSubscriptionsByDates returns subscriptions starting within
// [from, to].
func (s *SubscriptionService) RetrieveSubscriptionsByDates(ctx context.Context, from, to models.Date) ([]models.Subscription, error) {
	return s.subs.FindByStartDateBetween(ctx, from, to)
}

// RetrieveSubscriptions scans every subscription, earliest end date first,
// and returns those that ended before now's calendar day together with
// their owner. Nothing is written.
func (s *SubscriptionService) RetrieveSubscriptions(ctx context.Context, now time.Time) ([]Expired, error) {
	all, err := s.subs.FindAllOrderByEndDate(ctx)
	if err != nil {
		return nil, err
	}
	today := models.DateOf(now)

	var out []Expired
	for _, sub := range all {
		if sub.EndDate.IsZero() || !sub.EndDate.Before(today) {
			continue
		}
		owner, err := s.skiers.FindBySubscriptionID(ctx, sub.ID)
		if err != nil {
			return nil, fmt.Errorf("owner of subscription %d: %w", sub.ID, err)
		}
		out = append(out, Expired{Subscription: sub, Skier: owner})
	}
	return out, nil
}

// MonthlyRecurringRevenue spreads semester and annual prices over their
// months and adds the monthly prices.
func (s *SubscriptionService) MonthlyRecurringRevenue(ctx context.Context) (float64, error) {
	rev, err := s.subs.RevenueByType(ctx)
	if err != nil {
		return 0, err
	}
	return rev[models.SubscriptionMonthly] +
		rev[models.SubscriptionSemestriel]/6 +
		rev[models.SubscriptionAnnual]/12, nil
}
