package services

import (
	"context"
	"errors"
	"sort"

	"github.com/snowpeak/skistation/internal/models"
)

var errStore = errors.New("store unavailable")

type fakeSkiers struct {
	rows  map[uint]*models.Skier
	next  uint
	saves int
}

func newFakeSkiers() *fakeSkiers { return &fakeSkiers{rows: map[uint]*models.Skier{}} }

func (f *fakeSkiers) FindByID(_ context.Context, id uint) (*models.Skier, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	cp.Pistes = append([]models.Piste{}, s.Pistes...)
	return &cp, nil
}

func (f *fakeSkiers) FindAll(_ context.Context) ([]models.Skier, error) {
	out := []models.Skier{}
	for _, s := range f.rows {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSkiers) Save(_ context.Context, s *models.Skier) error {
	f.saves++
	if s.ID == 0 {
		f.next++
		s.ID = f.next
	}
	if s.Subscription != nil {
		s.SubscriptionID = &s.Subscription.ID
	}
	cp := *s
	f.rows[s.ID] = &cp
	return nil
}

func (f *fakeSkiers) DeleteByID(_ context.Context, id uint) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeSkiers) FindBySubscriptionType(_ context.Context, t models.TypeSubscription) ([]models.Skier, error) {
	out := []models.Skier{}
	for _, s := range f.rows {
		if s.Subscription != nil && s.Subscription.TypeSub == t {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSkiers) FindBySubscriptionID(_ context.Context, id uint) (*models.Skier, error) {
	for _, s := range f.rows {
		if s.SubscriptionID != nil && *s.SubscriptionID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeSubs struct {
	rows  map[uint]*models.Subscription
	next  uint
	saves int
}

func newFakeSubs() *fakeSubs { return &fakeSubs{rows: map[uint]*models.Subscription{}} }

func (f *fakeSubs) FindByID(_ context.Context, id uint) (*models.Subscription, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSubs) sorted(less func(a, b models.Subscription) bool) []models.Subscription {
	out := []models.Subscription{}
	for _, s := range f.rows {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func (f *fakeSubs) FindAll(_ context.Context) ([]models.Subscription, error) {
	return f.sorted(func(a, b models.Subscription) bool { return a.ID < b.ID }), nil
}

func (f *fakeSubs) Save(_ context.Context, s *models.Subscription) error {
	f.saves++
	if s.ID == 0 {
		f.next++
		s.ID = f.next
	}
	cp := *s
	f.rows[s.ID] = &cp
	return nil
}

func (f *fakeSubs) FindByTypeOrderByStartDate(_ context.Context, t models.TypeSubscription) ([]models.Subscription, error) {
	out := []models.Subscription{}
	for _, s := range f.sorted(func(a, b models.Subscription) bool { return a.StartDate.Before(b.StartDate) }) {
		if s.TypeSub == t {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubs) FindByStartDateBetween(_ context.Context, from, to models.Date) ([]models.Subscription, error) {
	out := []models.Subscription{}
	for _, s := range f.sorted(func(a, b models.Subscription) bool { return a.StartDate.Before(b.StartDate) }) {
		if !s.StartDate.Before(from) && !s.StartDate.After(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubs) FindAllOrderByEndDate(_ context.Context) ([]models.Subscription, error) {
	return f.sorted(func(a, b models.Subscription) bool { return a.EndDate.Before(b.EndDate) }), nil
}

func (f *fakeSubs) RevenueByType(_ context.Context) (map[models.TypeSubscription]float64, error) {
	out := map[models.TypeSubscription]float64{}
	for _, s := range f.rows {
		out[s.TypeSub] += s.Price
	}
	return out, nil
}

type fakeCourses struct {
	rows map[uint]*models.Course
	next uint
}

func newFakeCourses() *fakeCourses { return &fakeCourses{rows: map[uint]*models.Course{}} }

func (f *fakeCourses) FindByID(_ context.Context, id uint) (*models.Course, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCourses) FindAll(_ context.Context) ([]models.Course, error) {
	out := []models.Course{}
	for _, c := range f.rows {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCourses) Save(_ context.Context, c *models.Course) error {
	if c.ID == 0 {
		f.next++
		c.ID = f.next
	}
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCourses) DeleteByID(_ context.Context, id uint) error {
	delete(f.rows, id)
	return nil
}

type fakeInstructors struct {
	rows  map[uint]*models.Instructor
	next  uint
	saves int
}

func newFakeInstructors() *fakeInstructors {
	return &fakeInstructors{rows: map[uint]*models.Instructor{}}
}

func (f *fakeInstructors) FindByID(_ context.Context, id uint) (*models.Instructor, error) {
	in, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *in
	return &cp, nil
}

func (f *fakeInstructors) FindAll(_ context.Context) ([]models.Instructor, error) {
	out := []models.Instructor{}
	for _, in := range f.rows {
		out = append(out, *in)
	}
	return out, nil
}

func (f *fakeInstructors) Save(_ context.Context, in *models.Instructor) error {
	f.saves++
	if in.ID == 0 {
		f.next++
		in.ID = f.next
	}
	cp := *in
	f.rows[in.ID] = &cp
	return nil
}

func (f *fakeInstructors) DeleteByID(_ context.Context, id uint) error {
	delete(f.rows, id)
	return nil
}

type fakePistes struct {
	rows map[uint]*models.Piste
	next uint
}

func newFakePistes() *fakePistes { return &fakePistes{rows: map[uint]*models.Piste{}} }

func (f *fakePistes) FindByID(_ context.Context, id uint) (*models.Piste, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePistes) FindAll(_ context.Context) ([]models.Piste, error) {
	out := []models.Piste{}
	for _, p := range f.rows {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePistes) Save(_ context.Context, p *models.Piste) error {
	if p.ID == 0 {
		f.next++
		p.ID = f.next
	}
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePistes) DeleteByID(_ context.Context, id uint) error {
	delete(f.rows, id)
	return nil
}

// fakeRegs answers the count queries from canned values when set, and
// from its rows otherwise.
type fakeRegs struct {
	rows  map[uint]*models.Registration
	next  uint
	saves int

	dupCount    *int64
	courseCount *int64
	weeks       []int
	failSave    bool
}

func newFakeRegs() *fakeRegs { return &fakeRegs{rows: map[uint]*models.Registration{}} }

func (f *fakeRegs) FindByID(_ context.Context, id uint) (*models.Registration, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRegs) FindByCode(_ context.Context, code string) (*models.Registration, error) {
	for _, r := range f.rows {
		if r.Code == code {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRegs) Save(_ context.Context, r *models.Registration) error {
	if f.failSave {
		return errStore
	}
	f.saves++
	if r.ID == 0 {
		f.next++
		r.ID = f.next
	}
	cp := *r
	f.rows[r.ID] = &cp
	return nil
}

func (f *fakeRegs) CountByWeekSkierAndCourse(_ context.Context, week int, skierID, courseID uint) (int64, error) {
	if f.dupCount != nil {
		return *f.dupCount, nil
	}
	var n int64
	for _, r := range f.rows {
		if r.NumWeek == week && r.SkierID != nil && *r.SkierID == skierID && r.CourseID != nil && *r.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

func (f *fakeRegs) CountByCourseAndWeek(_ context.Context, courseID uint, week int) (int64, error) {
	if f.courseCount != nil {
		return *f.courseCount, nil
	}
	var n int64
	for _, r := range f.rows {
		if r.NumWeek == week && r.CourseID != nil && *r.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

func (f *fakeRegs) LoadByWeek(_ context.Context, week int) ([]models.CourseLoad, error) {
	counts := map[uint]int64{}
	for _, r := range f.rows {
		if r.NumWeek == week && r.CourseID != nil {
			counts[*r.CourseID]++
		}
	}
	out := []models.CourseLoad{}
	for id, n := range counts {
		out = append(out, models.CourseLoad{CourseID: id, Registered: n})
	}
	return out, nil
}

func (f *fakeRegs) WeeksByInstructorAndSupport(_ context.Context, _ uint, _ models.Support) ([]int, error) {
	return f.weeks, nil
}

func count(n int64) *int64 { return &n }
