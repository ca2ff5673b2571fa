package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/snowpeak/skistation/internal/handlers"
)

func Router(h *handlers.Handler, log *slog.Logger, adminToken string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handlers.Health)

	admin := handlers.RequireAdmin(adminToken)

	r.Route("/skier", func(sr chi.Router) {
		sr.Post("/add", h.AddSkier)
		sr.Post("/addAndAssign/{numCourse}", h.AddSkierAndAssignToCourse)
		sr.Put("/assignToSub/{numSkier}/{numSub}", h.AssignSkierToSubscription)
		sr.Put("/assignToPiste/{numSkier}/{numPiste}", h.AssignSkierToPiste)
		sr.Get("/getSkiersBySubscription", h.SkiersBySubscriptionType)
		sr.Get("/get/{id}", h.GetSkier)
		sr.Get("/all", h.AllSkiers)
		sr.With(admin).Delete("/delete/{id}", h.DeleteSkier)
	})

	r.Route("/course", func(cr chi.Router) {
		cr.Post("/add", h.AddCourse)
		cr.Put("/update", h.UpdateCourse)
		cr.Get("/get/{id}", h.GetCourse)
		cr.Get("/all", h.AllCourses)
		cr.With(admin).Delete("/delete/{id}", h.DeleteCourse)
	})

	r.Route("/instructor", func(ir chi.Router) {
		ir.Post("/add", h.AddInstructor)
		ir.Post("/addAndAssignToCourse/{numCourse}", h.AddInstructorAndAssignToCourse)
		ir.Put("/update", h.UpdateInstructor)
		ir.Get("/get/{id}", h.GetInstructor)
		ir.Get("/all", h.AllInstructors)
		ir.With(admin).Delete("/delete/{id}", h.DeleteInstructor)
	})

	r.Route("/piste", func(pr chi.Router) {
		pr.Post("/add", h.AddPiste)
		pr.Put("/update", h.UpdatePiste)
		pr.Get("/get/{id}", h.GetPiste)
		pr.Get("/all", h.AllPistes)
		pr.With(admin).Delete("/delete/{id}", h.DeletePiste)
	})

	r.Route("/subscription", func(sr chi.Router) {
		sr.Post("/add", h.AddSubscription)
		sr.Put("/update", h.UpdateSubscription)
		sr.Get("/get/{id}", h.GetSubscription)
		sr.Get("/all/{typeSub}", h.SubscriptionsByType)
		sr.Get("/all/{date1}/{date2}", h.SubscriptionsByDates)
		sr.Get("/revenue", h.RecurringRevenue)
	})

	r.Route("/registration", func(rr chi.Router) {
		rr.Put("/addAndAssignToSkierAndCourse/{numSkier}/{numCourse}", h.AddRegistrationAndAssignToSkierAndCourse)
		rr.Put("/addAndAssignToSkier/{numSkier}", h.AddRegistrationAndAssignToSkier)
		rr.Put("/assignToCourse/{numRegistration}/{numCourse}", h.AssignRegistrationToCourse)
		rr.Get("/numWeeks/{numInstructor}/{support}", h.NumWeeksCourseOfInstructorBySupport)
		rr.Get("/get/{id}", h.GetRegistration)
		rr.Get("/code/{code}", h.GetRegistrationByCode)
		rr.Get("/capacity", h.Capacity)

		// QR image
		rr.Get("/qr/{code}.png", h.QR)
	})

	return r
}
