package handlers

import (
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/snowpeak/skistation/internal/services"
)

// Services groups the service layer the HTTP handlers call into.
type Services struct {
	Skiers        *services.SkierService
	Subscriptions *services.SubscriptionService
	Courses       *services.CourseService
	Instructors   *services.InstructorService
	Pistes        *services.PisteService
	Registrations *services.RegistrationService
}

// Handler exposes the JSON endpoints for every resource.
type Handler struct {
	svc       Services
	log       *slog.Logger
	validate  *validator.Validate
	publicURL string
}

func New(svc Services, log *slog.Logger, publicURL string) *Handler {
	return &Handler{
		svc:       svc,
		log:       log,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}
