package routes

import (
	"content-platform/internal/delivery/http/handler"
	"content-platform/internal/delivery/http/middleware"
	"content-platform/internal/pkg/jwt"
	"content-platform/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func (r *Registry) registerV1(v1 fiber.Router) {
	if v1 == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		r.cfg.JWT.AccessSecret,
		r.cfg.JWT.RefreshSecret,
		r.cfg.JWT.AccessExpiresIn,
		r.cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	listUC := usecase.NewJobListUsecase(r.deps.Jobs, r.deps.Cache, r.deps.Logger)
	detailUC := usecase.NewJobDetailUsecase(r.deps.Jobs, r.deps.Users)
	saveUC := usecase.NewJobSaveUsecase(r.deps.Jobs, r.deps.Cache, r.deps.Logger)
	checklistUC := usecase.NewChecklistUsecase(r.deps.Jobs, r.deps.Cache)
	applyUC := usecase.NewApplicationUsecase(r.deps.Jobs, r.deps.Logger)
	authUC := usecase.NewAuthUsecase(r.deps.Users, jwtSvc)
	skillsUC := usecase.NewUserSkillUsecase(r.deps.Users)

	authHandler := handler.NewAuthHandler(authUC)
	authHandler.RegisterRoutes(v1.Group("/auth"))

	// Board routes are open; a bearer token only enriches the detail view
	// with the caller's skill match.
	jobsHandler := handler.NewJobsHandler(listUC, detailUC, saveUC, checklistUC, applyUC)
	jobsHandler.RegisterRoutes(v1.Group("/jobs", authMw.Optional()))

	userSkillHandler := handler.NewUserSkillHandler(skillsUC)
	userSkillHandler.RegisterRoutes(v1.Group("/users", authMw.Middleware()))
}
