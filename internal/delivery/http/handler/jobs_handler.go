package handler

import (
	"errors"
	"strings"
	"time"

	"content-platform/internal/delivery/http/dto"
	"content-platform/internal/delivery/http/middleware"
	"content-platform/internal/domain/job"
	"content-platform/internal/pkg/response"
	"content-platform/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

var validate = validator.New()

type JobsHandler struct {
	list      usecase.JobListUsecase
	detail    usecase.JobDetailUsecase
	save      usecase.JobSaveUsecase
	checklist usecase.ChecklistUsecase
	apply     usecase.ApplicationUsecase
}

func NewJobsHandler(
	list usecase.JobListUsecase,
	detail usecase.JobDetailUsecase,
	save usecase.JobSaveUsecase,
	checklist usecase.ChecklistUsecase,
	apply usecase.ApplicationUsecase,
) *JobsHandler {
	return &JobsHandler{list: list, detail: detail, save: save, checklist: checklist, apply: apply}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Detail)
	r.Put("/:id", h.Update)
	r.Patch("/:id/checklist/:itemID", h.ToggleChecklistItem)
	r.Post("/:id/apply", h.Apply)
}

type checklistItemRequest struct {
	ID        *uuid.UUID `json:"id"`
	Label     string     `json:"label" validate:"required,min=1"`
	Completed bool       `json:"completed"`
}

type saveJobRequest struct {
	Title         string                 `json:"title" validate:"required,min=1"`
	Description   string                 `json:"description"`
	Guidelines    string                 `json:"guidelines"`
	GuidelinesURL *string                `json:"guidelines_url" validate:"omitempty,url"`
	GithubPRURL   *string                `json:"github_pr_url" validate:"omitempty,url"`
	Award         *float64               `json:"award" validate:"omitempty,gte=0"`
	Skills        []string               `json:"skills"`
	DueDate       *time.Time             `json:"due_date"`
	Category      *string                `json:"category" validate:"omitempty,oneof=review testing feature bugfix documentation"`
	Status        *string                `json:"status" validate:"omitempty,oneof=open in_progress completed"`
	Checklist     []checklistItemRequest `json:"checklist" validate:"omitempty,dive"`
	RepoName      string                 `json:"repo_name"`
	RepoURL       string                 `json:"repo_url" validate:"omitempty,url"`
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	params := usecase.JobListParams{
		Query:      c.Query("q"),
		Categories: splitCSV(c.Query("categories")),
	}

	items, err := h.list.ListJobs(c.Context(), params)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *JobsHandler) Detail(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var userID *uuid.UUID
	if uid, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); ok {
		userID = &uid
	}

	view, err := h.detail.GetJob(c.Context(), id, userID)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toJobResponse(view))
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	in, appErr := bindSaveJobRequest(c)
	if appErr != nil {
		return appErr
	}

	created, err := h.save.CreateJob(c.Context(), in)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	view := usecase.JobView{Job: created, CompletedCount: job.CompletedCount(created.Checklist)}
	return response.Success(c, fiber.StatusCreated, "created", toJobResponse(view))
}

func (h *JobsHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in, appErr := bindSaveJobRequest(c)
	if appErr != nil {
		return appErr
	}

	updated, err := h.save.UpdateJob(c.Context(), id, in)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	view := usecase.JobView{Job: updated, CompletedCount: job.CompletedCount(updated.Checklist)}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toJobResponse(view))
}

func (h *JobsHandler) ToggleChecklistItem(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	itemID, err := uuid.Parse(c.Params("itemID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, completed, err := h.checklist.ToggleItem(c.Context(), jobID, itemID)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	view := usecase.JobView{Job: updated, CompletedCount: completed}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toJobResponse(view))
}

func (h *JobsHandler) Apply(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	applicant := ""
	if email, ok := c.Locals(middleware.CtxEmailKey).(string); ok {
		applicant = email
	}

	if err := h.apply.Apply(c.Context(), jobID, applicant); err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusAccepted, "application received", nil)
}

func bindSaveJobRequest(c fiber.Ctx) (usecase.SaveJobInput, error) {
	var req saveJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return usecase.SaveJobInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(&req); err != nil {
		return usecase.SaveJobInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.SaveJobInput{
		Title:         req.Title,
		Description:   req.Description,
		Guidelines:    req.Guidelines,
		GuidelinesURL: req.GuidelinesURL,
		GithubPRURL:   req.GithubPRURL,
		Award:         req.Award,
		Skills:        req.Skills,
		DueDate:       req.DueDate,
		Category:      req.Category,
		Status:        req.Status,
		RepoName:      req.RepoName,
		RepoURL:       req.RepoURL,
	}
	for _, it := range req.Checklist {
		in.Checklist = append(in.Checklist, usecase.SaveChecklistItem{
			ID:        it.ID,
			Label:     it.Label,
			Completed: it.Completed,
		})
	}
	return in, nil
}

func toJobResponse(view usecase.JobView) dto.JobResponse {
	j := view.Job

	checklist := make([]dto.ChecklistItemResponse, 0, len(j.Checklist))
	for _, it := range j.Checklist {
		checklist = append(checklist, dto.ChecklistItemResponse{
			ID:        it.ID,
			Label:     it.Label,
			Completed: it.Completed,
		})
	}

	out := dto.JobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Description:    j.Description,
		Guidelines:     j.Guidelines,
		GuidelinesURL:  j.GuidelinesURL,
		GithubPRURL:    j.GithubPRURL,
		Award:          j.Award,
		Skills:         j.Skills,
		DueDate:        j.DueDate,
		Category:       string(j.Category),
		Status:         string(j.Status),
		Checklist:      checklist,
		CompletedCount: view.CompletedCount,
		RepoName:       j.RepoName,
		RepoURL:        j.RepoURL,
		CreatedAt:      j.CreatedAt,
	}

	if view.Match != nil {
		out.SkillMatch = &dto.SkillMatchResponse{
			MatchingSkills:  view.Match.MatchingSkills,
			MatchPercentage: view.Match.MatchPercentage,
		}
	}
	return out
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrChecklistItemNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Checklist item not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
