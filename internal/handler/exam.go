package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/craftedbyaditya/practice-questions-backend/internal/model"
	"github.com/craftedbyaditya/practice-questions-backend/internal/repository"
	"github.com/craftedbyaditya/practice-questions-backend/internal/response"
	audit "github.com/craftedbyaditya/practice-questions-backend/internal/service"
)

// ExamHandler bundles repositories for exam endpoints. Subjects and
// topics are needed for the nested exam read.
type ExamHandler struct {
	Exams    *repository.ExamRepo
	Subjects *repository.SubjectRepo
	Topics   *repository.TopicRepo
	Users    *repository.UserRepo
	Audit    *audit.Publisher
}

// NewExamHandler constructs an ExamHandler and panics if any
// repository is missing.
func NewExamHandler(exams *repository.ExamRepo, subjects *repository.SubjectRepo, topics *repository.TopicRepo, users *repository.UserRepo, a *audit.Publisher) *ExamHandler {
	if exams == nil || subjects == nil || topics == nil || users == nil {
		panic("nil repository passed to NewExamHandler")
	}
	return &ExamHandler{Exams: exams, Subjects: subjects, Topics: topics, Users: users, Audit: a}
}

type createExamReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateExam handles POST /exams/createExam. The route is gated to the
// authorized creator roles; the handler validates the payload, checks
// that the requester is a registered user, and inserts the row with
// the requester as owner.
func (h *ExamHandler) CreateExam(c echo.Context) error {
	id := ident(c)
	var req createExamReq
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body", err)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return response.Error(c, http.StatusBadRequest, "name is required", nil)
	}

	ctx := c.Request().Context()
	if _, err := h.Users.GetByID(ctx, id.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusUnauthorized, "requester is not a registered user", nil)
		}
		return storeFail(c, "users.get", err)
	}

	exam := &model.Exam{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		UserID:      id.UserID,
		IsActive:    true,
	}
	created, err := h.Exams.Create(ctx, exam)
	if err != nil {
		return storeFail(c, "exams.create", err)
	}
	_ = h.Audit.Record(ctx, "exams", created.ID, "created", id.UserID)
	return response.Success(c, http.StatusCreated, "exam created", created)
}

// GetAllExams handles GET /exams/getAllExams. Soft-deleted exams never
// appear here.
func (h *ExamHandler) GetAllExams(c echo.Context) error {
	exams, err := h.Exams.ListActive(c.Request().Context(), nil)
	if err != nil {
		return storeFail(c, "exams.list", err)
	}
	return response.Success(c, http.StatusOK, "exams fetched", list(exams))
}

// GetExamByID handles GET /exams/getExamById/:id.
func (h *ExamHandler) GetExamByID(c echo.Context) error {
	exam, err := h.Exams.GetActiveByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "exam not found", nil)
		}
		return storeFail(c, "exams.get", err)
	}
	return response.Success(c, http.StatusOK, "exam fetched", exam)
}

// GetExamsByUser handles GET /exams/getExamsByUser?userId=. Without a
// userId the requester's own exams are listed; another user's exams
// require an elevated role.
func (h *ExamHandler) GetExamsByUser(c echo.Context) error {
	id := ident(c)
	target := strings.TrimSpace(c.QueryParam("userId"))
	if target == "" {
		target = id.UserID
	}
	if target != id.UserID && !id.IsElevated() {
		return response.Error(c, http.StatusForbidden, "cannot view another user's exams", nil)
	}
	exams, err := h.Exams.ListActiveByOwner(c.Request().Context(), target)
	if err != nil {
		return storeFail(c, "exams.listByOwner", err)
	}
	return response.Success(c, http.StatusOK, "exams fetched", list(exams))
}

// GetExamWithSubjectsAndTopics handles
// GET /exams/getExamWithSubjectsAndTopics/:id. The nested structure is
// assembled from sequential fetches: one for the exam, one for its
// active subjects, then one per subject for its active topics. The
// remote store offers no join, so the call count grows with the
// subject count.
func (h *ExamHandler) GetExamWithSubjectsAndTopics(c echo.Context) error {
	ctx := c.Request().Context()
	exam, err := h.Exams.GetActiveByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "exam not found", nil)
		}
		return storeFail(c, "exams.get", err)
	}

	subjects, err := h.Subjects.ListActiveByExam(ctx, exam.ID)
	if err != nil {
		return storeFail(c, "subjects.listByExam", err)
	}

	out := model.ExamWithSubjects{Exam: *exam, Subjects: []model.SubjectWithTopics{}}
	for _, s := range subjects {
		topics, err := h.Topics.ListActiveBySubject(ctx, s.ID)
		if err != nil {
			return storeFail(c, "topics.listBySubject", err)
		}
		out.Subjects = append(out.Subjects, model.SubjectWithTopics{Subject: s, Topics: topics})
	}
	return response.Success(c, http.StatusOK, "exam fetched", out)
}

type updateExamReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateExam handles PUT /exams/updateExam/:id. Only the owner or an
// elevated caller may update, and only the fields present in the body
// are written.
func (h *ExamHandler) UpdateExam(c echo.Context) error {
	id := ident(c)
	ctx := c.Request().Context()

	exam, err := h.Exams.GetActiveByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "exam not found", nil)
		}
		return storeFail(c, "exams.get", err)
	}
	if !id.CanManage(exam.UserID) {
		return response.Error(c, http.StatusForbidden, "only the owner or an admin can update this exam", nil)
	}

	var req updateExamReq
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body", err)
	}
	patch := map[string]any{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return response.Error(c, http.StatusBadRequest, "name cannot be empty", nil)
		}
		patch["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if len(patch) == 0 {
		return response.Error(c, http.StatusBadRequest, "no fields to update", nil)
	}

	updated, err := h.Exams.Update(ctx, exam.ID, patch)
	if err != nil {
		return storeFail(c, "exams.update", err)
	}
	_ = h.Audit.Record(ctx, "exams", exam.ID, "updated", id.UserID)
	return response.Success(c, http.StatusOK, "exam updated", updated)
}

// DeleteExam handles DELETE /exams/deleteExam/:id. Deletion is a soft
// delete: both flags flip and the row stays. A second delete of the
// same id reports not found because only active rows match.
func (h *ExamHandler) DeleteExam(c echo.Context) error {
	id := ident(c)
	ctx := c.Request().Context()

	exam, err := h.Exams.GetActiveByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "exam not found", nil)
		}
		return storeFail(c, "exams.get", err)
	}
	if !id.CanManage(exam.UserID) {
		return response.Error(c, http.StatusForbidden, "only the owner or an admin can delete this exam", nil)
	}

	if err := h.Exams.SoftDelete(ctx, exam.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "exam not found", nil)
		}
		return storeFail(c, "exams.delete", err)
	}
	_ = h.Audit.Record(ctx, "exams", exam.ID, "deleted", id.UserID)
	return response.Success(c, http.StatusOK, "exam deleted", map[string]string{"id": exam.ID})
}
