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

// SubjectHandler bundles repositories for subject endpoints. The exam
// repo validates the parent on creation.
type SubjectHandler struct {
	Subjects *repository.SubjectRepo
	Exams    *repository.ExamRepo
	Users    *repository.UserRepo
	Audit    *audit.Publisher
}

// NewSubjectHandler constructs a SubjectHandler and panics if any
// repository is missing.
func NewSubjectHandler(subjects *repository.SubjectRepo, exams *repository.ExamRepo, users *repository.UserRepo, a *audit.Publisher) *SubjectHandler {
	if subjects == nil || exams == nil || users == nil {
		panic("nil repository passed to NewSubjectHandler")
	}
	return &SubjectHandler{Subjects: subjects, Exams: exams, Users: users, Audit: a}
}

type createSubjectReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ExamID      string `json:"exam_id"`
}

// CreateSubject handles POST /subjects/createSubject. The parent exam
// must exist and be active.
func (h *SubjectHandler) CreateSubject(c echo.Context) error {
	id := ident(c)
	var req createSubjectReq
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body", err)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return response.Error(c, http.StatusBadRequest, "name is required", nil)
	}
	examID := strings.TrimSpace(req.ExamID)
	if examID == "" {
		return response.Error(c, http.StatusBadRequest, "exam_id is required", nil)
	}

	ctx := c.Request().Context()
	if _, err := h.Users.GetByID(ctx, id.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusUnauthorized, "requester is not a registered user", nil)
		}
		return storeFail(c, "users.get", err)
	}
	if _, err := h.Exams.GetActiveByID(ctx, examID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "exam not found", nil)
		}
		return storeFail(c, "exams.get", err)
	}

	subject := &model.Subject{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		UserID:      id.UserID,
		ExamID:      examID,
		IsActive:    true,
	}
	created, err := h.Subjects.Create(ctx, subject)
	if err != nil {
		return storeFail(c, "subjects.create", err)
	}
	_ = h.Audit.Record(ctx, "subjects", created.ID, "created", id.UserID)
	return response.Success(c, http.StatusCreated, "subject created", created)
}

// GetAllSubjects handles GET /subjects/getAllSubjects.
func (h *SubjectHandler) GetAllSubjects(c echo.Context) error {
	subjects, err := h.Subjects.ListActive(c.Request().Context(), nil)
	if err != nil {
		return storeFail(c, "subjects.list", err)
	}
	return response.Success(c, http.StatusOK, "subjects fetched", list(subjects))
}

// GetSubjectByID handles GET /subjects/getSubjectById/:id.
func (h *SubjectHandler) GetSubjectByID(c echo.Context) error {
	subject, err := h.Subjects.GetActiveByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "subject not found", nil)
		}
		return storeFail(c, "subjects.get", err)
	}
	return response.Success(c, http.StatusOK, "subject fetched", subject)
}

// GetSubjectsByExam handles GET /subjects/getSubjectsByExam/:examId.
func (h *SubjectHandler) GetSubjectsByExam(c echo.Context) error {
	subjects, err := h.Subjects.ListActiveByExam(c.Request().Context(), c.Param("examId"))
	if err != nil {
		return storeFail(c, "subjects.listByExam", err)
	}
	return response.Success(c, http.StatusOK, "subjects fetched", list(subjects))
}

type updateSubjectReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateSubject handles PUT /subjects/updateSubject/:id with the same
// ownership rule as exams.
func (h *SubjectHandler) UpdateSubject(c echo.Context) error {
	id := ident(c)
	ctx := c.Request().Context()

	subject, err := h.Subjects.GetActiveByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "subject not found", nil)
		}
		return storeFail(c, "subjects.get", err)
	}
	if !id.CanManage(subject.UserID) {
		return response.Error(c, http.StatusForbidden, "only the owner or an admin can update this subject", nil)
	}

	var req updateSubjectReq
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

	updated, err := h.Subjects.Update(ctx, subject.ID, patch)
	if err != nil {
		return storeFail(c, "subjects.update", err)
	}
	_ = h.Audit.Record(ctx, "subjects", subject.ID, "updated", id.UserID)
	return response.Success(c, http.StatusOK, "subject updated", updated)
}

// DeleteSubject handles DELETE /subjects/deleteSubject/:id (soft
// delete, owner or admin only).
func (h *SubjectHandler) DeleteSubject(c echo.Context) error {
	id := ident(c)
	ctx := c.Request().Context()

	subject, err := h.Subjects.GetActiveByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "subject not found", nil)
		}
		return storeFail(c, "subjects.get", err)
	}
	if !id.CanManage(subject.UserID) {
		return response.Error(c, http.StatusForbidden, "only the owner or an admin can delete this subject", nil)
	}

	if err := h.Subjects.SoftDelete(ctx, subject.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "subject not found", nil)
		}
		return storeFail(c, "subjects.delete", err)
	}
	_ = h.Audit.Record(ctx, "subjects", subject.ID, "deleted", id.UserID)
	return response.Success(c, http.StatusOK, "subject deleted", map[string]string{"id": subject.ID})
}
