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

// TopicHandler bundles repositories for topic endpoints. Subjects are
// needed to validate the parent and to resolve topics-by-exam.
type TopicHandler struct {
	Topics   *repository.TopicRepo
	Subjects *repository.SubjectRepo
	Users    *repository.UserRepo
	Audit    *audit.Publisher
}

// NewTopicHandler constructs a TopicHandler and panics if any
// repository is missing.
func NewTopicHandler(topics *repository.TopicRepo, subjects *repository.SubjectRepo, users *repository.UserRepo, a *audit.Publisher) *TopicHandler {
	if topics == nil || subjects == nil || users == nil {
		panic("nil repository passed to NewTopicHandler")
	}
	return &TopicHandler{Topics: topics, Subjects: subjects, Users: users, Audit: a}
}

type createTopicReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SubjectID   string `json:"subject_id"`
}

// CreateTopic handles POST /topics/createTopic. Topic names must be
// unique within their subject; the check runs before the insert, so a
// concurrent duplicate can still race through (accepted weakness).
func (h *TopicHandler) CreateTopic(c echo.Context) error {
	id := ident(c)
	var req createTopicReq
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body", err)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return response.Error(c, http.StatusBadRequest, "name is required", nil)
	}
	subjectID := strings.TrimSpace(req.SubjectID)
	if subjectID == "" {
		return response.Error(c, http.StatusBadRequest, "subject_id is required", nil)
	}

	ctx := c.Request().Context()
	if _, err := h.Users.GetByID(ctx, id.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusUnauthorized, "requester is not a registered user", nil)
		}
		return storeFail(c, "users.get", err)
	}
	if _, err := h.Subjects.GetActiveByID(ctx, subjectID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "subject not found", nil)
		}
		return storeFail(c, "subjects.get", err)
	}
	exists, err := h.Topics.NameExists(ctx, subjectID, name)
	if err != nil {
		return storeFail(c, "topics.nameExists", err)
	}
	if exists {
		return response.Error(c, http.StatusConflict, "a topic with this name already exists in the subject", nil)
	}

	topic := &model.Topic{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		UserID:      id.UserID,
		SubjectID:   subjectID,
		IsActive:    true,
	}
	created, err := h.Topics.Create(ctx, topic)
	if err != nil {
		return storeFail(c, "topics.create", err)
	}
	_ = h.Audit.Record(ctx, "topics", created.ID, "created", id.UserID)
	return response.Success(c, http.StatusCreated, "topic created", created)
}

// GetAllTopics handles GET /topics/getAllTopics.
func (h *TopicHandler) GetAllTopics(c echo.Context) error {
	topics, err := h.Topics.ListActive(c.Request().Context(), nil)
	if err != nil {
		return storeFail(c, "topics.list", err)
	}
	return response.Success(c, http.StatusOK, "topics fetched", list(topics))
}

// GetTopicByID handles GET /topics/getTopicById/:id.
func (h *TopicHandler) GetTopicByID(c echo.Context) error {
	topic, err := h.Topics.GetActiveByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "topic not found", nil)
		}
		return storeFail(c, "topics.get", err)
	}
	return response.Success(c, http.StatusOK, "topic fetched", topic)
}

// GetTopicsBySubject handles GET /topics/getTopicsBySubject/:subjectId.
func (h *TopicHandler) GetTopicsBySubject(c echo.Context) error {
	topics, err := h.Topics.ListActiveBySubject(c.Request().Context(), c.Param("subjectId"))
	if err != nil {
		return storeFail(c, "topics.listBySubject", err)
	}
	return response.Success(c, http.StatusOK, "topics fetched", list(topics))
}

// GetTopicsByExam handles GET /topics/getTopicsByExam/:examId. Topics
// hang off subjects, so the exam's active subjects are fetched first
// and then each subject's topics in turn, one sequential call per
// subject.
func (h *TopicHandler) GetTopicsByExam(c echo.Context) error {
	ctx := c.Request().Context()
	subjects, err := h.Subjects.ListActiveByExam(ctx, c.Param("examId"))
	if err != nil {
		return storeFail(c, "subjects.listByExam", err)
	}
	topics := []model.Topic{}
	for _, s := range subjects {
		ts, err := h.Topics.ListActiveBySubject(ctx, s.ID)
		if err != nil {
			return storeFail(c, "topics.listBySubject", err)
		}
		topics = append(topics, ts...)
	}
	return response.Success(c, http.StatusOK, "topics fetched", list(topics))
}

type updateTopicReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateTopic handles PUT /topics/updateTopic/:id with the shared
// ownership rule. A name change re-checks uniqueness in the subject.
func (h *TopicHandler) UpdateTopic(c echo.Context) error {
	id := ident(c)
	ctx := c.Request().Context()

	topic, err := h.Topics.GetActiveByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "topic not found", nil)
		}
		return storeFail(c, "topics.get", err)
	}
	if !id.CanManage(topic.UserID) {
		return response.Error(c, http.StatusForbidden, "only the owner or an admin can update this topic", nil)
	}

	var req updateTopicReq
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body", err)
	}
	patch := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return response.Error(c, http.StatusBadRequest, "name cannot be empty", nil)
		}
		if name != topic.Name {
			exists, err := h.Topics.NameExists(ctx, topic.SubjectID, name)
			if err != nil {
				return storeFail(c, "topics.nameExists", err)
			}
			if exists {
				return response.Error(c, http.StatusConflict, "a topic with this name already exists in the subject", nil)
			}
		}
		patch["name"] = name
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if len(patch) == 0 {
		return response.Error(c, http.StatusBadRequest, "no fields to update", nil)
	}

	updated, err := h.Topics.Update(ctx, topic.ID, patch)
	if err != nil {
		return storeFail(c, "topics.update", err)
	}
	_ = h.Audit.Record(ctx, "topics", topic.ID, "updated", id.UserID)
	return response.Success(c, http.StatusOK, "topic updated", updated)
}

// DeleteTopic handles DELETE /topics/deleteTopic/:id (soft delete,
// owner or admin only).
func (h *TopicHandler) DeleteTopic(c echo.Context) error {
	id := ident(c)
	ctx := c.Request().Context()

	topic, err := h.Topics.GetActiveByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "topic not found", nil)
		}
		return storeFail(c, "topics.get", err)
	}
	if !id.CanManage(topic.UserID) {
		return response.Error(c, http.StatusForbidden, "only the owner or an admin can delete this topic", nil)
	}

	if err := h.Topics.SoftDelete(ctx, topic.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "topic not found", nil)
		}
		return storeFail(c, "topics.delete", err)
	}
	_ = h.Audit.Record(ctx, "topics", topic.ID, "deleted", id.UserID)
	return response.Success(c, http.StatusOK, "topic deleted", map[string]string{"id": topic.ID})
}
