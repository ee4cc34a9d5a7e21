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

// EnrollmentHandler bundles repositories for enrollment endpoints.
// Users and exams are joined in for the view-all listing.
type EnrollmentHandler struct {
	Enrollments *repository.EnrollmentRepo
	Users       *repository.UserRepo
	Exams       *repository.ExamRepo
	Audit       *audit.Publisher
}

// NewEnrollmentHandler constructs an EnrollmentHandler and panics if
// any repository is missing.
func NewEnrollmentHandler(enrollments *repository.EnrollmentRepo, users *repository.UserRepo, exams *repository.ExamRepo, a *audit.Publisher) *EnrollmentHandler {
	if enrollments == nil || users == nil || exams == nil {
		panic("nil repository passed to NewEnrollmentHandler")
	}
	return &EnrollmentHandler{Enrollments: enrollments, Users: users, Exams: exams, Audit: a}
}

type enrollReq struct {
	ExamIDs []string `json:"exam_ids"`
}

// EnrollToExams handles POST /enrollments/enrollToExams. The stored
// exam id collection is a set: enrolling twice in the same exam leaves
// a single occurrence. The row is created on first enrollment and
// rewritten as a union afterwards. The read-then-write pair is not
// transactional; concurrent enrollments can lose updates (last writer
// wins at the remote store).
func (h *EnrollmentHandler) EnrollToExams(c echo.Context) error {
	id := ident(c)
	var req enrollReq
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body", err)
	}
	ids := cleanIDs(req.ExamIDs)
	if len(ids) == 0 {
		return response.Error(c, http.StatusBadRequest, "exam_ids is required", nil)
	}

	ctx := c.Request().Context()
	// Each requested exam must exist and be active.
	for _, examID := range ids {
		if _, err := h.Exams.GetActiveByID(ctx, examID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return response.Error(c, http.StatusNotFound, "exam not found: "+examID, nil)
			}
			return storeFail(c, "exams.get", err)
		}
	}

	existing, err := h.Enrollments.GetByUser(ctx, id.UserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return storeFail(c, "enrollments.get", err)
	}

	if existing == nil {
		created, err := h.Enrollments.Insert(ctx, &model.Enrollment{UserID: id.UserID, ExamIDs: ids})
		if err != nil {
			return storeFail(c, "enrollments.insert", err)
		}
		_ = h.Audit.Record(ctx, "enrollments", created.ID, "enrolled", id.UserID)
		return response.Success(c, http.StatusCreated, "enrolled", created)
	}

	merged := union(existing.ExamIDs, ids)
	updated, err := h.Enrollments.SetExamIDs(ctx, id.UserID, merged)
	if err != nil {
		return storeFail(c, "enrollments.update", err)
	}
	_ = h.Audit.Record(ctx, "enrollments", existing.ID, "enrolled", id.UserID)
	return response.Success(c, http.StatusOK, "enrolled", updated)
}

// UnenrollFromExam handles POST /enrollments/unenrollFromExam. The
// requested exam ids are removed from the stored collection; a user
// who never enrolled gets not found.
func (h *EnrollmentHandler) UnenrollFromExam(c echo.Context) error {
	id := ident(c)
	var req enrollReq
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body", err)
	}
	ids := cleanIDs(req.ExamIDs)
	if len(ids) == 0 {
		return response.Error(c, http.StatusBadRequest, "exam_ids is required", nil)
	}

	ctx := c.Request().Context()
	existing, err := h.Enrollments.GetByUser(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "no enrollment found for user", nil)
		}
		return storeFail(c, "enrollments.get", err)
	}

	remaining := difference(existing.ExamIDs, ids)
	updated, err := h.Enrollments.SetExamIDs(ctx, id.UserID, remaining)
	if err != nil {
		return storeFail(c, "enrollments.update", err)
	}
	_ = h.Audit.Record(ctx, "enrollments", existing.ID, "unenrolled", id.UserID)
	return response.Success(c, http.StatusOK, "unenrolled", updated)
}

// ViewMyEnrollments handles GET /enrollments/viewMyEnrollments?userId=.
// Viewing another user's enrollments requires an elevated role. A user
// with no enrollment row gets an empty list rather than an error.
func (h *EnrollmentHandler) ViewMyEnrollments(c echo.Context) error {
	id := ident(c)
	target := strings.TrimSpace(c.QueryParam("userId"))
	if target == "" {
		target = id.UserID
	}
	if target != id.UserID && !id.IsElevated() {
		return response.Error(c, http.StatusForbidden, "cannot view another user's enrollments", nil)
	}

	enrollment, err := h.Enrollments.GetByUser(c.Request().Context(), target)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Success(c, http.StatusOK, "no enrollments", nil)
		}
		return storeFail(c, "enrollments.get", err)
	}
	return response.Success(c, http.StatusOK, "enrollments fetched", enrollment)
}

// ViewAllEnrollments handles GET /enrollments/viewAllEnrollments. The
// route is gated to non-student roles. Each enrollment is joined with
// its user row and exam detail via sequential per-id fetches, one
// call per referenced row, because the remote store offers no join.
func (h *EnrollmentHandler) ViewAllEnrollments(c echo.Context) error {
	ctx := c.Request().Context()
	enrollments, err := h.Enrollments.ListAll(ctx)
	if err != nil {
		return storeFail(c, "enrollments.list", err)
	}

	out := []model.EnrollmentDetail{}
	for _, e := range enrollments {
		detail := model.EnrollmentDetail{Enrollment: e, Exams: []model.Exam{}}
		if u, err := h.Users.GetByID(ctx, e.UserID); err == nil {
			detail.User = u
		} else if !errors.Is(err, repository.ErrNotFound) {
			return storeFail(c, "users.get", err)
		}
		for _, examID := range e.ExamIDs {
			exam, err := h.Exams.GetActiveByID(ctx, examID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					continue // exam soft deleted since enrollment
				}
				return storeFail(c, "exams.get", err)
			}
			detail.Exams = append(detail.Exams, *exam)
		}
		out = append(out, detail)
	}
	return response.Success(c, http.StatusOK, "enrollments fetched", list(out))
}

// cleanIDs trims and deduplicates an id list, dropping empties.
func cleanIDs(ids []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// union merges two id lists preserving the order of first appearance.
func union(a, b []string) []string {
	return cleanIDs(append(append([]string{}, a...), b...))
}

// difference returns the ids of a that are not in b. The result is
// never nil so the stored collection stays a JSON array.
func difference(a, b []string) []string {
	drop := map[string]bool{}
	for _, id := range b {
		drop[id] = true
	}
	out := []string{}
	for _, id := range a {
		if !drop[id] {
			out = append(out, id)
		}
	}
	return out
}
