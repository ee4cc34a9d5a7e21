package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftedbyaditya/practice-questions-backend/internal/model"
	"github.com/craftedbyaditya/practice-questions-backend/internal/response"
)

func createExam(t *testing.T, ev *env, uid, name string) model.Exam {
	t.Helper()
	rec, body := ev.call(t, ev.exams.CreateExam, http.MethodPost, "/exams/createExam",
		`{"name":"`+name+`"}`, uid, "teacher")
	require.Equal(t, http.StatusCreated, rec.Code)

	var rows []model.Exam
	body.dataInto(t, &rows)
	require.Len(t, rows, 1)
	return rows[0]
}

func listExamIDs(t *testing.T, ev *env) []string {
	t.Helper()
	rec, body := ev.call(t, ev.exams.GetAllExams, http.MethodGet, "/exams/getAllExams", "", "U1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var pages []struct {
		Items []model.Exam `json:"items"`
		Count int          `json:"count"`
	}
	body.dataInto(t, &pages)
	require.Len(t, pages, 1)
	require.Equal(t, len(pages[0].Items), pages[0].Count)

	ids := []string{}
	for _, e := range pages[0].Items {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestExamLifecycle(t *testing.T) {
	ev := newEnv(t)
	ev.seedUser("U1", "teacher")

	exam := createExam(t, ev, "U1", "Physics")
	assert.Equal(t, "U1", exam.UserID, "creator becomes owner")
	assert.True(t, exam.IsActive)
	assert.False(t, exam.IsDeleted)
	require.NotEmpty(t, exam.ID)

	assert.Contains(t, listExamIDs(t, ev), exam.ID)

	rec, body := ev.call(t, ev.exams.DeleteExam, http.MethodDelete, "/exams/deleteExam/"+exam.ID,
		"", "U1", "teacher", "id", exam.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, response.StatusSuccess, body.Status)

	assert.NotContains(t, listExamIDs(t, ev), exam.ID, "soft-deleted exams vanish from listings")

	// The row itself survives with both flags flipped.
	rows := ev.fs.rows("exams")
	require.Len(t, rows, 1)
	assert.Equal(t, true, rows[0]["is_deleted"])
	assert.Equal(t, false, rows[0]["is_active"])

	// Deleting again only sees active rows, so the id is gone.
	rec, body = ev.call(t, ev.exams.DeleteExam, http.MethodDelete, "/exams/deleteExam/"+exam.ID,
		"", "U1", "teacher", "id", exam.ID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.StatusFailure, body.Status)
}

func TestCreateExamValidation(t *testing.T) {
	ev := newEnv(t)
	ev.seedUser("U1", "teacher")

	rec, _ := ev.call(t, ev.exams.CreateExam, http.MethodPost, "/exams/createExam",
		`{"name":"   "}`, "U1", "teacher")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// A caller with the right role but no user row cannot create.
	rec, body := ev.call(t, ev.exams.CreateExam, http.MethodPost, "/exams/createExam",
		`{"name":"Physics"}`, "ghost", "teacher")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "requester is not a registered user", body.Message)
}

func TestExamOwnership(t *testing.T) {
	ev := newEnv(t)
	ev.seedUser("U1", "teacher")
	ev.seedUser("U2", "teacher")
	exam := createExam(t, ev, "U1", "Physics")

	// Another teacher cannot touch it.
	rec, _ := ev.call(t, ev.exams.UpdateExam, http.MethodPut, "/exams/updateExam/"+exam.ID,
		`{"name":"Chemistry"}`, "U2", "teacher", "id", exam.ID)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = ev.call(t, ev.exams.DeleteExam, http.MethodDelete, "/exams/deleteExam/"+exam.ID,
		"", "U2", "teacher", "id", exam.ID)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// An admin who is not the owner can.
	rec, body := ev.call(t, ev.exams.UpdateExam, http.MethodPut, "/exams/updateExam/"+exam.ID,
		`{"name":"Chemistry"}`, "U3", "admin", "id", exam.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []model.Exam
	body.dataInto(t, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Chemistry", rows[0].Name)
	assert.Equal(t, "U1", rows[0].UserID, "ownership does not transfer on update")
}

func TestUpdateExamPartialPatch(t *testing.T) {
	ev := newEnv(t)
	ev.seedUser("U1", "teacher")
	exam := createExam(t, ev, "U1", "Physics")

	rec, body := ev.call(t, ev.exams.UpdateExam, http.MethodPut, "/exams/updateExam/"+exam.ID,
		`{"description":"mechanics and waves"}`, "U1", "teacher", "id", exam.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []model.Exam
	body.dataInto(t, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Physics", rows[0].Name, "absent fields stay untouched")
	assert.Equal(t, "mechanics and waves", rows[0].Description)

	rec, _ = ev.call(t, ev.exams.UpdateExam, http.MethodPut, "/exams/updateExam/"+exam.ID,
		`{}`, "U1", "teacher", "id", exam.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "empty patch is rejected")

	rec, _ = ev.call(t, ev.exams.UpdateExam, http.MethodPut, "/exams/updateExam/"+exam.ID,
		`{"name":""}`, "U1", "teacher", "id", exam.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "name cannot be blanked")
}

func TestGetExamsByUserVisibility(t *testing.T) {
	ev := newEnv(t)
	ev.seedUser("U1", "teacher")
	ev.seedUser("U2", "teacher")
	createExam(t, ev, "U1", "Physics")
	createExam(t, ev, "U2", "Biology")

	// Own exams without a query param.
	rec, body := ev.call(t, ev.exams.GetExamsByUser, http.MethodGet, "/exams/getExamsByUser", "", "U1", "teacher")
	require.Equal(t, http.StatusOK, rec.Code)
	var pages []struct {
		Items []model.Exam `json:"items"`
	}
	body.dataInto(t, &pages)
	require.Len(t, pages, 1)
	require.Len(t, pages[0].Items, 1)
	assert.Equal(t, "Physics", pages[0].Items[0].Name)

	// Peeking at another user requires admin.
	rec, _ = ev.call(t, ev.exams.GetExamsByUser, http.MethodGet, "/exams/getExamsByUser?userId=U2", "", "U1", "teacher")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = ev.call(t, ev.exams.GetExamsByUser, http.MethodGet, "/exams/getExamsByUser?userId=U2", "", "U3", "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetExamWithSubjectsAndTopics(t *testing.T) {
	ev := newEnv(t)
	ev.seedUser("U1", "teacher")
	exam := createExam(t, ev, "U1", "Physics")

	ev.fs.seed("subjects", map[string]any{
		"id": "s1", "name": "Mechanics", "exam_id": exam.ID,
		"user_id": "U1", "is_active": true, "is_deleted": false,
	})
	ev.fs.seed("subjects", map[string]any{
		"id": "s2", "name": "Optics", "exam_id": exam.ID,
		"user_id": "U1", "is_active": false, "is_deleted": true,
	})
	ev.fs.seed("topics", map[string]any{
		"id": "t1", "name": "Kinematics", "subject_id": "s1",
		"user_id": "U1", "is_active": true, "is_deleted": false,
	})

	rec, body := ev.call(t, ev.exams.GetExamWithSubjectsAndTopics, http.MethodGet,
		"/exams/getExamWithSubjectsAndTopics/"+exam.ID, "", "U1", "", "id", exam.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []model.ExamWithSubjects
	body.dataInto(t, &rows)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Subjects, 1, "soft-deleted subjects are excluded")
	assert.Equal(t, "Mechanics", rows[0].Subjects[0].Name)
	require.Len(t, rows[0].Subjects[0].Topics, 1)
	assert.Equal(t, "Kinematics", rows[0].Subjects[0].Topics[0].Name)
}

func TestGetExamByIDNotFound(t *testing.T) {
	ev := newEnv(t)
	rec, body := ev.call(t, ev.exams.GetExamByID, http.MethodGet, "/exams/getExamById/nope",
		"", "U1", "", "id", "nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.StatusFailure, body.Status)
}
