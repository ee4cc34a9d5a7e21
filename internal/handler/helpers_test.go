package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/craftedbyaditya/practice-questions-backend/internal/auth"
	"github.com/craftedbyaditya/practice-questions-backend/internal/middleware"
	"github.com/craftedbyaditya/practice-questions-backend/internal/repository"
	"github.com/craftedbyaditya/practice-questions-backend/internal/store"
)

// env bundles a fake store and every repository-backed handler for the
// controller tests. The audit publisher is nil throughout: events are
// dropped and no broker is needed.
type env struct {
	fs           *fakeStore
	auth         *AuthHandler
	users        *UserHandler
	exams        *ExamHandler
	subjects     *SubjectHandler
	topics       *TopicHandler
	enrollments  *EnrollmentHandler
	translations *TranslationHandler
}

func newEnv(t *testing.T) *env {
	t.Helper()
	fs := newFakeStore()
	t.Cleanup(fs.Close)

	st := store.New(fs.URL(), "test-key")
	users := repository.NewUserRepo(st)
	exams := repository.NewExamRepo(st)
	subjects := repository.NewSubjectRepo(st)
	topics := repository.NewTopicRepo(st)
	enrollments := repository.NewEnrollmentRepo(st)
	translations := repository.NewTranslationRepo(st)

	return &env{
		fs:           fs,
		auth:         NewAuthHandler(users, nil),
		users:        NewUserHandler(users, nil),
		exams:        NewExamHandler(exams, subjects, topics, users, nil),
		subjects:     NewSubjectHandler(subjects, exams, users, nil),
		topics:       NewTopicHandler(topics, subjects, users, nil),
		enrollments:  NewEnrollmentHandler(enrollments, users, exams, nil),
		translations: NewTranslationHandler(translations, nil),
	}
}

// seedUser registers a user row so ownership and requester checks pass.
func (ev *env) seedUser(userID string, roles ...string) {
	row := map[string]any{"user_id": userID, "name": "user " + userID}
	if len(roles) > 0 {
		rs := make([]any, len(roles))
		for i, r := range roles {
			rs[i] = r
		}
		row["role"] = rs
	}
	ev.fs.seed("users", row)
}

// call invokes a handler as a request from uid with the given roles.
// Path parameters are given as alternating name/value pairs.
func (ev *env) call(t *testing.T, h echo.HandlerFunc, method, target, body, uid, roles string, params ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if uid != "" {
		req.Header.Set(auth.HeaderUserID, uid)
	}
	if roles != "" {
		req.Header.Set(auth.HeaderRoles, roles)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.Zero(t, len(params)%2, "params must be name/value pairs")
	names := make([]string, 0, len(params)/2)
	values := make([]string, 0, len(params)/2)
	for i := 0; i < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	wrapped := middleware.AttachIdentity(auth.HeaderProvider{})(h)
	require.NoError(t, wrapped(c))

	var out envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

// envelope mirrors the response wire shape with raw data for
// per-test decoding.
type envelope struct {
	Status    string          `json:"status"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
	Error     string          `json:"error,omitempty"`
}

// dataInto decodes the envelope data list into dest.
func (e envelope) dataInto(t *testing.T, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(e.Data, dest))
}
