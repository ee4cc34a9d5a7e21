// Package router defines how HTTP routes are registered for the API.
// Every resource group lives under the /api/v1 base path. Role policy
// is declared here, next to the routes it protects, so the full
// authorization surface is readable in one file.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/craftedbyaditya/practice-questions-backend/internal/auth"
	"github.com/craftedbyaditya/practice-questions-backend/internal/handler"
	"github.com/craftedbyaditya/practice-questions-backend/internal/middleware"
)

// creatorRoles may create and manage exams, subjects and topics.
// Ownership is still enforced per row inside the handlers; admin alone
// is exempt from it.
var creatorRoles = []string{auth.RoleTeacher, auth.RoleOrg, auth.RoleAdmin}

// cmsRoles may manage CMS translation keys.
var cmsRoles = []string{auth.RoleAdmin, auth.RoleTeacher}

// Handlers collects the resource controllers the router wires up.
type Handlers struct {
	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Exams        *handler.ExamHandler
	Subjects     *handler.SubjectHandler
	Topics       *handler.TopicHandler
	Enrollments  *handler.EnrollmentHandler
	Translations *handler.TranslationHandler
}

// RegisterRoutes registers every application route on the provided
// Echo instance. The health endpoint stays outside the base group so
// probes skip identity resolution.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", handler.Health)

	api := e.Group("/api/v1")

	// Authenticate is the entry point for the upstream gateway and is
	// deliberately ungated: it upserts the profile of whoever the
	// gateway already verified.
	api.POST("/auth/authenticate", h.Auth.Authenticate)

	users := api.Group("/users")
	users.GET("/profile", h.Users.Profile)
	users.GET("/allUsers", h.Users.AllUsers, middleware.RequireRoles(auth.RoleAdmin))
	users.PUT("/updateProfile", h.Users.UpdateProfile)

	exams := api.Group("/exams")
	exams.POST("/createExam", h.Exams.CreateExam, middleware.RequireRoles(creatorRoles...))
	exams.GET("/getAllExams", h.Exams.GetAllExams)
	exams.GET("/getExamById/:id", h.Exams.GetExamByID)
	exams.GET("/getExamsByUser", h.Exams.GetExamsByUser)
	exams.GET("/getExamWithSubjectsAndTopics/:id", h.Exams.GetExamWithSubjectsAndTopics)
	exams.PUT("/updateExam/:id", h.Exams.UpdateExam, middleware.RequireRoles(creatorRoles...))
	exams.DELETE("/deleteExam/:id", h.Exams.DeleteExam, middleware.RequireRoles(creatorRoles...))

	subjects := api.Group("/subjects")
	subjects.POST("/createSubject", h.Subjects.CreateSubject, middleware.RequireRoles(creatorRoles...))
	subjects.GET("/getAllSubjects", h.Subjects.GetAllSubjects)
	subjects.GET("/getSubjectById/:id", h.Subjects.GetSubjectByID)
	subjects.GET("/getSubjectsByExam/:examId", h.Subjects.GetSubjectsByExam)
	subjects.PUT("/updateSubject/:id", h.Subjects.UpdateSubject, middleware.RequireRoles(creatorRoles...))
	subjects.DELETE("/deleteSubject/:id", h.Subjects.DeleteSubject, middleware.RequireRoles(creatorRoles...))

	topics := api.Group("/topics")
	topics.POST("/createTopic", h.Topics.CreateTopic, middleware.RequireRoles(creatorRoles...))
	topics.GET("/getAllTopics", h.Topics.GetAllTopics)
	topics.GET("/getTopicById/:id", h.Topics.GetTopicByID)
	topics.GET("/getTopicsBySubject/:subjectId", h.Topics.GetTopicsBySubject)
	topics.GET("/getTopicsByExam/:examId", h.Topics.GetTopicsByExam)
	topics.PUT("/updateTopic/:id", h.Topics.UpdateTopic, middleware.RequireRoles(creatorRoles...))
	topics.DELETE("/deleteTopic/:id", h.Topics.DeleteTopic, middleware.RequireRoles(creatorRoles...))

	enrollments := api.Group("/enrollments")
	enrollments.POST("/enrollToExams", h.Enrollments.EnrollToExams)
	enrollments.POST("/unenrollFromExam", h.Enrollments.UnenrollFromExam)
	enrollments.GET("/viewMyEnrollments", h.Enrollments.ViewMyEnrollments)
	enrollments.GET("/viewAllEnrollments", h.Enrollments.ViewAllEnrollments,
		middleware.RequireRoles(auth.RoleTeacher, auth.RoleOrg, auth.RoleAdmin))

	translations := api.Group("/translations")
	translations.POST("/addCmsKey", h.Translations.AddCmsKey, middleware.RequireRoles(cmsRoles...))
	translations.POST("/bulkAddCmsKey", h.Translations.BulkAddCmsKey, middleware.RequireRoles(cmsRoles...))
	translations.GET("/allTranslations", h.Translations.AllTranslations, middleware.RequireRoles(cmsRoles...))
	translations.PUT("/updateTranslation/:id", h.Translations.UpdateTranslation, middleware.RequireRoles(cmsRoles...))
	translations.DELETE("/deleteTranslationKey/:id", h.Translations.DeleteTranslationKey, middleware.RequireRoles(cmsRoles...))
	// Language reads are public so client apps can load copy before
	// any identity exists. Registered last: the literal routes above
	// win over the parameter route.
	translations.GET("/:language", h.Translations.ByLanguage)
}
