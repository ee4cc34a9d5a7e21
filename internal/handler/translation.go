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

// TranslationHandler bundles dependencies for CMS translation
// endpoints.
type TranslationHandler struct {
	Translations *repository.TranslationRepo
	Audit        *audit.Publisher
}

// NewTranslationHandler constructs a TranslationHandler and panics if
// the translation repository is missing.
func NewTranslationHandler(translations *repository.TranslationRepo, a *audit.Publisher) *TranslationHandler {
	if translations == nil {
		panic("nil repository passed to NewTranslationHandler")
	}
	return &TranslationHandler{Translations: translations, Audit: a}
}

type translationReq struct {
	Key         string `json:"key"`
	En          string `json:"en"`
	Hi          string `json:"hi"`
	Base        string `json:"base"`
	IsPublished bool   `json:"is_published"`
}

// AddCmsKey handles POST /translations/addCmsKey. Keys are unique
// across live rows; a duplicate yields conflict. The check runs before
// the insert, so a concurrent duplicate creation can race (accepted
// weakness, see CreateTopic).
func (h *TranslationHandler) AddCmsKey(c echo.Context) error {
	id := ident(c)
	var req translationReq
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body", err)
	}
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return response.Error(c, http.StatusBadRequest, "key is required", nil)
	}

	ctx := c.Request().Context()
	exists, err := h.Translations.KeyExists(ctx, key)
	if err != nil {
		return storeFail(c, "translations.keyExists", err)
	}
	if exists {
		return response.Error(c, http.StatusConflict, "translation key already exists", nil)
	}

	rows, err := h.Translations.Insert(ctx, []model.Translation{{
		Key:         key,
		En:          req.En,
		Hi:          req.Hi,
		Base:        req.Base,
		IsPublished: req.IsPublished,
		CreatedBy:   id.UserID,
		UpdatedBy:   id.UserID,
	}})
	if err != nil {
		return storeFail(c, "translations.insert", err)
	}
	_ = h.Audit.Record(ctx, "translations", rows[0].ID, "created", id.UserID)
	return response.Success(c, http.StatusCreated, "translation key created", rows)
}

// BulkAddCmsKey handles POST /translations/bulkAddCmsKey. The whole
// batch is rejected when any key duplicates an existing live key or
// another item in the same batch; nothing is inserted partially.
func (h *TranslationHandler) BulkAddCmsKey(c echo.Context) error {
	id := ident(c)
	var reqs []translationReq
	if err := c.Bind(&reqs); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body", err)
	}
	if len(reqs) == 0 {
		return response.Error(c, http.StatusBadRequest, "at least one translation is required", nil)
	}

	ctx := c.Request().Context()
	seen := map[string]bool{}
	rows := make([]model.Translation, 0, len(reqs))
	for _, req := range reqs {
		key := strings.TrimSpace(req.Key)
		if key == "" {
			return response.Error(c, http.StatusBadRequest, "key is required for every translation", nil)
		}
		if seen[key] {
			return response.Error(c, http.StatusConflict, "duplicate key in batch: "+key, nil)
		}
		seen[key] = true

		exists, err := h.Translations.KeyExists(ctx, key)
		if err != nil {
			return storeFail(c, "translations.keyExists", err)
		}
		if exists {
			return response.Error(c, http.StatusConflict, "translation key already exists: "+key, nil)
		}
		rows = append(rows, model.Translation{
			Key:         key,
			En:          req.En,
			Hi:          req.Hi,
			Base:        req.Base,
			IsPublished: req.IsPublished,
			CreatedBy:   id.UserID,
			UpdatedBy:   id.UserID,
		})
	}

	created, err := h.Translations.Insert(ctx, rows)
	if err != nil {
		return storeFail(c, "translations.insert", err)
	}
	for _, row := range created {
		_ = h.Audit.Record(ctx, "translations", row.ID, "created", id.UserID)
	}
	return response.Success(c, http.StatusCreated, "translation keys created", created)
}

// AllTranslations handles GET /translations/allTranslations.
func (h *TranslationHandler) AllTranslations(c echo.Context) error {
	rows, err := h.Translations.ListLive(c.Request().Context())
	if err != nil {
		return storeFail(c, "translations.list", err)
	}
	return response.Success(c, http.StatusOK, "translations fetched", list(rows))
}

// ByLanguage handles GET /translations/:language. It returns a
// key→text map for the requested language over published keys, falling
// back to the base text when the language field is empty.
func (h *TranslationHandler) ByLanguage(c echo.Context) error {
	lang := strings.ToLower(strings.TrimSpace(c.Param("language")))
	if lang != "en" && lang != "hi" && lang != "base" {
		return response.Error(c, http.StatusBadRequest, "unsupported language: "+lang, nil)
	}

	rows, err := h.Translations.ListLive(c.Request().Context())
	if err != nil {
		return storeFail(c, "translations.list", err)
	}

	texts := map[string]string{}
	for _, row := range rows {
		if !row.IsPublished {
			continue
		}
		var text string
		switch lang {
		case "en":
			text = row.En
		case "hi":
			text = row.Hi
		case "base":
			text = row.Base
		}
		if text == "" {
			text = row.Base
		}
		texts[row.Key] = text
	}
	return response.Success(c, http.StatusOK, "translations fetched", texts)
}

type updateTranslationReq struct {
	En          *string `json:"en"`
	Hi          *string `json:"hi"`
	Base        *string `json:"base"`
	IsPublished *bool   `json:"is_published"`
}

// UpdateTranslation handles PUT /translations/updateTranslation/:id.
// The key itself is immutable; only texts and the publication flag
// change, and only the fields present in the body are written.
func (h *TranslationHandler) UpdateTranslation(c echo.Context) error {
	id := ident(c)
	var req updateTranslationReq
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body", err)
	}
	patch := map[string]any{}
	if req.En != nil {
		patch["en"] = *req.En
	}
	if req.Hi != nil {
		patch["hi"] = *req.Hi
	}
	if req.Base != nil {
		patch["base"] = *req.Base
	}
	if req.IsPublished != nil {
		patch["is_published"] = *req.IsPublished
	}
	if len(patch) == 0 {
		return response.Error(c, http.StatusBadRequest, "no fields to update", nil)
	}
	patch["updated_by"] = id.UserID

	ctx := c.Request().Context()
	updated, err := h.Translations.Update(ctx, c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "translation not found", nil)
		}
		return storeFail(c, "translations.update", err)
	}
	_ = h.Audit.Record(ctx, "translations", updated.ID, "updated", id.UserID)
	return response.Success(c, http.StatusOK, "translation updated", updated)
}

// DeleteTranslationKey handles DELETE
// /translations/deleteTranslationKey/:id (soft delete).
func (h *TranslationHandler) DeleteTranslationKey(c echo.Context) error {
	id := ident(c)
	ctx := c.Request().Context()
	tid := c.Param("id")

	if err := h.Translations.SoftDelete(ctx, tid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Error(c, http.StatusNotFound, "translation not found", nil)
		}
		return storeFail(c, "translations.delete", err)
	}
	_ = h.Audit.Record(ctx, "translations", tid, "deleted", id.UserID)
	return response.Success(c, http.StatusOK, "translation deleted", map[string]string{"id": tid})
}
