package handler // handler defines http handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/craftedbyaditya/practice-questions-backend/internal/middleware"
	"github.com/craftedbyaditya/practice-questions-backend/internal/response"
)

// listPayload is the shape returned by every list endpoint.
type listPayload struct {
	Items any `json:"items"`
	Count int `json:"count"`
}

// list wraps rows into the {items, count} container.
func list[T any](rows []T) listPayload {
	return listPayload{Items: rows, Count: len(rows)}
}

// storeFail logs a raw store failure with the request id and converts
// it into the generic internal-error envelope. Controllers never leak
// transport detail to clients outside dev environments.
func storeFail(c echo.Context, op string, err error) error {
	slog.Error("store call failed", "op", op, "request_id", middleware.RequestIDFrom(c), "err", err)
	return response.Error(c, http.StatusInternalServerError, "something went wrong, please try again", err)
}

// ident is shorthand for the identity attached by the middleware.
var ident = middleware.IdentityFrom
