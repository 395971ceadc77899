package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/filter"
	"github.com/rpattn/hrapi/internal/middleware"
	"github.com/rpattn/hrapi/internal/repository"
)

const (
	problemContentType = "application/problem+json"

	ProblemWithMessage  = "/problem/problem-with-message"
	ProblemConstraint   = "/problem/constraint-violation"
	ProblemDefaultType  = "about:blank"
	errorHeaderTemplate = "X-" + applicationName + "-error"
)

// Problem is an RFC 7807 problem details body extended with the entity and
// message key a client can use to render a localized alert.
type Problem struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Status     int    `json:"status"`
	Detail     string `json:"detail,omitempty"`
	Path       string `json:"path"`
	Message    string `json:"message"`
	EntityName string `json:"entityName,omitempty"`
	ErrorKey   string `json:"errorKey,omitempty"`
	Params     string `json:"params,omitempty"`
	RequestID  string `json:"requestId,omitempty"`
}

// alertError is a client error tied to an entity, e.g. "idexists".
type alertError struct {
	status     int
	title      string
	entityName string
	errorKey   string
}

func (e *alertError) Error() string { return e.title }

func badRequest(title, entityName, errorKey string) error {
	return &alertError{status: http.StatusBadRequest, title: title, entityName: entityName, errorKey: errorKey}
}

func notFound(entityName string) error {
	return &alertError{status: http.StatusNotFound, title: "Entity not found", entityName: entityName, errorKey: "idnotfound"}
}

func writeProblem(w http.ResponseWriter, r *http.Request, p Problem) {
	p.Path = r.URL.Path
	p.RequestID = middleware.RequestIDFromContext(r.Context())
	if p.Type == "" {
		p.Type = ProblemDefaultType
	}
	if p.Title == "" {
		p.Title = http.StatusText(p.Status)
	}
	if p.ErrorKey != "" {
		w.Header().Set(errorHeaderTemplate, p.Message)
		w.Header().Set(paramsHeader, p.EntityName)
	}
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// writeError maps err onto a problem response. Unexpected errors are logged
// and reported as 500 without detail.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var (
		alert   *alertError
		bindErr *filter.BindError
		syntax  *json.SyntaxError
		typeErr *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &alert):
		writeProblem(w, r, Problem{
			Type:       ProblemWithMessage,
			Title:      alert.title,
			Status:     alert.status,
			Message:    "error." + alert.errorKey,
			EntityName: alert.entityName,
			ErrorKey:   alert.errorKey,
			Params:     alert.entityName,
		})
	case errors.As(err, &bindErr):
		writeProblem(w, r, Problem{
			Status:  http.StatusBadRequest,
			Detail:  bindErr.Error(),
			Message: "error.http.400",
		})
	case errors.Is(err, domain.ErrInvalidPage), errors.Is(err, repository.ErrInvalidSort):
		writeProblem(w, r, Problem{
			Status:  http.StatusBadRequest,
			Detail:  err.Error(),
			Message: "error.http.400",
		})
	case errors.As(err, &syntax), errors.As(err, &typeErr), errors.Is(err, errInvalidBody):
		writeProblem(w, r, Problem{
			Status:  http.StatusBadRequest,
			Detail:  err.Error(),
			Message: "error.http.400",
		})
	case errors.Is(err, errValidation):
		writeProblem(w, r, Problem{
			Type:    ProblemConstraint,
			Title:   "Method argument not valid",
			Status:  http.StatusBadRequest,
			Detail:  err.Error(),
			Message: "error.validation",
		})
	case errors.Is(err, repository.ErrConstraint):
		writeProblem(w, r, Problem{
			Type:    ProblemConstraint,
			Status:  http.StatusBadRequest,
			Detail:  "the request references missing or conflicting data",
			Message: "error.validation",
		})
	case errors.Is(err, repository.ErrNotFound):
		writeProblem(w, r, Problem{
			Status:  http.StatusNotFound,
			Message: "error.http.404",
		})
	default:
		logger.Error("request failed",
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeProblem(w, r, Problem{
			Status:  http.StatusInternalServerError,
			Message: "error.http.500",
		})
	}
}
