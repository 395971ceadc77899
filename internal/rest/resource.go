// Package rest exposes every entity as a JSON resource under /api.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/rpattn/hrapi/internal/criteria"
	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/export"
	"github.com/rpattn/hrapi/internal/filter"
	"github.com/rpattn/hrapi/internal/repository"
)

const (
	maxBodyBytes    = 1 << 20
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	errInvalidBody = errors.New("invalid request body")
	errValidation  = errors.New("validation failed")
)

// Resource serves CRUD, filtered listing, counting and XLSX export for one
// entity type E with transfer object D and criteria C.
type Resource[E, D any, C criteria.Criteria] struct {
	// EntityName appears in alerts and problems, e.g. "jobHistory".
	EntityName string
	// Path is the collection segment under /api, e.g. "job-histories".
	Path  string
	Store repository.Repository[E, C]

	NewCriteria   func() C
	ToDTO         func(E) D
	ToEntity      func(D) E
	PartialUpdate func(*E, D)
	DTOID         func(D) *int64
	EntityID      func(E) int64
	Columns       []export.Column[D]

	// Hydrate, when set, completes listed entities before rendering.
	Hydrate func(ctx context.Context, items []E) error

	Logger *zap.Logger
}

// Register mounts the resource's routes on mux.
func (res *Resource[E, D, C]) Register(mux *http.ServeMux) {
	base := "/api/" + res.Path
	mux.HandleFunc("POST "+base, res.create)
	mux.HandleFunc("GET "+base, res.list)
	mux.HandleFunc("GET "+base+"/count", res.count)
	mux.HandleFunc("GET "+base+"/export.xlsx", res.exportXLSX)
	mux.HandleFunc("GET "+base+"/{id}", res.get)
	mux.HandleFunc("PUT "+base+"/{id}", res.update)
	mux.HandleFunc("PATCH "+base+"/{id}", res.partialUpdate)
	mux.HandleFunc("DELETE "+base+"/{id}", res.delete)
}

func (res *Resource[E, D, C]) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, res.Logger, err)
}

func (res *Resource[E, D, C]) create(w http.ResponseWriter, r *http.Request) {
	d, err := res.decode(r)
	if err != nil {
		res.fail(w, r, err)
		return
	}
	if res.DTOID(d) != nil {
		res.fail(w, r, badRequest(fmt.Sprintf("A new %s cannot already have an ID", res.EntityName), res.EntityName, "idexists"))
		return
	}

	created, err := res.Store.Create(r.Context(), res.ToEntity(d))
	if err != nil {
		res.fail(w, r, err)
		return
	}
	id := res.EntityID(created)
	setAlert(w, res.EntityName, "created", id)
	w.Header().Set("Location", fmt.Sprintf("/api/%s/%d", res.Path, id))
	writeJSON(w, http.StatusCreated, res.ToDTO(created))
}

func (res *Resource[E, D, C]) update(w http.ResponseWriter, r *http.Request) {
	id, d, ok := res.checkedBody(w, r)
	if !ok {
		return
	}

	updated, err := res.Store.Update(r.Context(), res.ToEntity(d))
	if err != nil {
		res.fail(w, r, res.mapNotFound(err))
		return
	}
	setAlert(w, res.EntityName, "updated", id)
	writeJSON(w, http.StatusOK, res.ToDTO(updated))
}

func (res *Resource[E, D, C]) partialUpdate(w http.ResponseWriter, r *http.Request) {
	id, d, ok := res.checkedBody(w, r)
	if !ok {
		return
	}

	existing, err := res.Store.GetByID(r.Context(), id)
	if err != nil {
		res.fail(w, r, res.mapNotFound(err))
		return
	}
	res.PartialUpdate(&existing, d)
	if err := validate(res.ToDTO(existing)); err != nil {
		res.fail(w, r, err)
		return
	}

	updated, err := res.Store.Update(r.Context(), existing)
	if err != nil {
		res.fail(w, r, res.mapNotFound(err))
		return
	}
	setAlert(w, res.EntityName, "updated", id)
	writeJSON(w, http.StatusOK, res.ToDTO(updated))
}

// checkedBody decodes the body of a PUT or PATCH and enforces that its id
// is present, matches the path and exists.
func (res *Resource[E, D, C]) checkedBody(w http.ResponseWriter, r *http.Request) (int64, D, bool) {
	var zero D
	pathID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		res.fail(w, r, badRequest("Invalid ID", res.EntityName, "idinvalid"))
		return 0, zero, false
	}

	d, err := res.decodeWith(r, r.Method != http.MethodPatch)
	if err != nil {
		res.fail(w, r, err)
		return 0, zero, false
	}
	bodyID := res.DTOID(d)
	if bodyID == nil {
		res.fail(w, r, badRequest("Invalid id", res.EntityName, "idnull"))
		return 0, zero, false
	}
	if *bodyID != pathID {
		res.fail(w, r, badRequest("Invalid ID", res.EntityName, "idinvalid"))
		return 0, zero, false
	}

	found, err := res.Store.Exists(r.Context(), pathID)
	if err != nil {
		res.fail(w, r, err)
		return 0, zero, false
	}
	if !found {
		res.fail(w, r, badRequest("Entity not found", res.EntityName, "idnotfound"))
		return 0, zero, false
	}
	return pathID, d, true
}

func (res *Resource[E, D, C]) list(w http.ResponseWriter, r *http.Request) {
	c, page, err := res.query(r)
	if err != nil {
		res.fail(w, r, err)
		return
	}

	items, total, err := res.Store.FindByCriteria(r.Context(), c, page)
	if err != nil {
		res.fail(w, r, err)
		return
	}
	dtos, err := res.render(r.Context(), items)
	if err != nil {
		res.fail(w, r, err)
		return
	}
	setPagination(w, r, page, total)
	writeJSON(w, http.StatusOK, dtos)
}

func (res *Resource[E, D, C]) count(w http.ResponseWriter, r *http.Request) {
	c, err := res.criteria(r)
	if err != nil {
		res.fail(w, r, err)
		return
	}
	n, err := res.Store.CountByCriteria(r.Context(), c)
	if err != nil {
		res.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (res *Resource[E, D, C]) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		res.fail(w, r, notFound(res.EntityName))
		return
	}
	e, err := res.Store.GetByID(r.Context(), id)
	if err != nil {
		res.fail(w, r, res.mapNotFound(err))
		return
	}
	writeJSON(w, http.StatusOK, res.ToDTO(e))
}

// delete is idempotent: deleting a missing id still answers 204.
func (res *Resource[E, D, C]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		res.fail(w, r, badRequest("Invalid ID", res.EntityName, "idinvalid"))
		return
	}
	if err := res.Store.Delete(r.Context(), id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		res.fail(w, r, err)
		return
	}
	setAlert(w, res.EntityName, "deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

func (res *Resource[E, D, C]) exportXLSX(w http.ResponseWriter, r *http.Request) {
	c, err := res.criteria(r)
	if err != nil {
		res.fail(w, r, err)
		return
	}
	sorted, err := domain.ParsePage("", "", r.URL.Query()["sort"])
	if err != nil {
		res.fail(w, r, err)
		return
	}
	page := domain.Unpaged()
	page.Sort = sorted.Sort

	items, _, err := res.Store.FindByCriteria(r.Context(), c, page)
	if err != nil {
		res.fail(w, r, err)
		return
	}
	dtos, err := res.render(r.Context(), items)
	if err != nil {
		res.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, res.Path))
	if err := export.WriteWorkbook(w, export.Build(res.Path, res.Columns, dtos)); err != nil {
		res.Logger.Error("failed to write workbook", zap.String("resource", res.Path), zap.Error(err))
	}
}

func (res *Resource[E, D, C]) render(ctx context.Context, items []E) ([]D, error) {
	if res.Hydrate != nil {
		if err := res.Hydrate(ctx, items); err != nil {
			return nil, err
		}
	}
	dtos := make([]D, len(items))
	for i, e := range items {
		dtos[i] = res.ToDTO(e)
	}
	return dtos, nil
}

func (res *Resource[E, D, C]) criteria(r *http.Request) (C, error) {
	c := res.NewCriteria()
	if err := filter.Decode(r.URL.Query(), c.Binders()); err != nil {
		var zero C
		return zero, err
	}
	res.Logger.Debug("criteria", zap.String("resource", res.Path), zap.Stringer("criteria", c))
	return c, nil
}

func (res *Resource[E, D, C]) query(r *http.Request) (C, domain.Page, error) {
	c, err := res.criteria(r)
	if err != nil {
		return c, domain.Page{}, err
	}
	q := r.URL.Query()
	page, err := domain.ParsePage(q.Get("page"), q.Get("size"), q["sort"])
	return c, page, err
}

func (res *Resource[E, D, C]) mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(res.EntityName)
	}
	return err
}

func (res *Resource[E, D, C]) decode(r *http.Request) (D, error) {
	return res.decodeWith(r, true)
}

// decodeWith reads a JSON body into D; full bodies are validated, partial
// ones are validated after merging.
func (res *Resource[E, D, C]) decodeWith(r *http.Request, full bool) (D, error) {
	var d D
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return d, fmt.Errorf("%w: empty body", errInvalidBody)
		}
		return d, fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	if full {
		if err := validate(d); err != nil {
			return d, err
		}
	}
	return d, nil
}

func validate(v any) error {
	if val, ok := v.(interface{ Validate() error }); ok {
		if err := val.Validate(); err != nil {
			return fmt.Errorf("%w: %w", errValidation, err)
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
