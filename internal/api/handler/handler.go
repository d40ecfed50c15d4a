// Package handler implements the HTTP endpoints: account signup and login,
// blog post CRUD, the school directory and static-site deployment. Handlers
// decode requests, call the corresponding service and translate semantic
// error kinds into status codes in one place.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"bloghub/internal/account"
	"bloghub/internal/auth"
	"bloghub/internal/blog"
	"bloghub/internal/deploy"
	"bloghub/internal/school"
	"bloghub/pkg/logger"
	"bloghub/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Deps carries the services the handlers dispatch to.
type Deps struct {
	Accounts account.Service
	Blogs    blog.Service
	Schools  school.Service
	Deployer deploy.Service
	Tokens   *auth.TokenManager
}

// Handler serves the HTTP API.
type Handler struct {
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Router builds the route table. Mutating blog routes sit behind the bearer
// token gate; everything else is open.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Root)

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)

	r.Route("/blogs", func(r chi.Router) {
		r.Get("/", h.ListBlogs)
		r.Get("/{id}", h.GetBlog)

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate)
			r.Post("/", h.CreateBlog)
			r.Patch("/{id}", h.UpdateBlog)
			r.Delete("/{id}", h.DeleteBlog)
		})
	})

	r.Post("/deploy", h.Deploy)

	r.Post("/school", h.CreateSchool)
	r.Get("/schools", h.ListSchools)
	r.Get("/schools/{id}", h.GetSchool)

	return r
}

// Root is a liveness probe.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello, World!"))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps semantic error kinds to status codes. Unclassified errors
// become an opaque 500; their detail goes to the log, never to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := serrors.KindOf(err)

	var status int
	switch kind {
	case serrors.ErrBadRequest:
		status = http.StatusBadRequest
	case serrors.ErrUnauthorized:
		status = http.StatusUnauthorized
	case serrors.ErrForbidden:
		status = http.StatusForbidden
	case serrors.ErrNotFound:
		status = http.StatusNotFound
	default:
		logger.Error(r.Context(), "request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Server error"})

		return
	}

	writeJSON(w, status, errorResponse{Error: errorMessage(err, kind)})
}

func errorMessage(err error, kind serrors.Kind) string {
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		return serr.Message()
	}

	return kind.Error()
}
