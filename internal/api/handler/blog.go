package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bloghub/internal/blog"
	"bloghub/pkg/domain"
	"bloghub/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

func blogIDFromURL(r *http.Request) (domain.BlogID, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "Invalid blog ID")
	}

	return domain.BlogID(id), nil
}

type createBlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type createBlogResponse struct {
	BlogID domain.BlogID `json:"blogId"`
	Blog   *domain.Blog  `json:"blog"`
}

// CreateBlog persists a new post owned by the authenticated user.
func (h *Handler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req createBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid request body"))

		return
	}

	created, err := h.deps.Blogs.Create(r.Context(), UserIDFromContext(r.Context()), req.Title, req.Content)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, createBlogResponse{
		BlogID: created.ID,
		Blog:   created,
	})
}

// ListBlogs returns every post.
func (h *Handler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.deps.Blogs.List(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, blogs)
}

// GetBlog returns a single post by ID.
func (h *Handler) GetBlog(w http.ResponseWriter, r *http.Request) {
	id, err := blogIDFromURL(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	found, err := h.deps.Blogs.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, found)
}

type updateBlogRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// UpdateBlog applies a partial update to a post owned by the authenticated
// user.
func (h *Handler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := blogIDFromURL(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req updateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid request body"))

		return
	}

	updated, err := h.deps.Blogs.Update(r.Context(), UserIDFromContext(r.Context()), id, blog.Updates{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteBlog removes a post owned by the authenticated user.
func (h *Handler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := blogIDFromURL(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Blogs.Delete(r.Context(), UserIDFromContext(r.Context()), id); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
