package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bloghub/pkg/domain"
	"bloghub/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

type createSchoolRequest struct {
	SchoolName        string `json:"schoolName"`
	SchoolWebsiteLink string `json:"schoolWebsiteLink"`
	Content           string `json:"content"`
}

type createSchoolResponse struct {
	SchoolID          domain.SchoolID `json:"schoolId"`
	SchoolName        string          `json:"schoolName"`
	SchoolWebsiteLink string          `json:"schoolWebsiteLink"`
	Content           string          `json:"content"`
}

// CreateSchool persists a new directory listing.
func (h *Handler) CreateSchool(w http.ResponseWriter, r *http.Request) {
	var req createSchoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid request body"))

		return
	}

	created, err := h.deps.Schools.Create(r.Context(), req.SchoolName, req.SchoolWebsiteLink, req.Content)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, createSchoolResponse{
		SchoolID:          created.ID,
		SchoolName:        created.Name,
		SchoolWebsiteLink: created.WebsiteLink,
		Content:           created.Content,
	})
}

// ListSchools returns every directory listing.
func (h *Handler) ListSchools(w http.ResponseWriter, r *http.Request) {
	schools, err := h.deps.Schools.List(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, schools)
}

// GetSchool returns a single listing by ID.
func (h *Handler) GetSchool(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "Invalid school ID"))

		return
	}

	found, err := h.deps.Schools.Get(r.Context(), domain.SchoolID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, found)
}
