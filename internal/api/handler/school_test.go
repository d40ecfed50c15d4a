package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"bloghub/pkg/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateSchool(t *testing.T) {
	env := newTestEnv(t)

	env.schools.EXPECT().StoreSchool(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s domain.School) (*domain.School, error) {
			s.ID = 5

			return &s, nil
		},
	)

	rec := env.do(t, http.MethodPost, "/school", "", map[string]string{
		"schoolName":        "Go Academy",
		"schoolWebsiteLink": "https://go.example.edu",
		"content":           "Teaches Go",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	require.EqualValues(t, 5, body["schoolId"])
	require.Equal(t, "Go Academy", body["schoolName"])
	require.Equal(t, "https://go.example.edu", body["schoolWebsiteLink"])
}

func TestCreateSchool_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/school", "", map[string]string{
		"schoolName": "Go Academy",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSchools(t *testing.T) {
	env := newTestEnv(t)

	env.schools.EXPECT().Schools(gomock.Any()).Return([]domain.School{{ID: 1}, {ID: 2}}, nil)

	rec := env.do(t, http.MethodGet, "/schools", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var listings []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 2)
}

func TestGetSchool(t *testing.T) {
	env := newTestEnv(t)

	env.schools.EXPECT().SchoolByID(gomock.Any(), domain.SchoolID(5)).Return(&domain.School{
		ID:   5,
		Name: "Go Academy",
	}, nil)

	rec := env.do(t, http.MethodGet, "/schools/5", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Go Academy", decodeBody(t, rec)["school_name"])
}

func TestGetSchool_NotFound(t *testing.T) {
	env := newTestEnv(t)

	env.schools.EXPECT().SchoolByID(gomock.Any(), domain.SchoolID(404)).Return(nil, nil)

	rec := env.do(t, http.MethodGet, "/schools/404", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "school not found", decodeBody(t, rec)["error"])
}

func TestGetSchool_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/schools/abc", "", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
