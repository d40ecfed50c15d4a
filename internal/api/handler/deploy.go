package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"bloghub/internal/deploy"
	"bloghub/pkg/hosting"
	"bloghub/pkg/logger"
	"bloghub/pkg/serrors"

	"go.uber.org/zap"
)

type deployRequest struct {
	HTML     string `json:"html"`
	CSS      string `json:"css"`
	JS       string `json:"js"`
	SiteName string `json:"customWebsiteName"`
}

type deployResponse struct {
	Message          string          `json:"message"`
	DeploymentFiles  []hosting.File  `json:"deploymentFiles"`
	ProviderResponse json.RawMessage `json:"providerResponse"`
}

type deployErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Deploy assembles the submitted fragments into one document and triggers a
// deployment at the hosting provider. Provider failures come back as a server
// error carrying the provider's own detail.
func (h *Handler) Deploy(w http.ResponseWriter, r *http.Request) {
	var req deployRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid request body"))

		return
	}

	result, err := h.deps.Deployer.Deploy(r.Context(), deploy.Request{
		HTML:     req.HTML,
		CSS:      req.CSS,
		JS:       req.JS,
		SiteName: req.SiteName,
	})
	if err != nil {
		logger.Error(r.Context(), "deployment failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, deployErrorResponse{
			Error:   "Deployment failed",
			Details: deployErrorDetails(err),
		})

		return
	}

	writeJSON(w, http.StatusOK, deployResponse{
		Message:          "Deployment triggered successfully",
		DeploymentFiles:  result.Files,
		ProviderResponse: result.ProviderResponse,
	})
}

// deployErrorDetails surfaces the provider's own words when the provider
// refused, and a generic phrase for transport-level failures.
func deployErrorDetails(err error) string {
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		return serr.Message()
	}

	return err.Error()
}
