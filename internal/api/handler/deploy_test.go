package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"bloghub/internal/deploy"
	"bloghub/pkg/hosting"
	"bloghub/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDeploy(t *testing.T) {
	env := newTestEnv(t)

	env.hosting.EXPECT().Deploy(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d hosting.Deployment) (json.RawMessage, error) {
			require.Equal(t, "my-site", d.Name)
			require.Equal(t, "production", d.Target)
			require.Len(t, d.Files, 1)
			require.Equal(t, "index.html", d.Files[0].Name)
			require.Equal(t,
				deploy.AssembleDocument("<h1>x</h1>", "h1{}", "void 0", "my-site"),
				d.Files[0].Data)
			// the decoded site name must reach the document title and the
			// provider project name, not default to empty
			require.Contains(t, d.Files[0].Data, "<title>my-site</title>")

			return json.RawMessage(`{"id":"dpl_1","readyState":"QUEUED"}`), nil
		},
	)

	rec := env.do(t, http.MethodPost, "/deploy", "", map[string]string{
		"html":              "<h1>x</h1>",
		"css":               "h1{}",
		"js":                "void 0",
		"customWebsiteName": "my-site",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "Deployment triggered successfully", body["message"])

	files, ok := body["deploymentFiles"].([]any)
	require.True(t, ok)
	require.Len(t, files, 1)

	provider, ok := body["providerResponse"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "dpl_1", provider["id"])
}

func TestDeploy_ProviderRefuses(t *testing.T) {
	env := newTestEnv(t)

	env.hosting.EXPECT().Deploy(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnavailable, "%s", `{"error":{"code":"forbidden"}}`))

	rec := env.do(t, http.MethodPost, "/deploy", "", map[string]string{
		"customWebsiteName": "my-site",
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "Deployment failed", body["error"])
	require.Contains(t, body["details"], "forbidden")
}
