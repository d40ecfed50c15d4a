package deploy_test

import (
	"strings"
	"testing"

	"bloghub/internal/deploy"

	"github.com/stretchr/testify/require"
)

func TestAssembleDocument_PlacesFragments(t *testing.T) {
	doc := deploy.AssembleDocument("<h1>Hi</h1>", "body{margin:0}", "console.log(1)", "My Site")

	require.Contains(t, doc, "<title>My Site</title>")
	require.Contains(t, doc, "<style>body{margin:0}</style>")
	require.Contains(t, doc, "<h1>Hi</h1>")
	require.Contains(t, doc, "<script>console.log(1)</script>")
	require.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
}

func TestAssembleDocument_Deterministic(t *testing.T) {
	first := deploy.AssembleDocument("<p>x</p>", "p{}", "void 0", "S")
	second := deploy.AssembleDocument("<p>x</p>", "p{}", "void 0", "S")

	require.Equal(t, first, second)
}

func TestAssembleDocument_EmptyFragments(t *testing.T) {
	doc := deploy.AssembleDocument("", "", "", "")

	require.Contains(t, doc, "<title></title>")
	require.Contains(t, doc, "<style></style>")
	require.Contains(t, doc, "<script></script>")
}

func TestAssembleDocument_FragmentsAreNotEscaped(t *testing.T) {
	doc := deploy.AssembleDocument(`<div data-x="1 & 2"></div>`, "", "", "")

	require.Contains(t, doc, `<div data-x="1 & 2"></div>`)
}
