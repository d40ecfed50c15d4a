package deploy

import "fmt"

// documentTemplate is the skeleton of the deployable page. The style fragment
// lands inside the head style block, the markup fragment becomes the body and
// the behavior fragment lands inside the trailing script block.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>%s</style>
</head>
<body>
    %s
    <script>%s</script>
</body>
</html>
`

// AssembleDocument combines the markup, style and behavior fragments into one
// self-contained HTML document titled with the site name. The result is fully
// deterministic: identical inputs always yield an identical document.
//
// Fragments are inlined verbatim; no escaping or sanitization is applied, so
// inputs are trusted as already-valid markup, style and script text.
func AssembleDocument(html, css, js, siteName string) string {
	return fmt.Sprintf(documentTemplate, siteName, css, html, js)
}
