package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed spec/openapi.json
var openapiDocument []byte

// swaggerPage loads Swagger UI from a CDN and points it at /openapi.json on
// the serving host.
const swaggerPage = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <title>Clock Service API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
    <script>
      window.onload = () => {
        window.ui = SwaggerUIBundle({
          url: window.location.origin + '/openapi.json',
          dom_id: '#swagger-ui',
          presets: [SwaggerUIBundle.presets.apis],
          layout: "BaseLayout"
        })
      }
    </script>
  </body>
</html>`

// OpenAPIJSON serves the embedded OpenAPI document for /healthz and /date.
func OpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	writeBody(w, http.StatusOK, contentTypeJSON, openapiDocument)
}

// SwaggerUI serves the interactive docs page.
func SwaggerUI(w http.ResponseWriter, r *http.Request) {
	writeBody(w, http.StatusOK, contentTypeHTML, []byte(swaggerPage))
}
