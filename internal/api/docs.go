package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// loadSwagger validates the embedded document once per process.
var loadSwagger = sync.OnceValues(GetSwagger)

// RegisterDocsRoutes registers documentation routes on the given mux.
//
//	GET /                  redirect to /docs
//	GET /docs              Swagger UI
//	GET /docs/openapi      validated document as JSON
//	GET /docs/openapi.yaml document as embedded
//
// The gateway webhook is not part of the document.
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleRootRedirect)
	mux.HandleFunc("GET /docs", handleSwaggerUI)
	mux.HandleFunc("GET /docs/openapi", handleOpenAPIJSON)
	mux.HandleFunc("GET /docs/openapi.yaml", handleOpenAPIYAML)
}

func handleRootRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/docs", http.StatusMovedPermanently)
}

func handleOpenAPIJSON(w http.ResponseWriter, _ *http.Request) {
	doc, err := loadSwagger()
	if err != nil {
		slog.Error("openapi document unavailable", "error", err)
		http.Error(w, "openapi document unavailable", http.StatusInternalServerError)
		return
	}
	writeDocument(w, doc)
}

func writeDocument(w http.ResponseWriter, doc *openapi3.T) {
	body, err := json.Marshal(doc)
	if err != nil {
		http.Error(w, "openapi document unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body) //nolint:errcheck // client went away
}

func handleOpenAPIYAML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openapiYAML) //nolint:errcheck // client went away
}

func handleSwaggerUI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerUIHTML)) //nolint:errcheck // client went away
}

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Interview Ledger API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body style="margin:0">
  <div id="docs"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: '/docs/openapi',
      dom_id: '#docs',
      persistAuthorization: true,
      tryItOutEnabled: true
    });
  </script>
</body>
</html>`
