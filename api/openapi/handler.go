// Package openapi serves Swagger UI for the OpenAPI document huma generates.
package openapi

import (
	"html"
	"net/http"
	"strings"
	"text/template"

	"github.com/labstack/echo/v4"
)

// DefaultSpecPath is where huma serves the OpenAPI 3.1 document.
const DefaultSpecPath = "/openapi.json"

var swaggerUI = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "{{.SpecURL}}",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`))

// RegisterRoutes adds Swagger UI routes to the Echo instance. specURL is
// the path of the generated document, usually DefaultSpecPath.
func RegisterRoutes(e *echo.Echo, title, specURL string) {
	if specURL == "" {
		specURL = DefaultSpecPath
	}

	var page strings.Builder
	_ = swaggerUI.Execute(&page, struct{ Title, SpecURL string }{
		Title:   html.EscapeString(title),
		SpecURL: specURL,
	})
	body := page.String()

	e.GET("/swagger/index.html", func(c echo.Context) error {
		return c.HTML(http.StatusOK, body)
	})
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
