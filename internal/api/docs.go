package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterDocsRoutes registers documentation routes.
//
// GET /            → Redirect to /docs
//
// GET /docs         → Swagger UI
//
// GET /docs/openapi → OpenAPI document (JSON)
func RegisterDocsRoutes(r gin.IRoutes) {
	r.GET("/", handleRootRedirect)
	r.GET("/docs", handleSwaggerUI)
	r.GET("/docs/openapi", handleOpenAPISpec)
}

func handleRootRedirect(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, "/docs")
}

func handleOpenAPISpec(c *gin.Context) {
	spec, err := GetSwagger()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load OpenAPI spec")
		return
	}
	c.JSON(http.StatusOK, spec)
}

func handleSwaggerUI(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerUIHTML))
}

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Tutorbase Billing API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({ url: '/docs/openapi', dom_id: '#swagger-ui' });
    };
  </script>
</body>
</html>`
