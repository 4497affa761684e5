package http

import (
	"net/http"
	"sync"

	"loanaudit/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDocsOnce sync.Once

// apiDoc serves the OpenAPI document to echo-swagger through the swag registry.
type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string {
	return d.json
}

// Register mounts the API, its request validator, the Swagger UI under
// /swagger/ and a /health probe on e.
func Register(e *echo.Echo, server *Server) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return err
	}

	if err = registerDocs(swagger); err != nil {
		return err
	}

	validator, err := RequestValidator(swagger)
	if err != nil {
		return err
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Use(validator)
	servers.RegisterHandlers(e, server)

	return nil
}

func registerDocs(swagger *openapi3.T) error {
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return err
	}

	registerDocsOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{json: string(doc)})
	})
	return nil
}
