package servers

import (
	"context"
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openapiYAML []byte

// GetSwagger returns the parsed and validated OpenAPI document of the API.
// Each call returns a fresh document, so callers may modify it.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false

	swagger, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, err
	}

	if err = swagger.Validate(context.Background()); err != nil {
		return nil, err
	}
	return swagger, nil
}
