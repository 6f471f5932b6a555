package servers

import (
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger returns the parsed OpenAPI document the handlers implement.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	return loader.LoadFromData(rawSpec)
}
