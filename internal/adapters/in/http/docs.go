package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

var registerDocOnce sync.Once

// registerSwaggerDoc publishes the OpenAPI document to swag, where the
// echo-swagger UI reads it from. swag panics on a second registration, so
// only the first document wins.
func registerSwaggerDoc(swagger *openapi3.T) error {
	doc, err := json.Marshal(swagger)
	if err != nil {
		return err
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: string(doc)})
	})
	return nil
}
