// Package docs registers the embedded OpenAPI document with the swagger
// registry so the swagger UI handler can serve it.
package docs

import (
	"github.com/swaggo/swag"

	"bitebox/internal/generated/servers"
)

const specPath = "openapi.json"

func init() {
	raw, err := servers.PathToRawSpec(specPath)[specPath]()
	if err != nil {
		panic("docs: cannot decode embedded OpenAPI document: " + err.Error())
	}

	swag.Register(swag.Name, &swag.Spec{
		InfoInstanceName: swag.Name,
		SwaggerTemplate:  string(raw),
	})
}
