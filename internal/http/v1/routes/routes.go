package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/greeting-lambda/internal/http/v1/hello"
)

// Register wires all v1 API operations into the provided API.
func Register(api huma.API, fn hello.Function) {
	hello.Register(api, fn)
}
