package hello

// Data models the response payload for the hello endpoint.
type Data struct {
	Message string `json:"message" doc:"Greeting rendered by the function" example:"Hi from Lambda!"`
}

// GetOutput is the response wrapper for GET /v1/hello.
type GetOutput struct {
	Body Data
}
