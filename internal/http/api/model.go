package api

// Data models the response payload for the api route.
type Data struct {
	Message string `json:"message" doc:"Static greeting message" example:"Hello, Docker!"`
}
