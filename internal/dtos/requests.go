package dtos

// DeleteJobRequest is the JSON body of the admin delete endpoint.
type DeleteJobRequest struct {
	ID string `json:"id"`
}
