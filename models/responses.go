package models

// LikeResult is the body of the like and unlike endpoints.
//
// Success reports whether the server applied the mutation. A response with
// Success false is not a transport failure: the client keeps the queued
// intent and retries it on the next reconnect or toggle.
type LikeResult struct {
	Success bool `json:"success"`
}
