// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup/ endpoint.
// Field presence is checked in the handler rather than with binding tags, so a
// missing field and malformed JSON produce their own distinct error messages.
type SignupReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
