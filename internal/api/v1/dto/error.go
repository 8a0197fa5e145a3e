package dto

// ErrorResponseDTO is the body of every failed request
type ErrorResponseDTO struct {
	ErrorMsg string `json:"error_msg"`
}
