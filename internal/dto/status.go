package dto

type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name"`
}

type StatusCheckResponse struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Timestamp  string `json:"timestamp"`
}
