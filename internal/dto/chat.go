package dto

type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ChatRequest struct {
	Message  string   `json:"message"`
	UserInfo UserInfo `json:"user_info"`
}

type ChatResponse struct {
	Response        string   `json:"response"`
	Recommendations []string `json:"recommendations"`
}
