package response_models

type AssistantReply struct {
	Intent   string `json:"intent"`
	Response string `json:"response"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
