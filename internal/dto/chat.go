package dto

type StartChatRequest struct {
	WorkerID string `json:"worker_id" validate:"required,uuid4"`
}

type SendMessageRequest struct {
	Body string `json:"body" validate:"required,min=1,max=4000"`
}
