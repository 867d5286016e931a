package models

// Chat pairs exactly one employer with one worker.
type Chat struct {
	BaseModel
	EmployerID string `gorm:"type:uuid;not null;index:idx_chat_pair,unique" json:"employer_id"`
	WorkerID   string `gorm:"type:uuid;not null;index:idx_chat_pair,unique" json:"worker_id"`

	Messages []ChatMessage `gorm:"foreignKey:ChatID" json:"messages,omitempty"`
}

// ChatMessage is ordered by creation time within its chat.
type ChatMessage struct {
	BaseModel
	ChatID   string `gorm:"type:uuid;not null;index" json:"chat_id"`
	SenderID string `gorm:"type:uuid;not null" json:"sender_id"`
	Body     string `gorm:"not null" json:"body"`
}
