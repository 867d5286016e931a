package dto

type SubscribeRequest struct {
	Provider string `json:"provider" validate:"required,oneof=stripe paypal gcash"`
	PlanID   string `json:"plan_id" validate:"omitempty,max=100"`
}

type SubscribeResponse struct {
	SubscriptionID string `json:"subscription_id,omitempty"`
	Status         string `json:"status"`
	ClientSecret   string `json:"client_secret,omitempty"`
	RedirectURL    string `json:"redirect_url,omitempty"`
}
