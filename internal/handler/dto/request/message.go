package request

type SendMessageRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}
