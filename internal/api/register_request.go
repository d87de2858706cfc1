package api

// RegisterRequest 公開註冊請求，角色一律為 customer，不接受呼叫端指定
// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=50" example:"alice"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}
