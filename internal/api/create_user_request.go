package api

// CreateUserRequest 管理員建立使用者，角色需明示且僅接受兩種值
// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=50" example:"bob"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
	Role     string `json:"role" form:"role" validate:"required,oneof=customer admin" example:"admin"`
}
