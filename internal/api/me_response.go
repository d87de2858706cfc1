package api

// swagger:model api.MeResponse
type MeResponse struct {
	Username string `json:"username" example:"alice"`
	Role     string `json:"role" example:"customer"`
	IsActive bool   `json:"is_active" example:"true"`
}
