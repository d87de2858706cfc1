package api

// swagger:model api.TokenRequest
type TokenRequest struct {
	GrantType    string `json:"grant_type" form:"grant_type" validate:"required" example:"password"`
	Username     string `json:"username" form:"username" example:"alice"`
	Password     string `json:"password" form:"password" example:"password"`
	RefreshToken string `json:"refresh_token" form:"refresh_token" example:"..."`
}
