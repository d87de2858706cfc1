package api

// swagger:model api.StatsResponse
type StatsResponse struct {
	UserCount int `json:"user_count" example:"42"`
	SlipCount int `json:"slip_count" example:"120"`
}

// swagger:model api.GenerateUsersRequest
type GenerateUsersRequest struct {
	UserCount int `json:"user_count" example:"10"`
}

// swagger:model api.GeneratedUser
type GeneratedUser struct {
	ID         int    `json:"id" example:"7"`
	Username   string `json:"username" example:"test_user_1716000000_0"`
	CardNumber string `json:"card_number" example:"1234567890123456"`
}

// swagger:model api.GenerateUsersResponse
type GenerateUsersResponse struct {
	Message      string          `json:"message" example:"Successfully created 10 test users"`
	UsersCreated int             `json:"users_created" example:"10"`
	Users        []GeneratedUser `json:"users"`
}

// GenerateSlipsRequest bonus_percentage 僅為相容保留，目前不參與計算
// swagger:model api.GenerateSlipsRequest
type GenerateSlipsRequest struct {
	MinAmount       float64 `json:"min_amount" example:"10"`
	MaxAmount       float64 `json:"max_amount" example:"5000"`
	BonusPercentage float64 `json:"bonus_percentage" example:"5"`
	SlipsPerUser    int     `json:"slips_per_user" example:"1"`
}

// swagger:model api.GenerateSlipsResponse
type GenerateSlipsResponse struct {
	Message      string `json:"message" example:"Successfully created 30 slips"`
	SlipsCreated int64  `json:"slips_created" example:"30"`
	UsersCount   int    `json:"users_count" example:"30"`
}

// swagger:model api.RotatedUser
type RotatedUser struct {
	ID       int    `json:"id" example:"3"`
	Username string `json:"username" example:"test_user_1716000000_2"`
}

// swagger:model api.RotateResponse
type RotateResponse struct {
	Message      string        `json:"message" example:"Rotation completed for 3 users"`
	RotatedUsers int           `json:"rotated_users" example:"3"`
	Users        []RotatedUser `json:"users"`
}

// swagger:model api.CleanupResponse
type CleanupResponse struct {
	UsersRemoved int64 `json:"users_removed" example:"12"`
	SlipsRemoved int64 `json:"slips_removed" example:"36"`
}
