package model

// HealthStats holds a user's cumulative daily metrics. Each user owns exactly one row.
type HealthStats struct {
	ID       int64
	UserID   int64
	Steps    int
	Calories int
	Water    int
	Sleep    int
}

// UpdateStatsRequest is a partial stats update. Nil fields are left unchanged.
type UpdateStatsRequest struct {
	Steps    *int `json:"steps" validate:"omitempty,min=0,max=2147483647"`
	Calories *int `json:"calories" validate:"omitempty,min=0,max=2147483647"`
	Water    *int `json:"water" validate:"omitempty,min=0,max=2147483647"`
	Sleep    *int `json:"sleep" validate:"omitempty,min=0,max=2147483647"`
}

// HealthStatsResponse is the public stats schema with the owner nested under "user".
type HealthStatsResponse struct {
	ID       int64        `json:"id"`
	User     UserResponse `json:"user"`
	Steps    int          `json:"steps"`
	Calories int          `json:"calories"`
	Water    int          `json:"water"`
	Sleep    int          `json:"sleep"`
}
