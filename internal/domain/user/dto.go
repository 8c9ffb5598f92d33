package user

import "time"

type RegisterRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Password string  `json:"password" binding:"required,min=8"`
	Type     *string `json:"type"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type EditRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Type     *string `json:"type"`
}

type Response struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	User  Response `json:"user"`
	Token string   `json:"token"`
}

func toResponse(u *User) Response {
	return Response{
		UserID:    u.ID,
		Username:  u.Username,
		Type:      string(u.Type),
		CreatedAt: u.CreatedAt,
	}
}
