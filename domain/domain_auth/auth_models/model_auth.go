package auth_models

// SignupRequest 注册请求
type SignupRequest struct {
	Name     string `form:"name" binding:"required" json:"name"`
	Email    string `form:"email" binding:"required,email" json:"email"`
	Password string `form:"password" binding:"required,min=8" json:"password"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `form:"email" binding:"required,email" json:"email"`
	Password string `form:"password" binding:"required" json:"password"`
}

// RefreshTokenRequest 令牌刷新请求
type RefreshTokenRequest struct {
	RefreshToken string `form:"refreshToken" binding:"required" json:"refreshToken"`
}

// AuthResponse 注册/登录/刷新的统一响应
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
