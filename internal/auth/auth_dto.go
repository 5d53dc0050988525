package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Username string `json:"username"`
}

type FormFlagResponse struct {
	OpenForm bool `json:"open_form"`
}
