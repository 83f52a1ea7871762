package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"anna"`
	Password string `json:"password" example:"s3cret-pass"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	Role    string `json:"role" example:"technician"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"anna"`
	Password string `json:"password" example:"s3cret-pass"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	Role    string `json:"role" example:"admin"`
}
