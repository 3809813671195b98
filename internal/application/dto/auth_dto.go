package dto

import "time"

// LoginRequest entrada do login: CNPJ da empresa, nome do usuário
// (case-insensitive) e senha em claro.
type LoginRequest struct {
	CNPJ     string `json:"cnpj" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída do login. O token também é gravado no cookie de sessão.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse saída de um usuário (sem credenciais).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CNPJ      string    `json:"cnpj"`
	Role      string    `json:"role"`
	HostID    *string   `json:"host_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateFuncionarioRequest entrada para cadastrar um funcionário (ou outro
// host) da empresa. A senha é hasheada no use case.
type CreateFuncionarioRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=host funcionario"`
	Password string `json:"password" validate:"required,min=6"`
}
