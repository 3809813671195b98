package entity

import "time"

// Role papel de um usuário dentro da empresa.
type Role string

// Papéis válidos para User.
const (
	RoleHost        Role = "host"
	RoleFuncionario Role = "funcionario"
)

// Valid informa se o papel é um dos valores conhecidos.
func (r Role) Valid() bool {
	return r == RoleHost || r == RoleFuncionario
}

// IsHost informa se o papel é de administrador da empresa.
func (r Role) IsHost() bool { return r == RoleHost }

// User representa um usuário do sistema. Hosts com o mesmo CNPJ formam
// uma única empresa lógica e enxergam os dados uns dos outros.
type User struct {
	ID        string
	Name      string
	Email     string
	CNPJ      string
	Role      Role
	HostID    *string // host que cadastrou o funcionário; nil para hosts
	CreatedAt time.Time
	UpdatedAt time.Time
}
