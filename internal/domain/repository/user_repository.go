package repository

import "github.com/praticaeng/obraflow-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByCNPJAndName busca por CNPJ exato e nome case-insensitive (login).
	GetByCNPJAndName(cnpj, name string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	// ListFuncionariosByHosts funcionários cadastrados por qualquer um dos hosts, ordenados por nome.
	ListFuncionariosByHosts(hostIDs []string) ([]*entity.User, error)
	// ListHostsByCNPJ demais hosts da mesma empresa, excluindo excludeID quando não vazio.
	ListHostsByCNPJ(cnpj, excludeID string) ([]*entity.User, error)
	// HostIDsByCNPJ ids de todos os hosts que compartilham o CNPJ.
	HostIDsByCNPJ(cnpj string) ([]string, error)
}
