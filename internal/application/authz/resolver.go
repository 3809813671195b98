package authz

import (
	"fmt"

	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

// AllowedSet conjunto de ids de entidades que um usuário pode enxergar.
// All é o sentinela de host: visibilidade total, independente das tabelas
// de permissão.
type AllowedSet struct {
	All bool
	IDs map[string]struct{}
}

// Contains informa se o id pertence ao conjunto.
func (s AllowedSet) Contains(id string) bool {
	if s.All {
		return true
	}
	_, ok := s.IDs[id]
	return ok
}

// Empty informa se o conjunto não permite nada.
func (s AllowedSet) Empty() bool {
	return !s.All && len(s.IDs) == 0
}

func allowAll() AllowedSet { return AllowedSet{All: true} }

func setOf(ids []string) AllowedSet {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return AllowedSet{IDs: m}
}

// Resolver calcula os conjuntos de visibilidade a partir das tabelas de
// permissão. Falhas de consulta fecham o acesso (conjunto vazio), mas o
// erro é devolvido para que o chamador distinga "vazio por política" de
// "vazio por falha".
type Resolver struct {
	perms repository.PermissionRepository
}

// NewResolver constrói o resolver sobre o repositório de permissões.
func NewResolver(perms repository.PermissionRepository) *Resolver {
	return &Resolver{perms: perms}
}

// AllowedObraIDs obras visíveis para o usuário. Host enxerga tudo.
func (r *Resolver) AllowedObraIDs(userID string, role entity.Role) (AllowedSet, error) {
	if role.IsHost() {
		return allowAll(), nil
	}
	ids, err := r.perms.ObraIDsByUser(userID)
	if err != nil {
		return AllowedSet{IDs: map[string]struct{}{}}, fmt.Errorf("permissões de obras: %w", err)
	}
	return setOf(ids), nil
}

// AllowedFerramentaIDs ferramentas visíveis para o usuário. Host enxerga tudo.
func (r *Resolver) AllowedFerramentaIDs(userID string, role entity.Role) (AllowedSet, error) {
	if role.IsHost() {
		return allowAll(), nil
	}
	ids, err := r.perms.FerramentaIDsByUser(userID)
	if err != nil {
		return AllowedSet{IDs: map[string]struct{}{}}, fmt.Errorf("permissões de ferramentas: %w", err)
	}
	return setOf(ids), nil
}

// HasObraPermission verificação pontual de acesso a uma obra.
// Fecha o acesso em caso de erro de consulta.
func (r *Resolver) HasObraPermission(userID string, role entity.Role, obraID string) bool {
	if role.IsHost() {
		return true
	}
	ok, err := r.perms.HasObra(userID, obraID)
	if err != nil {
		return false
	}
	return ok
}

// HasFerramentaPermission verificação pontual de acesso a uma ferramenta.
func (r *Resolver) HasFerramentaPermission(userID string, role entity.Role, ferramentaID string) bool {
	if role.IsHost() {
		return true
	}
	ok, err := r.perms.HasFerramenta(userID, ferramentaID)
	if err != nil {
		return false
	}
	return ok
}
