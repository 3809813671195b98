package authz

import "github.com/praticaeng/obraflow-api/internal/domain/entity"

// Capabilities capacidades grosseiras derivadas do papel do usuário.
// Sem estado e sem efeitos: recalculado a cada uso.
type Capabilities struct {
	IsHost                 bool
	CanManageUsers         bool
	CanManageObras         bool
	CanCreateFerramentas   bool
	CanDeleteFerramentas   bool
	CanViewRelatorios      bool
	CanTransferFerramentas bool
	CanMarkDesaparecida    bool
	CanManageFerramentas   bool // listar/visualizar
}

// CapabilitiesFor deriva as capacidades do papel. Papéis desconhecidos não
// recebem capacidade alguma.
func CapabilitiesFor(role entity.Role) Capabilities {
	if !role.Valid() {
		return Capabilities{}
	}
	host := role.IsHost()
	return Capabilities{
		IsHost:                 host,
		CanManageUsers:         host,
		CanManageObras:         host,
		CanCreateFerramentas:   host,
		CanDeleteFerramentas:   host,
		CanViewRelatorios:      host,
		CanTransferFerramentas: true, // ambos os papéis
		CanMarkDesaparecida:    true, // ambos os papéis
		CanManageFerramentas:   true, // qualquer autenticado
	}
}
