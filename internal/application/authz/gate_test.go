package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/praticaeng/obraflow-api/internal/application/authz"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
)

func TestCapabilitiesFor_Host(t *testing.T) {
	caps := authz.CapabilitiesFor(entity.RoleHost)

	assert.True(t, caps.IsHost)
	assert.True(t, caps.CanManageUsers)
	assert.True(t, caps.CanManageObras)
	assert.True(t, caps.CanCreateFerramentas)
	assert.True(t, caps.CanDeleteFerramentas)
	assert.True(t, caps.CanViewRelatorios)
	assert.True(t, caps.CanTransferFerramentas)
	assert.True(t, caps.CanMarkDesaparecida)
	assert.True(t, caps.CanManageFerramentas)
}

func TestCapabilitiesFor_Funcionario(t *testing.T) {
	caps := authz.CapabilitiesFor(entity.RoleFuncionario)

	assert.False(t, caps.IsHost)
	assert.False(t, caps.CanManageUsers)
	assert.False(t, caps.CanManageObras)
	assert.False(t, caps.CanCreateFerramentas)
	assert.False(t, caps.CanDeleteFerramentas)
	assert.False(t, caps.CanViewRelatorios)
	// ações de campo liberadas para ambos os papéis
	assert.True(t, caps.CanTransferFerramentas)
	assert.True(t, caps.CanMarkDesaparecida)
	assert.True(t, caps.CanManageFerramentas)
}

// Papel desconhecido não recebe capacidade alguma.
func TestCapabilitiesFor_PapelInvalido(t *testing.T) {
	assert.Equal(t, authz.Capabilities{}, authz.CapabilitiesFor(entity.Role("admin")))
	assert.Equal(t, authz.Capabilities{}, authz.CapabilitiesFor(entity.Role("")))
}
