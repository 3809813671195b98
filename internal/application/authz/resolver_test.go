package authz_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praticaeng/obraflow-api/internal/application/authz"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake do repositório de permissões
// ──────────────────────────────────────────────────────────────────────────────

type fakePermRepo struct {
	obrasPorUser       map[string][]string
	ferramentasPorUser map[string][]string
	err                error
}

func (f *fakePermRepo) ObraIDsByUser(userID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.obrasPorUser[userID], nil
}

func (f *fakePermRepo) FerramentaIDsByUser(userID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ferramentasPorUser[userID], nil
}

func (f *fakePermRepo) HasObra(userID, obraID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, id := range f.obrasPorUser[userID] {
		if id == obraID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePermRepo) HasFerramenta(userID, ferramentaID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, id := range f.ferramentasPorUser[userID] {
		if id == ferramentaID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePermRepo) GrantObra(*entity.ObraPermission) error              { return nil }
func (f *fakePermRepo) RevokeObra(userID, obraID string) error              { return nil }
func (f *fakePermRepo) GrantFerramenta(*entity.FerramentaPermission) error  { return nil }
func (f *fakePermRepo) RevokeFerramenta(userID, ferramentaID string) error  { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Host enxerga tudo, sem consultar as tabelas de permissão.
func TestAllowedObraIDs_HostSentinela(t *testing.T) {
	r := authz.NewResolver(&fakePermRepo{err: errors.New("não deve ser consultado")})

	allowed, err := r.AllowedObraIDs("h1", entity.RoleHost)
	require.NoError(t, err)
	assert.True(t, allowed.All)
	assert.True(t, allowed.Contains("qualquer-id"))
	assert.False(t, allowed.Empty())
}

// Funcionário sem linhas de permissão: conjunto vazio, sem erro.
func TestAllowedObraIDs_FuncionarioSemPermissoes(t *testing.T) {
	r := authz.NewResolver(&fakePermRepo{obrasPorUser: map[string][]string{}})

	allowed, err := r.AllowedObraIDs("f1", entity.RoleFuncionario)
	require.NoError(t, err)
	assert.True(t, allowed.Empty())
	assert.False(t, allowed.Contains("o1"))
}

// Funcionário com permissões: só os ids concedidos.
func TestAllowedObraIDs_FuncionarioComPermissoes(t *testing.T) {
	r := authz.NewResolver(&fakePermRepo{
		obrasPorUser: map[string][]string{"f1": {"o1", "o3"}},
	})

	allowed, err := r.AllowedObraIDs("f1", entity.RoleFuncionario)
	require.NoError(t, err)
	assert.True(t, allowed.Contains("o1"))
	assert.False(t, allowed.Contains("o2"))
	assert.True(t, allowed.Contains("o3"))
}

// Falha de consulta fecha o acesso, mas devolve o erro para o chamador
// distinguir "vazio por política" de "vazio por falha".
func TestAllowedObraIDs_ErroFechaAcesso(t *testing.T) {
	r := authz.NewResolver(&fakePermRepo{err: errors.New("db fora do ar")})

	allowed, err := r.AllowedObraIDs("f1", entity.RoleFuncionario)
	assert.Error(t, err)
	assert.True(t, allowed.Empty(), "falha deve fechar o acesso")
}

func TestAllowedFerramentaIDs_ErroFechaAcesso(t *testing.T) {
	r := authz.NewResolver(&fakePermRepo{err: errors.New("db fora do ar")})

	allowed, err := r.AllowedFerramentaIDs("f1", entity.RoleFuncionario)
	assert.Error(t, err)
	assert.True(t, allowed.Empty())
}

// Verificação pontual: host sempre passa; funcionário só com linha; erro
// de consulta nega.
func TestHasObraPermission(t *testing.T) {
	repo := &fakePermRepo{obrasPorUser: map[string][]string{"f1": {"o1"}}}
	r := authz.NewResolver(repo)

	assert.True(t, r.HasObraPermission("h1", entity.RoleHost, "o9"))
	assert.True(t, r.HasObraPermission("f1", entity.RoleFuncionario, "o1"))
	assert.False(t, r.HasObraPermission("f1", entity.RoleFuncionario, "o2"))

	repo.err = errors.New("db fora do ar")
	assert.False(t, r.HasObraPermission("f1", entity.RoleFuncionario, "o1"),
		"erro de consulta deve negar o acesso")
	assert.True(t, r.HasObraPermission("h1", entity.RoleHost, "o1"),
		"host não depende da consulta")
}

func TestHasFerramentaPermission(t *testing.T) {
	repo := &fakePermRepo{ferramentasPorUser: map[string][]string{"f1": {"fe1"}}}
	r := authz.NewResolver(repo)

	assert.True(t, r.HasFerramentaPermission("f1", entity.RoleFuncionario, "fe1"))
	assert.False(t, r.HasFerramentaPermission("f1", entity.RoleFuncionario, "fe2"))
}
