package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praticaeng/obraflow-api/internal/application/authz"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
)

func obras(ids ...string) []*entity.Obra {
	out := make([]*entity.Obra, 0, len(ids))
	for _, id := range ids {
		out = append(out, &entity.Obra{ID: id})
	}
	return out
}

func ferramentas(ids ...string) []*entity.Ferramenta {
	out := make([]*entity.Ferramenta, 0, len(ids))
	for _, id := range ids {
		out = append(out, &entity.Ferramenta{ID: id})
	}
	return out
}

// Fábrica do conjunto de testes: resolver com permissões fixas.
func resolverCom(obrasPorUser map[string][]string) *authz.Resolver {
	return authz.NewResolver(&fakePermRepo{obrasPorUser: obrasPorUser})
}

// Sentinela All devolve a lista inteira, na mesma ordem.
func TestFiltrarObras_HostVeTudo(t *testing.T) {
	todas := obras("o1", "o2", "o3", "o4", "o5")
	allowed, err := resolverCom(nil).AllowedObraIDs("h1", entity.RoleHost)
	require.NoError(t, err)

	result := authz.FiltrarObras(todas, allowed)
	assert.Len(t, result, 5)
	assert.Equal(t, todas, result)
}

// Subconjunto {o1, o3}: mantém a ordem de entrada.
func TestFiltrarObras_SubconjuntoPreservaOrdem(t *testing.T) {
	todas := obras("o1", "o2", "o3", "o4", "o5")
	allowed, err := resolverCom(map[string][]string{
		"f1": {"o3", "o1"}, // ordem da concessão não importa
	}).AllowedObraIDs("f1", entity.RoleFuncionario)
	require.NoError(t, err)

	result := authz.FiltrarObras(todas, allowed)
	require.Len(t, result, 2)
	assert.Equal(t, "o1", result[0].ID)
	assert.Equal(t, "o3", result[1].ID)
}

// Cinco obras cadastradas, funcionário sem nenhuma permissão: lista vazia.
func TestFiltrarObras_SemPermissaoNenhumaVisivel(t *testing.T) {
	todas := obras("o1", "o2", "o3", "o4", "o5")
	allowed, err := resolverCom(map[string][]string{}).AllowedObraIDs("f1", entity.RoleFuncionario)
	require.NoError(t, err)

	result := authz.FiltrarObras(todas, allowed)
	assert.Empty(t, result)
}

func TestFiltrarFerramentas(t *testing.T) {
	todas := ferramentas("fe1", "fe2", "fe3")

	r := authz.NewResolver(&fakePermRepo{
		ferramentasPorUser: map[string][]string{"f1": {"fe2"}},
	})
	allowed, err := r.AllowedFerramentaIDs("f1", entity.RoleFuncionario)
	require.NoError(t, err)

	result := authz.FiltrarFerramentas(todas, allowed)
	require.Len(t, result, 1)
	assert.Equal(t, "fe2", result[0].ID)

	all, err := r.AllowedFerramentaIDs("h1", entity.RoleHost)
	require.NoError(t, err)
	assert.Len(t, authz.FiltrarFerramentas(todas, all), 3)
}
