package authz

import "github.com/praticaeng/obraflow-api/internal/domain/entity"

// FiltrarObras aplica o conjunto de visibilidade preservando a ordem de
// entrada. Sentinela All devolve a lista inteira.
func FiltrarObras(todas []*entity.Obra, allowed AllowedSet) []*entity.Obra {
	if allowed.All {
		return todas
	}
	out := make([]*entity.Obra, 0, len(todas))
	for _, o := range todas {
		if allowed.Contains(o.ID) {
			out = append(out, o)
		}
	}
	return out
}

// FiltrarFerramentas aplica o conjunto de visibilidade preservando a ordem
// de entrada.
func FiltrarFerramentas(todas []*entity.Ferramenta, allowed AllowedSet) []*entity.Ferramenta {
	if allowed.All {
		return todas
	}
	out := make([]*entity.Ferramenta, 0, len(todas))
	for _, f := range todas {
		if allowed.Contains(f.ID) {
			out = append(out, f)
		}
	}
	return out
}
