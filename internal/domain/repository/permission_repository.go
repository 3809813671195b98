package repository

import "github.com/praticaeng/obraflow-api/internal/domain/entity"

// PermissionRepository define o porto de persistência para as tabelas de
// visibilidade de funcionários (user_obra_permissions e
// user_ferramenta_permissions).
type PermissionRepository interface {
	ObraIDsByUser(userID string) ([]string, error)
	FerramentaIDsByUser(userID string) ([]string, error)
	HasObra(userID, obraID string) (bool, error)
	HasFerramenta(userID, ferramentaID string) (bool, error)
	GrantObra(p *entity.ObraPermission) error
	RevokeObra(userID, obraID string) error
	GrantFerramenta(p *entity.FerramentaPermission) error
	RevokeFerramenta(userID, ferramentaID string) error
}
