package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/domain/repository"
)

// HistoricoHandler leitura da auditoria. Restrito a hosts pelo router.
type HistoricoHandler struct {
	hist repository.HistoricoRepository
	auth *auth.AuthUseCase
}

// NewHistoricoHandler constrói o handler de histórico.
func NewHistoricoHandler(hist repository.HistoricoRepository, authUC *auth.AuthUseCase) *HistoricoHandler {
	return &HistoricoHandler{hist: hist, auth: authUC}
}

// List godoc
// @Summary      Listar entradas de auditoria da empresa
// @Tags         historico
// @Produce      json
// @Param        limit   query  int  false  "tamanho da página"
// @Param        offset  query  int  false  "offset"
// @Success      200  {array}  dto.HistoricoResponse
// @Router       /api/historico [get]
func (h *HistoricoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	list, err := h.hist.ListByOwners(h.auth.EscopoDeDonos(CurrentUser(c)), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := make([]dto.HistoricoResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.HistoricoResponse{
			ID:             e.ID,
			TipoEvento:     e.TipoEvento,
			Descricao:      e.Descricao,
			ObraID:         e.ObraID,
			MovimentacaoID: e.MovimentacaoID,
			UserID:         e.UserID,
			Metadata:       e.Metadata,
			CreatedAt:      e.CreatedAt,
		})
	}
	return c.JSON(out)
}
