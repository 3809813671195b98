package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/application/dto"
	"github.com/praticaeng/obraflow-api/internal/application/relatorio"
	"github.com/praticaeng/obraflow-api/internal/domain"
)

// RelatorioHandler relatórios de movimentações (JSON e PDF). Restrito a
// hosts pelo router.
type RelatorioHandler struct {
	uc   *relatorio.UseCase
	auth *auth.AuthUseCase
}

// NewRelatorioHandler constrói o handler de relatórios.
func NewRelatorioHandler(uc *relatorio.UseCase, authUC *auth.AuthUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc, auth: authUC}
}

// Movimentacoes godoc
// @Summary      Relatório de movimentações de uma obra
// @Tags         relatorios
// @Produce      json
// @Param        obra_id     query  string  true   "id da obra"
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.RelatorioMovimentacoesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/relatorios/movimentacoes [get]
func (h *RelatorioHandler) Movimentacoes(c *fiber.Ctx) error {
	var in dto.RelatorioMovimentacoesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	if in.ObraID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "obra_id é obrigatório"})
	}

	user := CurrentUser(c)
	rel, err := h.uc.Movimentacoes(c.Context(), user, h.auth.EscopoDeDonos(user), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rel)
}

// MovimentacoesPDF godoc
// @Summary      Relatório de movimentações em PDF
// @Tags         relatorios
// @Produce      application/pdf
// @Param        obra_id     query  string  true   "id da obra"
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/relatorios/movimentacoes/pdf [get]
func (h *RelatorioHandler) MovimentacoesPDF(c *fiber.Ctx) error {
	var in dto.RelatorioMovimentacoesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	if in.ObraID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "obra_id é obrigatório"})
	}

	user := CurrentUser(c)
	pdf, filename, err := h.uc.MovimentacoesPDF(c.Context(), user, h.auth.EscopoDeDonos(user), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
