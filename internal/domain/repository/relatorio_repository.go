package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovimentacaoRelatorioResult linha crua da consulta do relatório de
// movimentações. A DB produz o resultado; o use case converte em DTO.
type MovimentacaoRelatorioResult struct {
	MovimentacaoID  string
	FerramentaID    string
	Ferramenta      string
	Serial          string
	ValorFerramenta decimal.Decimal
	FromNome        string // nome da obra/assistência de origem, vazio se não houver
	ToNome          string
	Usuario         string
	Note            string
	CreatedAt       time.Time
}

// FerramentaStatusResult contagem de ferramentas por status para o resumo.
type FerramentaStatusResult struct {
	Status     string
	Quantidade int
	ValorTotal decimal.Decimal
}

// RelatorioRepository define as consultas de leitura para relatórios.
// Implementações são read-only.
type RelatorioRepository interface {
	// MovimentacoesPorObra movimentações com origem ou destino na obra no
	// período, já com nomes de ferramenta, locais e usuário resolvidos.
	MovimentacoesPorObra(
		ctx context.Context,
		obraID string,
		startDate, endDate time.Time,
	) ([]MovimentacaoRelatorioResult, error)

	// ResumoFerramentas contagem e valor total por status, no escopo dos
	// hosts informados.
	ResumoFerramentas(ctx context.Context, ownerIDs []string) ([]FerramentaStatusResult, error)
}
