// seed cria o host principal do sistema (idempotente). Roda uma vez após
// as migrações:
//
//	go run ./cmd/seed
//
// Usa as mesmas variáveis de ambiente do servidor (DATABASE_URL etc.).
package main

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/internal/infrastructure/postgres"
	"github.com/praticaeng/obraflow-api/pkg/config"
	"github.com/praticaeng/obraflow-api/pkg/logger"
)

const (
	hostCNPJ  = "04.205.151/0001-37"
	hostEmail = "fernando@praticaengenharia.com.br"
	// Senha inicial; trocar no primeiro acesso.
	senhaInicial = "123456"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", App: "obraflow-seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão a PostgreSQL")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	creds := postgres.NewCredencialRepository(pool)

	existente, err := users.GetByID(auth.ProtectedHostID)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar host principal")
	}
	if existente != nil {
		log.Info().Str("user_id", existente.ID).Msg("host principal já existe, nada a fazer")
		return
	}

	now := time.Now()
	host := &entity.User{
		ID:        auth.ProtectedHostID,
		Name:      auth.ProtectedHostName,
		Email:     hostEmail,
		CNPJ:      hostCNPJ,
		Role:      entity.RoleHost,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := users.Create(host); err != nil {
		log.Fatal().Err(err).Msg("criar host principal")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senhaInicial), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("gerar hash da senha")
	}
	if err := creds.Create(&entity.Credencial{
		UserID:       host.ID,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		log.Fatal().Err(err).Msg("criar credencial do host principal")
	}

	log.Info().Str("user_id", host.ID).Str("cnpj", host.CNPJ).Msg("host principal criado")
}
