package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/praticaeng/obraflow-api/internal/application/auth"
	"github.com/praticaeng/obraflow-api/internal/domain/entity"
	"github.com/praticaeng/obraflow-api/pkg/logger"
)

// Canal NOTIFY emitido por trigger na tabela users.
const userChannel = "obraflow_users_changed"

// userNotification payload JSON do trigger. Para DELETE só op e id vêm
// preenchidos.
type userNotification struct {
	Op     string  `json:"op"`
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	CNPJ   string  `json:"cnpj"`
	Role   string  `json:"role"`
	HostID *string `json:"host_id"`
}

// UserFeed escuta LISTEN/NOTIFY de mudanças na tabela de usuários e faz
// fan-out dos eventos para os assinantes. Assinante lento perde eventos em
// vez de bloquear o listener; o resync periódico cobre a lacuna.
type UserFeed struct {
	pool *pgxpool.Pool
	log  *logger.Logger

	mu   sync.RWMutex
	subs map[int]chan auth.UserEvent
	next int
}

// NewUserFeed constrói o feed sobre o pool.
func NewUserFeed(pool *pgxpool.Pool, log *logger.Logger) *UserFeed {
	return &UserFeed{
		pool: pool,
		log:  log,
		subs: make(map[int]chan auth.UserEvent),
	}
}

// Subscribe registra um assinante e devolve o canal de eventos. O canal é
// fechado quando o contexto encerra.
func (f *UserFeed) Subscribe(ctx context.Context) <-chan auth.UserEvent {
	ch := make(chan auth.UserEvent, 16)

	f.mu.Lock()
	id := f.next
	f.next++
	f.subs[id] = ch
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs, id)
		close(ch)
		f.mu.Unlock()
	}()

	return ch
}

// Run mantém uma conexão dedicada em LISTEN até o contexto encerrar,
// reconectando com backoff em caso de queda.
func (f *UserFeed) Run(ctx context.Context) {
	for {
		if err := f.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			f.log.Warn().Err(err).Msg("listener de usuários caiu, reconectando")
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (f *UserFeed) listen(ctx context.Context) error {
	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listener conn: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+userChannel); err != nil {
		return fmt.Errorf("LISTEN %s: %w", userChannel, err)
	}
	f.log.Info().Str("channel", userChannel).Msg("escutando mudanças de usuários")

	for {
		notif, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		f.publish(notif.Payload)
	}
}

func (f *UserFeed) publish(payload string) {
	var n userNotification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		f.log.Warn().Err(err).Msg("payload de notificação inválido, ignorando")
		return
	}

	ev := auth.UserEvent{UserID: n.ID}
	switch n.Op {
	case "DELETE":
		ev.Op = auth.UserDeleted
	case "INSERT", "UPDATE":
		ev.Op = auth.UserUpdated
		ev.User = &entity.User{
			ID:     n.ID,
			Name:   n.Name,
			Email:  n.Email,
			CNPJ:   n.CNPJ,
			Role:   entity.Role(n.Role),
			HostID: n.HostID,
		}
	default:
		return
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, ch := range f.subs {
		select {
		case ch <- ev:
		default:
			// Assinante lento: descartar, o resync cobre.
		}
	}
}
