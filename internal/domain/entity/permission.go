package entity

import "time"

// ObraPermission concede a um funcionário visibilidade sobre uma obra,
// no escopo do host que concedeu. Ausência de linhas = nenhuma visibilidade.
type ObraPermission struct {
	ID        string
	UserID    string
	ObraID    string
	HostID    string
	CreatedAt time.Time
}

// FerramentaPermission concede a um funcionário visibilidade sobre uma
// ferramenta específica.
type FerramentaPermission struct {
	ID           string
	UserID       string
	FerramentaID string
	HostID       string
	CreatedAt    time.Time
}
