package sessiontoken

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão JWT mais os campos próprios da sessão.
// CNPJ e Role permitem decisões do middleware sem consultar a DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	CNPJ   string `json:"cnpj"`
	Role   string `json:"role"` // "host" | "funcionario"
}

// Generate gera o valor assinado do cookie de sessão com validade em dias.
func Generate(secret, userID, cnpj, role, issuer string, expDias int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("sessiontoken: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expDias) * 24 * time.Hour)),
		},
		UserID: userID,
		CNPJ:   cnpj,
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token do cookie e devolve userID, cnpj e role.
// Retorna erro se o token for inválido, expirado ou com assinatura incorreta.
func Parse(secret, tokenString string) (userID, cnpj, role string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("sessiontoken: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.UserID, claims.CNPJ, claims.Role, nil
}
