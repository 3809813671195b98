package sessiontoken_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praticaeng/obraflow-api/pkg/sessiontoken"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testCNPJ   = "04.205.151/0001-37"
	testIssuer = "obraflow-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := sessiontoken.Generate(testSecret, testUserID, testCNPJ, "host", testIssuer, 30)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, cnpj, role, err := sessiontoken.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testCNPJ, cnpj)
	assert.Equal(t, "host", role)
}

func TestParse_SecretErrado(t *testing.T) {
	tok, err := sessiontoken.Generate(testSecret, testUserID, testCNPJ, "funcionario", testIssuer, 30)
	require.NoError(t, err)

	_, _, _, err = sessiontoken.Parse("outro-secret", tok)
	assert.Error(t, err, "assinatura com outro secret deve ser rejeitada")
}

func TestParse_TokenMalformado(t *testing.T) {
	_, _, _, err := sessiontoken.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestGenerate_SecretVazio(t *testing.T) {
	_, err := sessiontoken.Generate("", testUserID, testCNPJ, "host", testIssuer, 30)
	assert.Error(t, err, "secret vazio não pode assinar sessão")
}
