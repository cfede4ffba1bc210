package token_test

import (
	"testing"

	"github.com/jhoicas/ventas-api/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testID     = "00000000-0000-0000-0000-000000000001"
	testIssuer = "ventas-api-test"
)

// Caso 1: Generate + Parse devuelve la identidad completa del vendedor.
func TestToken_GenerateAndParse(t *testing.T) {
	tok, err := token.Generate(testSecret, testID, "juan@correo.com", "Juan", "Pérez", testIssuer, 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := token.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testID, claims.UsuarioID)
	assert.Equal(t, "juan@correo.com", claims.Email)
	assert.Equal(t, "Juan", claims.Nombre)
	assert.Equal(t, "Pérez", claims.Apellido)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, testID, claims.Subject)
}

// Caso 2: token con expiración negativa (ya vencido) → error.
func TestToken_Expirado_RetornaError(t *testing.T) {
	tok, err := token.Generate(testSecret, testID, "juan@correo.com", "Juan", "Pérez", testIssuer, -1)
	require.NoError(t, err)

	_, err = token.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

// Caso 3: secret distinto al de firma → error.
func TestToken_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := token.Generate(testSecret, testID, "juan@correo.com", "Juan", "Pérez", testIssuer, 24)
	require.NoError(t, err)

	_, err = token.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

// Caso 4: secret vacío no firma ni valida.
func TestToken_SecretVacio_RetornaError(t *testing.T) {
	_, err := token.Generate("", testID, "juan@correo.com", "Juan", "Pérez", testIssuer, 24)
	assert.Error(t, err)

	_, err = token.Parse("", "cualquier.token.aqui")
	assert.Error(t, err)
}

// Caso 5: basura en lugar de un JWT → error.
func TestToken_Malformado_RetornaError(t *testing.T) {
	_, err := token.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}
