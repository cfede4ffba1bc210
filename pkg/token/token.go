package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más la identidad del vendedor.
// Nombre y Apellido viajan en el token para que obtenerUsuario no consulte la DB.
type Claims struct {
	jwt.RegisteredClaims
	UsuarioID string `json:"id"`
	Email     string `json:"email"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
}

// Generate genera un token JWT firmado (HS256) con la identidad del usuario.
func Generate(secret, usuarioID, email, nombre, apellido, issuer string, expHours int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   usuarioID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expHours) * time.Hour)),
		},
		UsuarioID: usuarioID,
		Email:     email,
		Nombre:    nombre,
		Apellido:  apellido,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims embebidos.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
