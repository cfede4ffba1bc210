package dto

import "time"

// RegistroInput datos para registrar un usuario (mutation nuevoUsuario).
type RegistroInput struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput credenciales para autenticarUsuario.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse token de sesión firmado.
type TokenResponse struct {
	Token string `json:"token"`
}

// UsuarioResponse usuario sin el hash de password. El hash nunca sale por la API.
type UsuarioResponse struct {
	ID       string    `json:"id"`
	Nombre   string    `json:"nombre"`
	Apellido string    `json:"apellido"`
	Email    string    `json:"email"`
	Creado   time.Time `json:"creado"`
}
