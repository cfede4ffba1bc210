package domain

// VerificarVendedor aplica la regla de propiedad: solo el vendedor dueño del
// registro puede leerlo individualmente, modificarlo o eliminarlo.
func VerificarVendedor(vendedor, usuarioID string) error {
	if vendedor != usuarioID {
		return ErrNoAutorizado
	}
	return nil
}
