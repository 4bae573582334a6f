package auth

// Claims es lo que el resto del servicio sabe del usuario autenticado.
// UserID identifica el workspace.
type Claims struct {
	UserID string
	Email  string
}
