package auth

// CredentialChecker decide si un par usuario/contraseña habilita el
// panel de administración. La interfaz permite sustituir el par
// estático por algo más serio sin tocar los handlers.
type CredentialChecker interface {
	Check(username, password string) bool
}

// StaticCredentials compara contra un único par fijo de configuración
type StaticCredentials struct {
	Username string
	Password string
}

func (c StaticCredentials) Check(username, password string) bool {
	return username == c.Username && password == c.Password
}
