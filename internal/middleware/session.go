package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CookieName es la cookie opaca que identifica la sesión del visitante
const CookieName = "sid"

const sessionKey = "sessionID"

// Session asegura que toda petición lleve un id de sesión: lee la
// cookie o emite una nueva en el primer contacto. El estado asociado
// vive en el almacén de sesiones, nunca en la cookie.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(CookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(CookieName, sid, 0, "/", "", false, true)
		}
		c.Set(sessionKey, sid)
		c.Next()
	}
}

// SessionID devuelve el id de sesión colocado por el middleware Session
func SessionID(c *gin.Context) string {
	v, _ := c.Get(sessionKey)
	sid, _ := v.(string)
	return sid
}
