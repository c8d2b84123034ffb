package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Logout destroys the current session and expires its cookie.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/", HttpOnly: true})
	if err := session.Save(); err != nil {
		a.logError(err, "failed to destroy session", nil)
		respondError(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
