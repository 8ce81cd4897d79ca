// Package render shapes responses for the hydrated frontend: every page
// is a component name plus a props bag, mutations answer with redirects
// carrying a one-shot flash cookie.
package render

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Component builds the body the frontend hydrates from.
func Component(name string, props gin.H) gin.H {
	if props == nil {
		props = gin.H{}
	}
	return gin.H{"component": name, "props": props}
}

// Page renders a component at 200, folding any pending flash message
// into the props and clearing it.
func Page(c *gin.Context, name string, props gin.H) {
	if props == nil {
		props = gin.H{}
	}
	if msg := takeFlash(c); msg != "" {
		props["flash"] = gin.H{"success": msg}
	}
	c.JSON(http.StatusOK, Component(name, props))
}

// Redirect answers a successful mutation: 303 to location with the flash
// stored for the next page render.
func Redirect(c *gin.Context, location string, flash string) {
	if flash != "" {
		c.SetCookie(flashCookie, flash, 60, "/", "", false, true)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// ValidationFailed returns the field-keyed error map to the form.
func ValidationFailed(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}

func takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}
