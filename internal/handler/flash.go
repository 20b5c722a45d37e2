package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// flash queues a one-shot message in the cookie session; the next rendered
// page displays and consumes it.
func flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	_ = session.Save()
}

func takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes() removes them from the session; persist the removal.
	_ = session.Save()
	messages := make([]string, 0, len(raw))
	for _, value := range raw {
		if s, ok := value.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

// renderHTML renders a template with any pending flash messages attached
// under "Flashes".
func renderHTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = takeFlashes(c)
	c.HTML(status, name, data)
}

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
}

func renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
}
