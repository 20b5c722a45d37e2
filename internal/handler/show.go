package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avelline/stagelist/internal/app"
	"github.com/avelline/stagelist/internal/view"
)

type ShowHandler struct {
	app *app.App
}

func NewShowHandler(app *app.App) *ShowHandler {
	return &ShowHandler{
		app: app,
	}
}

func (h *ShowHandler) List(c *gin.Context) {
	shows, err := h.app.ShowService.ListAllShows()
	if err != nil {
		h.app.Logger.Error("list shows", zap.Error(err))
		renderServerError(c)
		return
	}
	renderHTML(c, http.StatusOK, "shows.html", gin.H{
		"Shows": view.ToShowSummaries(shows),
	})
}

func (h *ShowHandler) CreateForm(c *gin.Context) {
	renderHTML(c, http.StatusOK, "new_show.html", gin.H{})
}

// Create books an artist at a venue. Unresolvable ids roll the insert back
// and flash a failure; the home page renders either way, as on the
// original site.
func (h *ShowHandler) Create(c *gin.Context) {
	var form ShowForm
	if err := bindForm(c, &form); err != nil {
		flash(c, err.Error())
		renderHTML(c, http.StatusBadRequest, "new_show.html", gin.H{})
		return
	}
	startTime, err := parseStartTime(form.StartTime)
	if err != nil {
		flash(c, err.Error())
		renderHTML(c, http.StatusBadRequest, "new_show.html", gin.H{})
		return
	}
	if _, err := h.app.ShowService.CreateShow(form.ArtistID, form.VenueID, startTime); err != nil {
		h.app.Logger.Error("create show",
			zap.Uint("artist_id", form.ArtistID),
			zap.Uint("venue_id", form.VenueID),
			zap.Error(err))
		flash(c, "An error occurred. Show could not be listed.")
		renderHTML(c, http.StatusOK, "home.html", gin.H{})
		return
	}
	flash(c, "Show was successfully listed!")
	renderHTML(c, http.StatusOK, "home.html", gin.H{})
}
