package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avelline/stagelist/internal/app"
	"github.com/avelline/stagelist/internal/service"
	"github.com/avelline/stagelist/internal/service/domain"
	"github.com/avelline/stagelist/internal/view"
)

type ArtistHandler struct {
	app *app.App
}

func NewArtistHandler(app *app.App) *ArtistHandler {
	return &ArtistHandler{
		app: app,
	}
}

func (h *ArtistHandler) List(c *gin.Context) {
	artists, err := h.app.ArtistService.ListAllArtists()
	if err != nil {
		h.app.Logger.Error("list artists", zap.Error(err))
		renderServerError(c)
		return
	}
	renderHTML(c, http.StatusOK, "artists.html", gin.H{
		"Artists": view.ToSearchResultArtists(artists).Data,
	})
}

func (h *ArtistHandler) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	artists, err := h.app.ArtistService.SearchArtistsByName(term)
	if err != nil {
		h.app.Logger.Error("search artists", zap.Error(err))
		renderServerError(c)
		return
	}
	renderHTML(c, http.StatusOK, "search_artists.html", gin.H{
		"Results":    view.ToSearchResultArtists(artists),
		"SearchTerm": term,
	})
}

func (h *ArtistHandler) Detail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		renderNotFound(c)
		return
	}
	artist, err := h.app.ArtistService.GetArtistByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}
		h.app.Logger.Error("artist detail", zap.Uint("id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	past, upcoming, err := h.app.ArtistService.ArtistShows(id)
	if err != nil {
		h.app.Logger.Error("artist shows", zap.Uint("id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	renderHTML(c, http.StatusOK, "show_artist.html", gin.H{
		"Artist": view.ToArtistDetail(artist, past, upcoming),
	})
}

func (h *ArtistHandler) CreateForm(c *gin.Context) {
	renderHTML(c, http.StatusOK, "new_artist.html", gin.H{})
}

func (h *ArtistHandler) Create(c *gin.Context) {
	var form ArtistForm
	if err := bindForm(c, &form); err != nil {
		flash(c, err.Error())
		renderHTML(c, http.StatusBadRequest, "new_artist.html", gin.H{})
		return
	}
	fields, err := artistFieldsFromForm(form)
	if err != nil {
		flash(c, err.Error())
		renderHTML(c, http.StatusBadRequest, "new_artist.html", gin.H{})
		return
	}
	if _, err := h.app.ArtistService.CreateArtist(fields, form.Genres); err != nil {
		h.app.Logger.Error("create artist", zap.String("name", form.Name), zap.Error(err))
		flash(c, "An error occurred. Artist "+form.Name+" could not be listed.")
		renderHTML(c, http.StatusOK, "home.html", gin.H{})
		return
	}
	flash(c, "Artist "+form.Name+" was successfully listed!")
	renderHTML(c, http.StatusOK, "home.html", gin.H{})
}

func (h *ArtistHandler) EditForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		renderNotFound(c)
		return
	}
	artist, err := h.app.ArtistService.GetArtistByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}
		h.app.Logger.Error("edit artist form", zap.Uint("id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	renderHTML(c, http.StatusOK, "edit_artist.html", gin.H{
		"Artist": view.ToArtistDetail(artist, nil, nil),
	})
}

func (h *ArtistHandler) Edit(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		renderNotFound(c)
		return
	}
	var form ArtistForm
	if err := bindForm(c, &form); err != nil {
		flash(c, err.Error())
		c.Redirect(http.StatusFound, fmt.Sprintf("/artists/%d/edit", id))
		return
	}
	fields, err := artistFieldsFromForm(form)
	if err != nil {
		flash(c, err.Error())
		c.Redirect(http.StatusFound, fmt.Sprintf("/artists/%d/edit", id))
		return
	}
	if err := h.app.ArtistService.UpdateArtist(id, fields, form.Genres); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}
		h.app.Logger.Error("edit artist", zap.Uint("id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/artists/%d", id))
}

func artistFieldsFromForm(form ArtistForm) (domain.ArtistFields, error) {
	seeking, err := parseSeekingTalent(form.SeekingTalent)
	if err != nil {
		return domain.ArtistFields{}, err
	}
	return domain.ArtistFields{
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Phone:              form.Phone,
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		WebsiteLink:        form.WebsiteLink,
		SeekingTalent:      seeking,
		SeekingDescription: form.SeekingDescription,
	}, nil
}
