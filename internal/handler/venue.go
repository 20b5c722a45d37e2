package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avelline/stagelist/internal/app"
	"github.com/avelline/stagelist/internal/service"
	"github.com/avelline/stagelist/internal/service/domain"
	"github.com/avelline/stagelist/internal/view"
)

type VenueHandler struct {
	app *app.App
}

func NewVenueHandler(app *app.App) *VenueHandler {
	return &VenueHandler{
		app: app,
	}
}

func (h *VenueHandler) List(c *gin.Context) {
	venues, counts, err := h.app.VenueService.ListVenuesWithUpcomingCounts()
	if err != nil {
		h.app.Logger.Error("list venues", zap.Error(err))
		renderServerError(c)
		return
	}
	areas := view.GroupVenuesByCity(venues, counts)
	renderHTML(c, http.StatusOK, "venues.html", gin.H{"Areas": areas})
}

func (h *VenueHandler) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	venues, err := h.app.VenueService.SearchVenuesByName(term)
	if err != nil {
		h.app.Logger.Error("search venues", zap.Error(err))
		renderServerError(c)
		return
	}
	renderHTML(c, http.StatusOK, "search_venues.html", gin.H{
		"Results":    view.ToSearchResultVenues(venues),
		"SearchTerm": term,
	})
}

func (h *VenueHandler) Detail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		renderNotFound(c)
		return
	}
	venue, err := h.app.VenueService.GetVenueByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}
		h.app.Logger.Error("venue detail", zap.Uint("id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	past, upcoming, err := h.app.VenueService.VenueShows(id)
	if err != nil {
		h.app.Logger.Error("venue shows", zap.Uint("id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	renderHTML(c, http.StatusOK, "show_venue.html", gin.H{
		"Venue": view.ToVenueDetail(venue, past, upcoming),
	})
}

func (h *VenueHandler) CreateForm(c *gin.Context) {
	renderHTML(c, http.StatusOK, "new_venue.html", gin.H{})
}

// Create inserts the venue and its genres. A validation failure re-renders
// the form; a storage failure is flashed but, as on the original site, the
// home page is still rendered.
func (h *VenueHandler) Create(c *gin.Context) {
	var form VenueForm
	if err := bindForm(c, &form); err != nil {
		flash(c, err.Error())
		renderHTML(c, http.StatusBadRequest, "new_venue.html", gin.H{})
		return
	}
	fields, err := venueFieldsFromForm(form)
	if err != nil {
		flash(c, err.Error())
		renderHTML(c, http.StatusBadRequest, "new_venue.html", gin.H{})
		return
	}
	if _, err := h.app.VenueService.CreateVenue(fields, form.Genres); err != nil {
		h.app.Logger.Error("create venue", zap.String("name", form.Name), zap.Error(err))
		flash(c, "An error occurred. Venue "+form.Name+" could not be listed.")
		renderHTML(c, http.StatusOK, "home.html", gin.H{})
		return
	}
	flash(c, "Venue "+form.Name+" was successfully listed!")
	renderHTML(c, http.StatusOK, "home.html", gin.H{})
}

// Delete removes a venue that has no shows booked. Venues referenced by a
// show are rejected so the show listing never dangles.
func (h *VenueHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
		return
	}
	switch err := h.app.VenueService.DeleteVenue(id); {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "venue still has shows booked"})
	default:
		h.app.Logger.Error("delete venue", zap.Uint("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete venue"})
	}
}

func (h *VenueHandler) EditForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		renderNotFound(c)
		return
	}
	venue, err := h.app.VenueService.GetVenueByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}
		h.app.Logger.Error("edit venue form", zap.Uint("id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	renderHTML(c, http.StatusOK, "edit_venue.html", gin.H{
		"Venue": view.ToVenueDetail(venue, nil, nil),
	})
}

// Edit overwrites every field of an existing venue and replaces its genre
// set. A missing id is a hard 404, never an insert.
func (h *VenueHandler) Edit(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		renderNotFound(c)
		return
	}
	var form VenueForm
	if err := bindForm(c, &form); err != nil {
		flash(c, err.Error())
		c.Redirect(http.StatusFound, fmt.Sprintf("/venues/%d/edit", id))
		return
	}
	fields, err := venueFieldsFromForm(form)
	if err != nil {
		flash(c, err.Error())
		c.Redirect(http.StatusFound, fmt.Sprintf("/venues/%d/edit", id))
		return
	}
	if err := h.app.VenueService.UpdateVenue(id, fields, form.Genres); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}
		h.app.Logger.Error("edit venue", zap.Uint("id", id), zap.Error(err))
		renderServerError(c)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/venues/%d", id))
}

func venueFieldsFromForm(form VenueForm) (domain.VenueFields, error) {
	seeking, err := parseSeekingTalent(form.SeekingTalent)
	if err != nil {
		return domain.VenueFields{}, err
	}
	return domain.VenueFields{
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Address:            form.Address,
		Phone:              form.Phone,
		WebsiteLink:        form.WebsiteLink,
		FacebookLink:       form.FacebookLink,
		SeekingTalent:      seeking,
		SeekingDescription: form.SeekingDescription,
		ImageLink:          form.ImageLink,
	}, nil
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
