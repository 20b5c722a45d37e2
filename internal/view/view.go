// Package view turns persistence rows into the plain structures the
// templates render. Nothing in here touches the database; every page field
// passes through one of these transforms instead of exposing model types.
package view

import (
	"time"

	"github.com/avelline/stagelist/internal/model"
)

// startTimeLayout is how show start times appear on pages; the datetime
// template filter re-parses these strings.
const startTimeLayout = "2006-01-02 15:04:05"

type EntityRef struct {
	ID   uint
	Name string
}

type SearchResult struct {
	Count int
	Data  []EntityRef
}

type VenueSummary struct {
	ID               uint
	Name             string
	NumUpcomingShows int64
}

type CityGroup struct {
	City   string
	State  string
	Venues []VenueSummary
}

type ShowRef struct {
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	VenueID         uint
	VenueName       string
	VenueImageLink  string
	StartTime       string
}

type VenueDetail struct {
	ID                 uint
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	WebsiteLink        string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
	ImageLink          string
	Genres             []string
	PastShows          []ShowRef
	UpcomingShows      []ShowRef
	PastShowsCount     int
	UpcomingShowsCount int
}

type ArtistDetail struct {
	ID                 uint
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	SeekingTalent      bool
	SeekingDescription string
	Genres             []string
	PastShows          []ShowRef
	UpcomingShows      []ShowRef
	PastShowsCount     int
	UpcomingShowsCount int
}

// GroupVenuesByCity buckets venues by (city, state) in first-encounter
// order. With venues sorted by (city, state, id) the groups come out in
// ascending city order and every venue lands in exactly one group.
func GroupVenuesByCity(venues []model.Venue, upcomingCounts map[uint]int64) []CityGroup {
	var groups []CityGroup
	index := make(map[[2]string]int)
	for _, venue := range venues {
		key := [2]string{venue.City, venue.State}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CityGroup{City: venue.City, State: venue.State})
		}
		groups[i].Venues = append(groups[i].Venues, VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: upcomingCounts[venue.ID],
		})
	}
	return groups
}

func ToSearchResultVenues(venues []model.Venue) SearchResult {
	data := make([]EntityRef, 0, len(venues))
	for _, venue := range venues {
		data = append(data, EntityRef{ID: venue.ID, Name: venue.Name})
	}
	return SearchResult{Count: len(data), Data: data}
}

func ToSearchResultArtists(artists []model.Artist) SearchResult {
	data := make([]EntityRef, 0, len(artists))
	for _, artist := range artists {
		data = append(data, EntityRef{ID: artist.ID, Name: artist.Name})
	}
	return SearchResult{Count: len(data), Data: data}
}

// ToVenueDetail flattens the venue, its genre names in insertion order, and
// its shows annotated with the performing artist.
func ToVenueDetail(venue *model.Venue, past, upcoming []model.Show) VenueDetail {
	detail := VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		WebsiteLink:        venue.WebsiteLink,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		Genres:             genreNames(venue.Genres),
		PastShows:          artistShowRefs(past),
		UpcomingShows:      artistShowRefs(upcoming),
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail
}

func ToArtistDetail(artist *model.Artist, past, upcoming []model.Show) ArtistDetail {
	detail := ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		WebsiteLink:        artist.WebsiteLink,
		SeekingTalent:      artist.SeekingTalent,
		SeekingDescription: artist.SeekingDescription,
		Genres:             genreNames(artist.Genres),
		PastShows:          venueShowRefs(past),
		UpcomingShows:      venueShowRefs(upcoming),
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail
}

// ToShowSummary describes one show for the full listing; the show must have
// both Venue and Artist loaded.
func ToShowSummary(show model.Show) ShowRef {
	return ShowRef{
		VenueID:         show.VenueID,
		VenueName:       show.Venue.Name,
		VenueImageLink:  show.Venue.ImageLink,
		ArtistID:        show.ArtistID,
		ArtistName:      show.Artist.Name,
		ArtistImageLink: show.Artist.ImageLink,
		StartTime:       formatStartTime(show.StartTime),
	}
}

func ToShowSummaries(shows []model.Show) []ShowRef {
	summaries := make([]ShowRef, 0, len(shows))
	for _, show := range shows {
		summaries = append(summaries, ToShowSummary(show))
	}
	return summaries
}

func genreNames(genres []model.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		names = append(names, genre.Name)
	}
	return names
}

func artistShowRefs(shows []model.Show) []ShowRef {
	refs := make([]ShowRef, 0, len(shows))
	for _, show := range shows {
		refs = append(refs, ShowRef{
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       formatStartTime(show.StartTime),
		})
	}
	return refs
}

func venueShowRefs(shows []model.Show) []ShowRef {
	refs := make([]ShowRef, 0, len(shows))
	for _, show := range shows {
		refs = append(refs, ShowRef{
			VenueID:        show.VenueID,
			VenueName:      show.Venue.Name,
			VenueImageLink: show.Venue.ImageLink,
			StartTime:      formatStartTime(show.StartTime),
		})
	}
	return refs
}

func formatStartTime(t time.Time) string {
	return t.Format(startTimeLayout)
}
