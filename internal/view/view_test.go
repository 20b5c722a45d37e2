package view

import (
	"reflect"
	"testing"
	"time"

	"github.com/avelline/stagelist/internal/model"
)

func TestGroupVenuesByCity(t *testing.T) {
	venues := []model.Venue{
		{ID: 3, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
	}
	groups := GroupVenuesByCity(venues, map[uint]int64{1: 1})

	if len(groups) != 2 {
		t.Fatalf("%d groups, want 2", len(groups))
	}
	if groups[0].City != "New York" || groups[1].City != "San Francisco" {
		t.Fatalf("group order %q, %q not first-encounter order", groups[0].City, groups[1].City)
	}
	if len(groups[1].Venues) != 2 {
		t.Fatalf("San Francisco group has %d venues, want 2", len(groups[1].Venues))
	}
	if groups[1].Venues[0].NumUpcomingShows != 1 || groups[1].Venues[1].NumUpcomingShows != 0 {
		t.Fatalf("upcoming counts not carried through: %+v", groups[1].Venues)
	}
}

func TestToVenueDetail(t *testing.T) {
	venue := &model.Venue{
		ID:    1,
		Name:  "The Musical Hop",
		City:  "San Francisco",
		State: "CA",
		Genres: []model.Genre{
			{Name: "Jazz"},
			{Name: "Reggae"},
		},
	}
	start := time.Date(2026, 9, 1, 21, 0, 0, 0, time.UTC)
	upcoming := []model.Show{{
		ArtistID:  4,
		StartTime: start,
		Artist:    model.Artist{Name: "Guns N Petals", ImageLink: "https://example.com/guns.jpg"},
	}}

	detail := ToVenueDetail(venue, nil, upcoming)
	if !reflect.DeepEqual(detail.Genres, []string{"Jazz", "Reggae"}) {
		t.Fatalf("genres = %v", detail.Genres)
	}
	if detail.PastShowsCount != 0 || detail.UpcomingShowsCount != 1 {
		t.Fatalf("counts %d/%d, want 0/1", detail.PastShowsCount, detail.UpcomingShowsCount)
	}
	got := detail.UpcomingShows[0]
	want := ShowRef{
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://example.com/guns.jpg",
		StartTime:       "2026-09-01 21:00:00",
	}
	if got != want {
		t.Fatalf("upcoming show = %+v, want %+v", got, want)
	}
}

func TestToArtistDetail(t *testing.T) {
	artist := &model.Artist{ID: 4, Name: "Guns N Petals"}
	past := []model.Show{{
		VenueID:   1,
		StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
		Venue:     model.Venue{Name: "The Musical Hop", ImageLink: "https://example.com/hop.jpg"},
	}}

	detail := ToArtistDetail(artist, past, nil)
	if detail.PastShowsCount != 1 || detail.UpcomingShowsCount != 0 {
		t.Fatalf("counts %d/%d, want 1/0", detail.PastShowsCount, detail.UpcomingShowsCount)
	}
	got := detail.PastShows[0]
	if got.VenueID != 1 || got.VenueName != "The Musical Hop" ||
		got.VenueImageLink != "https://example.com/hop.jpg" ||
		got.StartTime != "2019-05-21 21:30:00" {
		t.Fatalf("past show = %+v", got)
	}
}

func TestToShowSummary(t *testing.T) {
	show := model.Show{
		ArtistID:  4,
		VenueID:   1,
		StartTime: time.Date(2026, 9, 1, 21, 0, 0, 0, time.UTC),
		Artist:    model.Artist{Name: "Guns N Petals", ImageLink: "https://example.com/guns.jpg"},
		Venue:     model.Venue{Name: "The Musical Hop"},
	}
	summary := ToShowSummary(show)
	if summary.VenueName != "The Musical Hop" || summary.ArtistName != "Guns N Petals" ||
		summary.StartTime != "2026-09-01 21:00:00" {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestToSearchResult(t *testing.T) {
	result := ToSearchResultVenues([]model.Venue{
		{ID: 1, Name: "The Musical Hop"},
		{ID: 2, Name: "Park Square Live Music & Coffee"},
	})
	if result.Count != 2 {
		t.Fatalf("count = %d, want 2", result.Count)
	}
	if result.Data[0] != (EntityRef{ID: 1, Name: "The Musical Hop"}) {
		t.Fatalf("data = %+v", result.Data)
	}

	empty := ToSearchResultArtists(nil)
	if empty.Count != 0 || len(empty.Data) != 0 {
		t.Fatalf("empty result = %+v", empty)
	}
}
