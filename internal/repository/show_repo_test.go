package repository

import (
	"testing"
	"time"

	"github.com/avelline/stagelist/internal/model"
)

func TestTimeFilterBoundary(t *testing.T) {
	db := openTestDB(t)
	venues := NewVenueRepoGorm(db)
	artists := NewArtistRepoGorm(db)
	shows := NewShowRepoGorm(db)

	venue := mustCreateVenue(t, venues, "The Musical Hop", "San Francisco", "CA")
	artist := &model.Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA"}
	if err := artists.Create(artist); err != nil {
		t.Fatalf("create artist: %v", err)
	}

	now := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	for _, start := range []time.Time{now.Add(-time.Hour), now, now.Add(time.Hour)} {
		if err := shows.Create(&model.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: start}); err != nil {
			t.Fatalf("create show at %v: %v", start, err)
		}
	}

	past, err := shows.ListForVenue(venue.ID, FilterPast, now)
	if err != nil {
		t.Fatalf("list past: %v", err)
	}
	upcoming, err := shows.ListForVenue(venue.ID, FilterUpcoming, now)
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}

	// A show starting exactly now counts as upcoming, never past, and the
	// two buckets cover all three shows.
	if len(past) != 1 {
		t.Fatalf("%d past shows, want 1", len(past))
	}
	if len(upcoming) != 2 {
		t.Fatalf("%d upcoming shows, want 2 (boundary show included)", len(upcoming))
	}

	count, err := shows.CountUpcomingForVenue(venue.ID, now)
	if err != nil {
		t.Fatalf("count upcoming: %v", err)
	}
	if count != 2 {
		t.Fatalf("upcoming count = %d, want 2", count)
	}
}

func TestListForArtistPreloadsVenue(t *testing.T) {
	db := openTestDB(t)
	venues := NewVenueRepoGorm(db)
	artists := NewArtistRepoGorm(db)
	shows := NewShowRepoGorm(db)

	venue := mustCreateVenue(t, venues, "Park Square Live Music & Coffee", "San Francisco", "CA")
	artist := &model.Artist{Name: "The Wild Sax Band", City: "San Francisco", State: "CA"}
	if err := artists.Create(artist); err != nil {
		t.Fatalf("create artist: %v", err)
	}
	now := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	if err := shows.Create(&model.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: now.Add(time.Hour)}); err != nil {
		t.Fatalf("create show: %v", err)
	}

	upcoming, err := shows.ListForArtist(artist.ID, FilterUpcoming, now)
	if err != nil {
		t.Fatalf("list for artist: %v", err)
	}
	if len(upcoming) != 1 {
		t.Fatalf("%d upcoming shows, want 1", len(upcoming))
	}
	if upcoming[0].Venue.Name != "Park Square Live Music & Coffee" {
		t.Fatalf("venue not preloaded, got %q", upcoming[0].Venue.Name)
	}
}
