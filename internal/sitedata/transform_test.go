package sitedata

import (
	"fmt"
	"testing"

	"github.com/jaimeum/musicdata/pkg/lastfm"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{1234567, "1,234,567"},
		{0, "0"},
		{42, "42"},
		{1000, "1,000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatCount(tt.input); got != tt.expected {
				t.Errorf("FormatCount(%d) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStatisticsEntries(t *testing.T) {
	t.Run("profile url from api", func(t *testing.T) {
		user := &lastfm.UserInfo{
			Name:      "jaimeum19",
			URL:       "https://www.last.fm/user/jaimeum19",
			Playcount: lastfm.Number(1234567),
		}

		entries := StatisticsEntries(user, "jaimeum19")
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}

		if entries[0].Key != "Total Scrobbles" || entries[0].Value != "1,234,567" {
			t.Errorf("unexpected scrobbles entry: %+v", entries[0])
		}
		if entries[0].URL != "" {
			t.Errorf("scrobbles entry must not carry a url, got %q", entries[0].URL)
		}
		if entries[1].Key != "Last.fm Profile" || entries[1].Value != "jaimeum19" {
			t.Errorf("unexpected profile entry: %+v", entries[1])
		}
		if entries[1].URL != "https://www.last.fm/user/jaimeum19" {
			t.Errorf("unexpected profile url: %q", entries[1].URL)
		}
	})

	t.Run("profile url fallback", func(t *testing.T) {
		user := &lastfm.UserInfo{Name: "jaimeum19"}

		entries := StatisticsEntries(user, "jaimeum19")
		if entries[1].URL != "https://www.last.fm/user/jaimeum19" {
			t.Errorf("expected constructed profile url, got %q", entries[1].URL)
		}
		if entries[0].Value != "0" {
			t.Errorf("expected zero playcount to render as \"0\", got %q", entries[0].Value)
		}
	})
}

func TestArtistEntries(t *testing.T) {
	artists := []lastfm.TopArtist{
		{Name: "Radiohead", URL: "https://example.com/radiohead", Playcount: lastfm.Number(2048)},
		{Name: "Björk", URL: "", Playcount: lastfm.Number(1000000)},
	}

	entries := ArtistEntries(artists)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Key != "#1" || entries[0].Value != "Radiohead (2,048 plays)" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[0].URL != "https://example.com/radiohead" {
		t.Errorf("unexpected first url: %q", entries[0].URL)
	}
	if entries[1].Key != "#2" || entries[1].Value != "Björk (1,000,000 plays)" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestTrackEntries(t *testing.T) {
	tracks := []lastfm.TopTrack{
		{Name: "Yesterday", URL: "https://example.com/y", Artist: lastfm.ArtistRef{Name: "The Beatles"}},
	}

	entries := TrackEntries(tracks)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Key != "#1" || entries[0].Value != "Yesterday - The Beatles" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestAlbumEntries(t *testing.T) {
	albums := []lastfm.TopAlbum{
		{Name: "Help!", URL: "https://example.com/h", Artist: lastfm.ArtistRef{Name: "The Beatles"}},
		{Name: "OK Computer", URL: "https://example.com/ok", Artist: lastfm.ArtistRef{Name: "Radiohead"}},
	}

	entries := AlbumEntries(albums)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Key != "#2" || entries[1].Value != "OK Computer - Radiohead" {
		t.Errorf("unexpected entry: %+v", entries[1])
	}
}

func TestRecentEntries(t *testing.T) {
	t.Run("formatting", func(t *testing.T) {
		tracks := []lastfm.RecentTrack{
			{Name: "Creep", URL: "https://example.com/c", Artist: lastfm.RecentArtist{Text: "Radiohead"}},
		}

		entries := RecentEntries(tracks)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Value != "Creep - Radiohead" {
			t.Errorf("unexpected entry value: %q", entries[0].Value)
		}
	})

	t.Run("truncates to five items", func(t *testing.T) {
		tracks := make([]lastfm.RecentTrack, 8)
		for i := range tracks {
			tracks[i] = lastfm.RecentTrack{
				Name:   fmt.Sprintf("Track %d", i+1),
				Artist: lastfm.RecentArtist{Text: "Someone"},
			}
		}

		entries := RecentEntries(tracks)
		if len(entries) != 5 {
			t.Fatalf("expected 5 entries, got %d", len(entries))
		}
		for i, entry := range entries {
			wantKey := fmt.Sprintf("#%d", i+1)
			wantValue := fmt.Sprintf("Track %d - Someone", i+1)
			if entry.Key != wantKey || entry.Value != wantValue {
				t.Errorf("entry %d: got %+v, want key %q value %q", i, entry, wantKey, wantValue)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if entries := RecentEntries(nil); len(entries) != 0 {
			t.Errorf("expected no entries, got %d", len(entries))
		}
	})
}
