package sitedata

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/jaimeum/musicdata/pkg/lastfm"
)

const (
	// profileURLFormat reconstructs a profile URL when user.getinfo
	// omits one.
	profileURLFormat = "https://www.last.fm/user/%s"

	// maxRecent caps the Recently Played section; the API sometimes
	// returns more items than the requested limit (a now-playing track
	// is appended on top of it).
	maxRecent = 5
)

// FormatCount renders a play count with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// StatisticsEntries builds the Listening Statistics items: the total
// scrobble count and a link to the user's profile.
func StatisticsEntries(user *lastfm.UserInfo, username string) []Entry {
	profileURL := user.URL
	if profileURL == "" {
		profileURL = fmt.Sprintf(profileURLFormat, username)
	}

	return []Entry{
		Leaf("Total Scrobbles", FormatCount(user.Playcount.Int64()), ""),
		Leaf("Last.fm Profile", username, profileURL),
	}
}

// ArtistEntries builds ranked Top Artists items.
func ArtistEntries(artists []lastfm.TopArtist) []Entry {
	entries := make([]Entry, 0, len(artists))
	for i, artist := range artists {
		display := fmt.Sprintf("%s (%s plays)", artist.Name, FormatCount(artist.Playcount.Int64()))
		entries = append(entries, Leaf(rank(i), display, artist.URL))
	}
	return entries
}

// TrackEntries builds ranked Top Tracks items.
func TrackEntries(tracks []lastfm.TopTrack) []Entry {
	entries := make([]Entry, 0, len(tracks))
	for i, track := range tracks {
		display := fmt.Sprintf("%s - %s", track.Name, track.Artist.Name)
		entries = append(entries, Leaf(rank(i), display, track.URL))
	}
	return entries
}

// AlbumEntries builds ranked Top Albums items.
func AlbumEntries(albums []lastfm.TopAlbum) []Entry {
	entries := make([]Entry, 0, len(albums))
	for i, album := range albums {
		display := fmt.Sprintf("%s - %s", album.Name, album.Artist.Name)
		entries = append(entries, Leaf(rank(i), display, album.URL))
	}
	return entries
}

// RecentEntries builds ranked Recently Played items, keeping at most
// maxRecent of them regardless of how many the API returned.
func RecentEntries(tracks []lastfm.RecentTrack) []Entry {
	if len(tracks) > maxRecent {
		tracks = tracks[:maxRecent]
	}

	entries := make([]Entry, 0, len(tracks))
	for i, track := range tracks {
		display := fmt.Sprintf("%s - %s", track.Name, track.Artist.Text)
		entries = append(entries, Leaf(rank(i), display, track.URL))
	}
	return entries
}

// rank formats a 0-based index as a "#N" rank label.
func rank(i int) string {
	return fmt.Sprintf("#%d", i+1)
}
