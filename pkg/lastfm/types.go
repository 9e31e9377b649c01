package lastfm

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Number is a play count as Last.fm serializes it: sometimes a JSON
// number, sometimes a numeric string. Anything else is an error.
type Number int64

// UnmarshalJSON decodes a JSON number or a numeric string.
func (n *Number) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("lastfm: invalid count: %w", err)
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("lastfm: non-numeric count %q", s)
		}
		*n = Number(v)
		return nil
	}

	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("lastfm: non-numeric count %s", string(data))
	}
	*n = Number(v)
	return nil
}

// Int64 returns the count as an int64.
func (n Number) Int64() int64 {
	return int64(n)
}

// UserInfo represents a user profile from user.getinfo.
type UserInfo struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Playcount Number `json:"playcount"`
}

// ArtistRef is the artist object embedded in top tracks and albums.
type ArtistRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TopArtist represents one artist from user.gettopartists.
type TopArtist struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Playcount Number `json:"playcount"`
}

// TopTrack represents one track from user.gettoptracks.
type TopTrack struct {
	Name   string    `json:"name"`
	URL    string    `json:"url"`
	Artist ArtistRef `json:"artist"`
}

// TopAlbum represents one album from user.gettopalbums.
type TopAlbum struct {
	Name   string    `json:"name"`
	URL    string    `json:"url"`
	Artist ArtistRef `json:"artist"`
}

// RecentArtist is the artist field of a recent track. Depending on the
// response it arrives as either a bare string or an object whose
// display name lives under "#text"; both shapes are accepted.
type RecentArtist struct {
	Text string
}

// UnmarshalJSON decodes either artist shape.
func (a *RecentArtist) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Text string `json:"#text"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("lastfm: invalid artist object: %w", err)
		}
		a.Text = obj.Text
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("lastfm: invalid artist field: %w", err)
	}
	a.Text = s
	return nil
}

// RecentTrack represents one track from user.getrecenttracks.
type RecentTrack struct {
	Name   string       `json:"name"`
	URL    string       `json:"url"`
	Artist RecentArtist `json:"artist"`
}
