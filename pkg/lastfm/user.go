package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// UserService provides read-only user.* operations for the Last.fm API.
type UserService struct {
	client *Client
}

const (
	// DefaultLimit is the number of items fetched per chart when the
	// caller does not specify a limit.
	DefaultLimit = 5

	// periodOverall requests all-time charts.
	periodOverall = "overall"
)

// GetInfo fetches a user's profile information.
func (s *UserService) GetInfo(ctx context.Context, user string) (*UserInfo, error) {
	body, err := s.client.call(ctx, "user.getinfo", map[string]string{
		"user": user,
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		User UserInfo `json:"user"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse user info: %w", err)
	}

	return &resp.User, nil
}

// GetTopArtists fetches a user's all-time top artists.
//
// If limit is zero or negative, DefaultLimit is used. An empty slice
// is returned when the user has no listening history.
func (s *UserService) GetTopArtists(ctx context.Context, user string, limit int) ([]TopArtist, error) {
	body, err := s.client.call(ctx, "user.gettopartists", map[string]string{
		"user":   user,
		"period": periodOverall,
		"limit":  limitParam(limit),
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		TopArtists struct {
			Artist []TopArtist `json:"artist"`
		} `json:"topartists"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse top artists: %w", err)
	}

	return resp.TopArtists.Artist, nil
}

// GetTopTracks fetches a user's all-time top tracks.
func (s *UserService) GetTopTracks(ctx context.Context, user string, limit int) ([]TopTrack, error) {
	body, err := s.client.call(ctx, "user.gettoptracks", map[string]string{
		"user":   user,
		"period": periodOverall,
		"limit":  limitParam(limit),
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		TopTracks struct {
			Track []TopTrack `json:"track"`
		} `json:"toptracks"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse top tracks: %w", err)
	}

	return resp.TopTracks.Track, nil
}

// GetTopAlbums fetches a user's all-time top albums.
func (s *UserService) GetTopAlbums(ctx context.Context, user string, limit int) ([]TopAlbum, error) {
	body, err := s.client.call(ctx, "user.gettopalbums", map[string]string{
		"user":   user,
		"period": periodOverall,
		"limit":  limitParam(limit),
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		TopAlbums struct {
			Album []TopAlbum `json:"album"`
		} `json:"topalbums"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse top albums: %w", err)
	}

	return resp.TopAlbums.Album, nil
}

// GetRecentTracks fetches a user's most recently played tracks.
//
// Recent tracks are not scoped to a period; the API returns them in
// reverse chronological order.
func (s *UserService) GetRecentTracks(ctx context.Context, user string, limit int) ([]RecentTrack, error) {
	body, err := s.client.call(ctx, "user.getrecenttracks", map[string]string{
		"user":  user,
		"limit": limitParam(limit),
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		RecentTracks struct {
			Track []RecentTrack `json:"track"`
		} `json:"recenttracks"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse recent tracks: %w", err)
	}

	return resp.RecentTracks.Track, nil
}

// limitParam clamps a limit to the default when unset.
func limitParam(limit int) string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return strconv.Itoa(limit)
}
