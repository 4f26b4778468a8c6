// Package tmdb provides a client for The Movie Database TV API.
package tmdb

import "strconv"

// TVShow represents one TV series search result.
type TVShow struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
	FirstAirDate string `json:"first_air_date"` // "2020-10-03"
	Overview     string `json:"overview"`
}

// Year extracts the year from FirstAirDate.
func (s *TVShow) Year() int {
	if len(s.FirstAirDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(s.FirstAirDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// Season is one season entry inside TVDetails. Season 0 holds the
// specials on TMDB.
type Season struct {
	SeasonNumber int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	Name         string `json:"name"`
	AirDate      string `json:"air_date"`
}

// TVDetails represents full series metadata including the season list.
type TVDetails struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	OriginalName    string   `json:"original_name"`
	NumberOfSeasons int      `json:"number_of_seasons"`
	Seasons         []Season `json:"seasons"`
}

// searchResponse is the TMDB TV search API response.
type searchResponse struct {
	Page    int      `json:"page"`
	Results []TVShow `json:"results"`
}
