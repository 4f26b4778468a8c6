// Package anilist provides a client for the AniList GraphQL API.
package anilist

import "fmt"

// Media represents one anime entry from AniList.
type Media struct {
	ID        int        `json:"id"`
	Title     Title      `json:"title"`
	StartDate *FuzzyDate `json:"startDate"`
	Format    string     `json:"format"` // "TV", "MOVIE", "OVA", ...
	Episodes  int        `json:"episodes"`
}

// Title holds the title variants AniList tracks. Any of them may be empty.
type Title struct {
	Romaji  string `json:"romaji"`
	English string `json:"english"`
	Native  string `json:"native"`
}

// FuzzyDate is a date with optional precision; unknown parts are zero.
type FuzzyDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// DisplayTitle picks the best title variant for display. Native comes
// before romaji because most releases this tool handles are named in CJK.
func (m *Media) DisplayTitle(preferEnglish bool) string {
	if preferEnglish && m.Title.English != "" {
		return m.Title.English
	}
	if m.Title.Native != "" {
		return m.Title.Native
	}
	if m.Title.Romaji != "" {
		return m.Title.Romaji
	}
	if m.Title.English != "" {
		return m.Title.English
	}
	return "Unknown"
}

// FormatDate renders the start date at whatever precision AniList has.
func (m *Media) FormatDate() string {
	d := m.StartDate
	switch {
	case d == nil || d.Year == 0:
		return "unknown"
	case d.Month == 0:
		return fmt.Sprintf("%d", d.Year)
	case d.Day == 0:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}

// graphqlRequest is the AniList GraphQL request envelope.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphqlResponse is the AniList GraphQL response envelope. Only the
// shapes our two queries produce are modeled.
type graphqlResponse struct {
	Data struct {
		Page *struct {
			Media []Media `json:"media"`
		} `json:"Page"`
		Media *Media `json:"Media"`
	} `json:"data"`
}
