package podplay

import (
	"encoding/json"
	"time"
)

// Language selects the language segment of the API path.
type Language string

const (
	LanguageNorwegian Language = "no"
	LanguageSwedish   Language = "sv"
	LanguageFinnish   Language = "fi"
	LanguageEnglish   Language = "en"
)

// PodcastType describes how a show is meant to be consumed.
type PodcastType string

const (
	PodcastTypeEpisodic PodcastType = "episodic"
	PodcastTypeSerial   PodcastType = "serial"
)

// EpisodeType distinguishes full episodes from trailers.
type EpisodeType string

const (
	EpisodeTypeFull    EpisodeType = "full"
	EpisodeTypeTrailer EpisodeType = "trailer"
)

// PagingOrder controls the sort order of paged episode listings.
type PagingOrder string

const (
	OrderAscending  PagingOrder = "asc"
	OrderDescending PagingOrder = "desc"
)

// UnixTime decodes a JSON number of seconds since the Unix epoch.
type UnixTime time.Time

func (t *UnixTime) UnmarshalJSON(data []byte) error {
	var secs int64
	if err := json.Unmarshal(data, &secs); err != nil {
		return err
	}
	*t = UnixTime(time.Unix(secs, 0).UTC())
	return nil
}

func (t UnixTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Unix())
}

// Time returns the decoded timestamp as a time.Time.
func (t UnixTime) Time() time.Time {
	return time.Time(t)
}

// Category represents a podcast category from the Podplay API. Categories
// form a two-level tree via ParentID.
type Category struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	ParentID *int        `json:"parent_id,omitempty"`
	Children []*Category `json:"children,omitempty"`
}

// Image is a sized variant of a podcast artwork image.
type Image struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}

// Podcast represents a show from the Podplay API.
type Podcast struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Author      string      `json:"author"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Original    bool        `json:"original"`
	LanguageISO string      `json:"language_iso"`
	Popularity  float64     `json:"popularity"`
	CategoryIDs []int       `json:"category_id,omitempty"`
	Link        string      `json:"link,omitempty"`
	RSS         string      `json:"rss,omitempty"`
	Seasonal    bool        `json:"seasonal,omitempty"`
	Slug        string      `json:"slug,omitempty"`
	Type        PodcastType `json:"type,omitempty"`

	// Derived fields, populated by the client after decoding.
	Images     []Image     `json:"-"`
	Categories []*Category `json:"-"`
}

// Episode represents a single audio item belonging to a podcast.
type Episode struct {
	ID          int         `json:"id"`
	PodcastID   int         `json:"podcast_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	MimeType    string      `json:"mime_type"`
	URL         string      `json:"url"`
	Slug        string      `json:"slug"`
	Type        EpisodeType `json:"type"`
	Published   UnixTime    `json:"published"`
	Encoded     bool        `json:"encoded"`
	Exclusive   bool        `json:"exclusive"`
	Duration    int         `json:"duration,omitempty"`
	Episode     int         `json:"episode,omitempty"`
	Season      int         `json:"season,omitempty"`
}

// Response envelopes. Required members are pointers so a missing or
// wrongly-shaped body is detected instead of decoding to a zero value.

type podcastResponse struct {
	Podcast *Podcast `json:"podcast"`
}

type episodeResponse struct {
	Episode *Episode `json:"episode"`
}

type podcastResults struct {
	Results []*Podcast `json:"results"`
	Total   int        `json:"total"`
}

type episodeResults struct {
	Results []*Episode `json:"results"`
	Total   int        `json:"total"`
}

type categoryResults struct {
	Results []*Category `json:"results"`
}
