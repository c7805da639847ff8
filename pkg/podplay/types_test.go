package podplay

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixTime_UnmarshalJSON(t *testing.T) {
	var ts UnixTime
	require.NoError(t, json.Unmarshal([]byte(`1614760200`), &ts))
	assert.Equal(t, time.Unix(1614760200, 0).UTC(), ts.Time())

	assert.Error(t, json.Unmarshal([]byte(`"not-a-timestamp"`), &ts))
}

func TestUnixTime_RoundTrip(t *testing.T) {
	ts := UnixTime(time.Unix(1700000000, 0).UTC())

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1700000000", string(data))

	var decoded UnixTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Time().Equal(ts.Time()))
}

func TestEpisode_Decode(t *testing.T) {
	body := `{
		"id": 2617509,
		"podcast_id": 31428,
		"title": "Saken om Orderud",
		"description": "Trippeldrapet som rystet Norge.",
		"mime_type": "audio/mpeg",
		"url": "https://audio.podplay.com/31428/2617509.mp3",
		"slug": "saken-om-orderud",
		"type": "full",
		"published": 1614760200,
		"encoded": true,
		"exclusive": false,
		"duration": 2745,
		"episode": 3,
		"season": 1
	}`

	var episode Episode
	require.NoError(t, json.Unmarshal([]byte(body), &episode))

	assert.Equal(t, 2617509, episode.ID)
	assert.Equal(t, 31428, episode.PodcastID)
	assert.Equal(t, EpisodeTypeFull, episode.Type)
	assert.Equal(t, time.Unix(1614760200, 0).UTC(), episode.Published.Time())
	assert.Equal(t, 2745, episode.Duration)
	assert.Equal(t, 3, episode.Episode)
	assert.Equal(t, 1, episode.Season)
}

func TestEpisode_DecodeMalformedPublished(t *testing.T) {
	var episode Episode
	err := json.Unmarshal([]byte(`{"id": 1, "published": "yesterday"}`), &episode)
	assert.Error(t, err)
}

func TestPodcast_DecodeOptionalFields(t *testing.T) {
	body := `{
		"id": 31428,
		"title": "Forbrytelse og straff",
		"author": "Podplay",
		"image": "abc123",
		"original": true,
		"language_iso": "no",
		"popularity": 88.5
	}`

	var podcast Podcast
	require.NoError(t, json.Unmarshal([]byte(body), &podcast))

	assert.Equal(t, 31428, podcast.ID)
	assert.Empty(t, podcast.CategoryIDs)
	assert.Empty(t, podcast.RSS)
	assert.Empty(t, podcast.Type)
}

func TestNestCategories(t *testing.T) {
	parent := 7
	missing := 99
	categories := []*Category{
		{ID: 1, Name: "True Crime"},
		{ID: 7, Name: "News"},
		{ID: 13, Name: "Politics", ParentID: &parent},
		{ID: 42, Name: "Orphan", ParentID: &missing},
	}

	roots := nestCategories(categories)

	require.Len(t, roots, 3)
	assert.Equal(t, 1, roots[0].ID)
	require.Len(t, roots[1].Children, 1)
	assert.Equal(t, 13, roots[1].Children[0].ID)
	assert.Equal(t, 42, roots[2].ID)
}
