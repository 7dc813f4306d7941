package sitemap

import (
	"bytes"
	"encoding/xml"
	"testing"
	"time"

	"github.com/pharmacie-tassigny/site/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 4, 9, 15, 30, 123, time.UTC)

func TestBuild(t *testing.T) {
	services := []domain.Service{
		{Slug: "vaccination"},
		{Slug: "depistage-angine"},
		{Slug: "vaccination"},
	}

	urls := Build("https://www.pharmacietassigny.fr/", services, now)
	require.Len(t, urls, 11)

	assert.Equal(t, URL{
		Loc:        "https://www.pharmacietassigny.fr",
		LastMod:    time.Date(2024, time.March, 4, 9, 15, 30, 0, time.UTC),
		ChangeFreq: Weekly,
		Priority:   1,
	}, urls[0])
	assert.Equal(t, "https://www.pharmacietassigny.fr/mentions-legales", urls[7].Loc)
	assert.Equal(t, Yearly, urls[7].ChangeFreq)

	assert.Equal(t, "https://www.pharmacietassigny.fr/services/vaccination", urls[9].Loc)
	assert.Equal(t, "https://www.pharmacietassigny.fr/services/depistage-angine", urls[10].Loc)
	assert.Equal(t, Priority(0.8), urls[10].Priority)
}

func TestBuild_NoServices(t *testing.T) {
	assert.Len(t, Build("https://example.org", nil, now), len(staticPages))
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	urls := Build("https://example.org", []domain.Service{{Slug: "vaccination"}}, now)
	require.NoError(t, Encode(&buf, urls))

	out := buf.String()
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, `<loc>https://example.org/services/vaccination</loc>`)
	assert.Contains(t, out, `<priority>1.0</priority>`)
	assert.Contains(t, out, `<priority>0.3</priority>`)
	assert.Contains(t, out, `<lastmod>2024-03-04T09:15:30Z</lastmod>`)

	var decoded struct {
		URLs []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.URLs, 10)
}
