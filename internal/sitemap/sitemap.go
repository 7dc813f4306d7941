package sitemap

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pharmacie-tassigny/site/backend/internal/domain"
)

const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

const (
	Weekly  = "weekly"
	Monthly = "monthly"
	Yearly  = "yearly"
)

// Priority encodes with one decimal, as in "0.8".
type Priority float64

func (p Priority) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(p), 'f', 1, 64)), nil
}

type URL struct {
	Loc        string    `xml:"loc"`
	LastMod    time.Time `xml:"lastmod"`
	ChangeFreq string    `xml:"changefreq"`
	Priority   Priority  `xml:"priority"`
}

type page struct {
	path       string
	changeFreq string
	priority   Priority
}

var staticPages = []page{
	{"", Weekly, 1},
	{"/services", Weekly, 0.9},
	{"/equipe", Monthly, 0.7},
	{"/contact", Monthly, 0.8},
	{"/rendez-vous", Weekly, 0.9},
	{"/ordonnance", Monthly, 0.8},
	{"/la-pharmacie", Monthly, 0.6},
	{"/mentions-legales", Yearly, 0.3},
	{"/confidentialite", Yearly, 0.3},
}

const servicePriority Priority = 0.8

// Build lists the static pages followed by one page per service. A slug seen
// twice yields a single entry.
func Build(baseURL string, services []domain.Service, now time.Time) []URL {
	baseURL = strings.TrimRight(baseURL, "/")
	lastMod := now.UTC().Truncate(time.Second)

	urls := make([]URL, 0, len(staticPages)+len(services))
	for _, p := range staticPages {
		urls = append(urls, URL{
			Loc:        baseURL + p.path,
			LastMod:    lastMod,
			ChangeFreq: p.changeFreq,
			Priority:   p.priority,
		})
	}

	seen := make(map[string]struct{}, len(services))
	for _, service := range services {
		if _, dup := seen[service.Slug]; dup {
			continue
		}
		seen[service.Slug] = struct{}{}

		urls = append(urls, URL{
			Loc:        baseURL + "/services/" + service.Slug,
			LastMod:    lastMod,
			ChangeFreq: Monthly,
			Priority:   servicePriority,
		})
	}

	return urls
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Encode writes urls as a sitemaps.org document.
func Encode(w io.Writer, urls []URL) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(urlSet{Xmlns: Namespace, URLs: urls}); err != nil {
		return err
	}
	return enc.Close()
}
