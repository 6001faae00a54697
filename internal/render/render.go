// Package render turns fetched metadata into HTML. Two strategies exist for
// the same data: a complete server-side page for preview crawlers and a
// minimal shell for humans whose script re-fetches the data through the
// public /api/song proxy. The duplication is intentional; it keeps the bot
// path to a single round trip while the interactive path stays progressive.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/FlazeIGuess/unitune-worker/internal/core/metadata"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// PageView is the data handed to the song and playlist templates.
type PageView struct {
	Title        string
	Artist       string
	Thumbnail    string
	CanonicalURL string
	MusicURL     string
	OGType       string
	Links        []metadata.PlatformLink
}

// ErrorView is the data handed to the error template.
type ErrorView struct {
	Status  int
	Text    string
	Message string
}

// Renderer holds the parsed template set.
type Renderer struct {
	// SiteURL is the canonical public base, used for og:url tags.
	SiteURL   string
	templates *template.Template
}

// New parses the embedded templates.
func New(siteURL string) (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	return &Renderer{SiteURL: siteURL, templates: templates}, nil
}

// Page writes the fully server-rendered document for crawler traffic.
func (r *Renderer) Page(w io.Writer, view PageView) error {
	return r.execute(w, "page.gohtml", r.finalize(view))
}

// Shell writes the minimal human-facing document. It carries the same Open
// Graph tags as the full page so link previews stay correct even when a
// crawler slips through classification.
func (r *Renderer) Shell(w io.Writer, view PageView) error {
	return r.execute(w, "shell.gohtml", r.finalize(view))
}

// Home writes the landing page shell.
func (r *Renderer) Home(w io.Writer) error {
	return r.execute(w, "home.gohtml", map[string]string{"SiteURL": r.SiteURL})
}

// Error writes a generic error page. Internal detail never reaches it;
// callers pass one of the fixed user-facing messages.
func (r *Renderer) Error(w io.Writer, status int, message string) error {
	return r.execute(w, "error.gohtml", ErrorView{
		Status:  status,
		Text:    http.StatusText(status),
		Message: message,
	})
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if r == nil || r.templates == nil {
		return fmt.Errorf("render: renderer is not initialized")
	}
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render: execute %s: %w", name, err)
	}
	return nil
}

func (r *Renderer) finalize(view PageView) PageView {
	if view.Title == "" {
		view.Title = "Unknown track"
	}
	if view.OGType == "" {
		view.OGType = "music.song"
	}
	return view
}

// SongView builds a PageView from parsed song metadata.
func SongView(song *metadata.Song, canonicalURL, musicURL string) PageView {
	view := PageView{
		CanonicalURL: canonicalURL,
		MusicURL:     musicURL,
		OGType:       "music.song",
	}
	if song != nil {
		view.Title = song.Title
		view.Artist = song.Artist
		view.Thumbnail = song.Thumbnail
		view.Links = song.Links
	}
	return view
}
