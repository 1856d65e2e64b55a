// Package views holds the page view trees and the templates that render them.
// View trees are plain data so they can be built and checked without a browser.
package views

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))

// Templates returns the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	return pages
}

// Render executes one named template. Pages that stream their content in
// parts call it once per part.
func Render(w io.Writer, name string, data any) error {
	return pages.ExecuteTemplate(w, name, data)
}

// Static serves the embedded stylesheet and other assets.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

type StatusKind string

const (
	StatusLoading StatusKind = "loading"
	StatusError   StatusKind = "error"
	StatusInfo    StatusKind = "info"
)

type Link struct {
	Href string
	Text string
}

// StatusMessage is an inline message replacing the quiz container content.
type StatusMessage struct {
	Kind   StatusKind
	Text   string
	Detail string
	Link   *Link
}

// CSSClass mirrors the stylesheet classes of the status paragraph.
func (m StatusMessage) CSSClass() string {
	if m.Kind == StatusLoading {
		return "loading-message status-message"
	}
	return "error-message status-message"
}

type HiddenField struct {
	Name  string
	Value string
}

type OptionView struct {
	ID       string
	Name     string
	Value    string
	Label    string
	Required bool
}

type QuestionView struct {
	Index   int
	Number  int
	Text    string
	Name    string
	Options []OptionView
}

type QuizForm struct {
	ID          string
	Action      string
	Method      string
	Hidden      []HiddenField
	Questions   []QuestionView
	SubmitLabel string
}

type FlashView struct {
	ID             string
	Category       string
	Text           string
	DismissAfterMS int64
}

// QuizPage is the content of the quiz container: exactly one of Status or Form
// is set once loading finishes.
type QuizPage struct {
	Loading *StatusMessage
	Status  *StatusMessage
	Form    *QuizForm
}

type DashboardPage struct {
	Flashes          []FlashView
	Levels           []string
	LevelContexts    []string
	MaxManual        int
	MaxAI            int
	ManualLaunchPath string
	AILaunchPath     string
}

// QuizPageData feeds the opening part of the quiz page; Quiz is rendered by
// the later parts.
type QuizPageData struct {
	Flashes []FlashView
	Quiz    QuizPage
}
