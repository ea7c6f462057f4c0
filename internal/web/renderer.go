package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/service/page/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ReminderDialog открытый диалог настройки напоминания
type ReminderDialog struct {
	BookingID  string
	ClientName string
	DateLabel  string
	Options    []domain.LeadTimeOption
	LeadTime   string
	Message    string
}

// PageView данные шаблона страницы
type PageView struct {
	Page      *models.PageResponse
	Reminder  *ReminderDialog
	CSRFField template.HTML
	Year      int
}

// Renderer отрисовывает страницу из встроенных шаблонов
type Renderer struct {
	page *template.Template
}

// NewRenderer разбирает встроенные шаблоны
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page.html").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{page: tmpl}, nil
}

// RenderPage пишет HTML страницы в w
func (r *Renderer) RenderPage(w io.Writer, view PageView) error {
	return r.page.ExecuteTemplate(w, "page.html", view)
}
