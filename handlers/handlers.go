package handlers

import (
	"html/template"
	"log"
	"log/slog"
	"net/http"

	"roster/config"
	"roster/models"
	"roster/services"
	"roster/store"
	"roster/templates"
	"roster/validator"
)

var (
	indexTmpl     *template.Template
	loginTmpl     *template.Template
	signupTmpl    *template.Template
	dashboardTmpl *template.Template
	adminTmpl     *template.Template
)

func init() {
	indexTmpl = mustParse("pages/index.html")
	loginTmpl = mustParse("pages/login.html")
	signupTmpl = mustParse("pages/signup.html")
	dashboardTmpl = mustParse("pages/dashboard.html")
	adminTmpl = mustParse("pages/admin.html")
}

func mustParse(page string) *template.Template {
	t, err := template.ParseFS(templates.FS, "layouts/base.html", page)
	if err != nil {
		log.Fatalf("Failed to parse %s template: %v", page, err)
	}
	return t
}

type Handler struct {
	cfg      *config.Config
	users    store.UserStore
	sessions *services.SessionManager
	auth     *services.AuthService
}

func New(cfg *config.Config, users store.UserStore, sessions *services.SessionManager) *Handler {
	return &Handler{
		cfg:      cfg,
		users:    users,
		sessions: sessions,
		auth:     services.NewAuthService(users),
	}
}

// pageData is the payload every page template receives. User is nil on
// public pages; Form holds the submitted (or prefilled) field values so a
// failed submit never loses the visitor's input.
type pageData struct {
	User    *models.User
	Flashes []string
	Form    any
	Errors  validator.ValidationErrors
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, tmpl *template.Template, data any) {
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("Error rendering template", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
