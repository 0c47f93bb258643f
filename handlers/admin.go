package handlers

import (
	"log/slog"
	"net/http"

	"roster/middleware"
	"roster/models"
)

// The first seeded row is the one and only admin.
const bootstrapAdminID = 1

type adminPageData struct {
	User     *models.User
	Flashes  []string
	AllUsers []models.User
}

func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)

	if user.ID != bootstrapAdminID {
		slog.Warn("Admin page denied", "user_id", user.ID)
		h.sessions.Flash(w, r, "Sorry only admins can access admin page.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	allUsers, err := h.users.ListAll(r.Context())
	if err != nil {
		slog.Error("Failed to list users", "error", err)
		h.sessions.Flash(w, r, "Oops! Seems there was an error! Try again!")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	h.render(w, r, adminTmpl, adminPageData{
		User:     user,
		Flashes:  h.sessions.Flashes(w, r),
		AllUsers: allUsers,
	})
}
