package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"roster/middleware"
	"roster/models"
	"roster/validator"
)

type profileForm struct {
	FullName string
	Age      string
	Location string
	Username string
	Email    string
}

func profileFormFromUser(user *models.User) profileForm {
	return profileForm{
		FullName: user.FullName,
		Age:      strconv.Itoa(user.Age),
		Location: user.Location,
		Username: user.Username,
		Email:    user.Email,
	}
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)

	if r.Method == http.MethodGet {
		h.render(w, r, dashboardTmpl, pageData{
			User:    user,
			Flashes: h.sessions.Flashes(w, r),
			Form:    profileFormFromUser(user),
		})
		return
	}

	form := profileForm{
		FullName: strings.TrimSpace(r.FormValue("full_name")),
		Age:      strings.TrimSpace(r.FormValue("age")),
		Location: strings.TrimSpace(r.FormValue("location")),
		Username: strings.TrimSpace(r.FormValue("username")),
		Email:    strings.TrimSpace(r.FormValue("email")),
	}

	if errs := validator.ValidateProfile(form.FullName, form.Age, form.Location, form.Username, form.Email); errs.HasErrors() {
		h.render(w, r, dashboardTmpl, pageData{
			User:    user,
			Flashes: h.sessions.Flashes(w, r),
			Form:    form,
			Errors:  errs,
		})
		return
	}

	age, _ := strconv.Atoi(form.Age)
	updated := *user
	updated.FullName = form.FullName
	updated.Age = age
	updated.Location = form.Location
	updated.Username = form.Username
	updated.Email = form.Email

	if err := h.users.Update(r.Context(), &updated); err != nil {
		slog.Error("Profile update failed", "user_id", user.ID, "error", err)
		h.sessions.Flash(w, r, "Oops! Seems there was an error! Try again!")
		// Re-render with the submitted values so the edits are not lost
		h.render(w, r, dashboardTmpl, pageData{
			User:    user,
			Flashes: h.sessions.Flashes(w, r),
			Form:    form,
		})
		return
	}

	slog.Info("User details updated", "user_id", user.ID)
	h.sessions.Flash(w, r, "User details updated successfully!")
	h.render(w, r, dashboardTmpl, pageData{
		User:    &updated,
		Flashes: h.sessions.Flashes(w, r),
		Form:    form,
	})
}
