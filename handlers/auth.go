package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"roster/services"
	"roster/store"
	"roster/validator"
)

type loginForm struct {
	Username string
	Password string
	Remember bool
}

type signupForm struct {
	FullName string
	Age      string
	Location string
	Username string
	Password string
	Email    string
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, loginTmpl, pageData{
			Flashes: h.sessions.Flashes(w, r),
			Form:    loginForm{},
		})
		return
	}

	form := loginForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
		Remember: r.FormValue("remember") == "on",
	}

	if errs := validator.ValidateLogin(form.Username, form.Password); errs.HasErrors() {
		h.render(w, r, loginTmpl, pageData{
			Flashes: h.sessions.Flashes(w, r),
			Form:    form,
			Errors:  errs,
		})
		return
	}

	user, err := h.auth.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			slog.Warn("Login failed", "username", form.Username)
			// One generic message for unknown username and wrong password alike
			h.sessions.Flash(w, r, "Invalid username or password.")
		} else {
			slog.Error("Login lookup failed", "error", err)
			h.sessions.Flash(w, r, "Oops! Seems there was an error! Try again!")
		}
		h.render(w, r, loginTmpl, pageData{
			Flashes: h.sessions.Flashes(w, r),
			Form:    form,
		})
		return
	}

	if err := h.sessions.LogIn(w, r, user.ID, form.Remember); err != nil {
		slog.Error("Failed to create session", "username", form.Username, "error", err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	slog.Info("User logged in", "username", user.Username, "user_id", user.ID)
	h.sessions.Flash(w, r, "Logged in successfully!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, signupTmpl, pageData{
			Flashes: h.sessions.Flashes(w, r),
			Form:    signupForm{},
		})
		return
	}

	form := signupForm{
		FullName: strings.TrimSpace(r.FormValue("full_name")),
		Age:      strings.TrimSpace(r.FormValue("age")),
		Location: strings.TrimSpace(r.FormValue("location")),
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
		Email:    strings.TrimSpace(r.FormValue("email")),
	}

	if errs := validator.ValidateSignup(form.FullName, form.Age, form.Location, form.Username, form.Password, form.Email); errs.HasErrors() {
		h.render(w, r, signupTmpl, pageData{
			Flashes: h.sessions.Flashes(w, r),
			Form:    form,
			Errors:  errs,
		})
		return
	}

	// Both collisions are checked independently so the visitor sees every
	// conflict at once. The store's unique constraints remain the backstop
	// for registrations racing past these checks.
	taken := false
	if _, err := h.users.GetByUsername(r.Context(), form.Username); err == nil {
		h.sessions.Flash(w, r, fmt.Sprintf("Username '%s' already exists.", form.Username))
		taken = true
	} else if !errors.Is(err, store.ErrNotFound) {
		h.signupRetry(w, r, form, err)
		return
	}
	if _, err := h.users.GetByEmail(r.Context(), form.Email); err == nil {
		h.sessions.Flash(w, r, fmt.Sprintf("E-mail address '%s' is already associated to another user.", form.Email))
		taken = true
	} else if !errors.Is(err, store.ErrNotFound) {
		h.signupRetry(w, r, form, err)
		return
	}
	if taken {
		h.render(w, r, signupTmpl, pageData{
			Flashes: h.sessions.Flashes(w, r),
			Form:    form,
		})
		return
	}

	age, _ := strconv.Atoi(form.Age)
	user, err := h.auth.Register(r.Context(), services.RegisterInput{
		FullName: form.FullName,
		Age:      age,
		Location: form.Location,
		Username: form.Username,
		Password: form.Password,
		Email:    form.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			h.sessions.Flash(w, r, fmt.Sprintf("Username '%s' already exists.", form.Username))
		case errors.Is(err, store.ErrEmailTaken):
			h.sessions.Flash(w, r, fmt.Sprintf("E-mail address '%s' is already associated to another user.", form.Email))
		default:
			h.signupRetry(w, r, form, err)
			return
		}
		h.render(w, r, signupTmpl, pageData{
			Flashes: h.sessions.Flashes(w, r),
			Form:    form,
		})
		return
	}

	slog.Info("User registered", "username", user.Username, "user_id", user.ID)
	h.sessions.Flash(w, r, fmt.Sprintf("User '%s' has been successfully created. Go to login page.", user.Username))
	h.render(w, r, signupTmpl, pageData{
		Flashes: h.sessions.Flashes(w, r),
		Form:    signupForm{},
	})
}

func (h *Handler) signupRetry(w http.ResponseWriter, r *http.Request, form signupForm, err error) {
	slog.Error("Registration failed", "username", form.Username, "error", err)
	h.sessions.Flash(w, r, "Oops! Seems there was an error! Try again!")
	h.render(w, r, signupTmpl, pageData{
		Flashes: h.sessions.Flashes(w, r),
		Form:    form,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.LogOut(w, r); err != nil {
		slog.Warn("Failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
