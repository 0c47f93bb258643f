package handlers

import "net/http"

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, indexTmpl, pageData{
		Flashes: h.sessions.Flashes(w, r),
	})
}
