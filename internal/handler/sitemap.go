package handler

import (
	"bytes"
	"net/http"

	"github.com/pharmacie-tassigny/site/backend/internal/sitemap"
)

func (h *Handler) GetSitemap(w http.ResponseWriter, r *http.Request) {
	services, err := h.content.LoadServices()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := sitemap.Encode(&buf, sitemap.Build(h.config.Site.BaseURL, services, h.now())); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
