package handler

import (
	"net/http"
	"strconv"

	"github.com/pharmacie-tassigny/site/backend/internal/domain"
	"github.com/pharmacie-tassigny/site/backend/internal/hours"
	"github.com/pharmacie-tassigny/site/backend/internal/utils"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

type languageView struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

func (h *Handler) GetPharmacy(w http.ResponseWriter, r *http.Request) {
	pharmacy, err := h.content.LoadPharmacy()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	languages := make([]languageView, 0, len(pharmacy.LanguagesSpoken))
	for _, code := range pharmacy.LanguagesSpoken {
		languages = append(languages, languageView{Code: code, Label: utils.LanguageLabel(code)})
	}

	h.writeJSON(w, r, http.StatusOK, struct {
		*domain.PharmacyProfile
		PhoneDisplay string         `json:"phone_display"`
		PhoneLink    string         `json:"phone_link"`
		Languages    []languageView `json:"languages"`
	}{
		PharmacyProfile: pharmacy,
		PhoneDisplay:    utils.FormatPhone(pharmacy.Contact.Phone),
		PhoneLink:       utils.FormatPhoneLink(pharmacy.Contact.Phone),
		Languages:       languages,
	})
}

// GetHoursStatus feeds the live "open now" badge, which polls every minute.
func (h *Handler) GetHoursStatus(w http.ResponseWriter, r *http.Request) {
	pharmacy, err := h.content.LoadPharmacy()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	status := hours.Evaluate(pharmacy.OpeningHours, h.now(), h.location, h.phrases)

	w.Header().Set("Cache-Control", "public, max-age=60")
	h.writeJSON(w, r, http.StatusOK, status)
}

func (h *Handler) GetHoursWeek(w http.ResponseWriter, r *http.Request) {
	pharmacy, err := h.content.LoadPharmacy()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, hours.Week(pharmacy.OpeningHours, h.phrases))
}

type serviceView struct {
	domain.Service
	CategoryLabel string `json:"category_label"`
}

func newServiceView(s domain.Service) serviceView {
	return serviceView{Service: s, CategoryLabel: utils.CategoryLabel(s.Category)}
}

func (h *Handler) GetNeeds(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, utils.Needs)
}

// GetServices lists the catalog in stored order, narrowed to one need when
// ?need= is given.
func (h *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.content.LoadServices()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if needID := r.URL.Query().Get("need"); needID != "" {
		need, ok := utils.FindNeed(needID)
		if !ok {
			h.errorResponse(w, r, http.StatusBadRequest, "Besoin inconnu")
			return
		}
		services = utils.FindServices(services, need)
	}

	views := make([]serviceView, 0, len(services))
	for _, s := range services {
		views = append(views, newServiceView(s))
	}

	h.writeJSON(w, r, http.StatusOK, views)
}

func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	service := r.Context().Value(ServiceCtx).(*domain.Service)

	h.writeJSON(w, r, http.StatusOK, newServiceView(*service))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.content.LoadTeam()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, utils.SortTeam(members))
}

func (h *Handler) GetFaq(w http.ResponseWriter, r *http.Request) {
	faq, err := h.content.LoadFaqDocument()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, struct {
		Disclaimer string           `json:"disclaimer,omitempty"`
		Items      []domain.FaqItem `json:"items"`
	}{
		Disclaimer: faq.Disclaimer,
		Items:      faq.Items,
	})
}

func (h *Handler) GetLegal(w http.ResponseWriter, r *http.Request) {
	legal, err := h.content.LoadLegal()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, struct {
		Status string            `json:"status"`
		Draft  bool              `json:"draft"`
		Fields map[string]string `json:"fields"`
		Notes  []string          `json:"notes,omitempty"`
	}{
		Status: legal.Status,
		Draft:  legal.Status == domain.LegalStatusDraft,
		Fields: utils.LegalFields(legal),
		Notes:  legal.Notes,
	})
}

func (h *Handler) GetLocalBusiness(w http.ResponseWriter, r *http.Request) {
	record, err := h.content.LoadLocalBusiness()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSONAs(w, r, "application/ld+json", http.StatusOK, record)
}

// GetLoyalty computes the loyalty card progress for a purchase amount in euros
// (?amount=) or for a point balance (?points=).
func (h *Handler) GetLoyalty(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var points int
	switch {
	case query.Has("amount"):
		amount, err := strconv.ParseFloat(query.Get("amount"), 64)
		if err != nil || amount < 0 {
			h.errorResponse(w, r, http.StatusBadRequest, "Montant invalide")
			return
		}
		points = utils.LoyaltyPoints(amount)
	case query.Has("points"):
		p, err := strconv.Atoi(query.Get("points"))
		if err != nil || p < 0 {
			h.errorResponse(w, r, http.StatusBadRequest, "Nombre de points invalide")
			return
		}
		points = p
	default:
		h.errorResponse(w, r, http.StatusBadRequest, "Paramètre amount ou points requis")
		return
	}

	h.writeJSON(w, r, http.StatusOK, utils.Progress(points))
}
