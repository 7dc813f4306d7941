package content

import (
	"github.com/pharmacie-tassigny/site/backend/internal/domain"
	"github.com/pharmacie-tassigny/site/backend/internal/utils"
)

func (l *Loader) LoadPharmacy() (*domain.PharmacyProfile, error) {
	pharmacy := &domain.PharmacyProfile{}
	if err := l.loadJSON(PharmacyFile, pharmacy, func() []string {
		return utils.ValidateOpeningHours(pharmacy.OpeningHours)
	}); err != nil {
		return nil, err
	}

	return pharmacy, nil
}

func (l *Loader) LoadServiceCatalog() (*domain.ServicesCatalog, error) {
	catalog := &domain.ServicesCatalog{}
	if err := l.loadJSON(ServicesFile, catalog, func() []string {
		return utils.ValidateServiceCatalog(catalog)
	}); err != nil {
		return nil, err
	}

	return catalog, nil
}

// LoadServices returns the catalog in stored order.
func (l *Loader) LoadServices() ([]domain.Service, error) {
	catalog, err := l.LoadServiceCatalog()
	if err != nil {
		return nil, err
	}

	return catalog.Services, nil
}

// LoadServiceBySlug reports found=false, with a nil error, when no service has
// that slug.
func (l *Loader) LoadServiceBySlug(slug string) (*domain.Service, bool, error) {
	services, err := l.LoadServices()
	if err != nil {
		return nil, false, err
	}

	for i := range services {
		if services[i].Slug == slug {
			return &services[i], true, nil
		}
	}

	return nil, false, nil
}

func (l *Loader) LoadTeamDocument() (*domain.Team, error) {
	team := &domain.Team{}
	if err := l.loadJSON(TeamFile, team); err != nil {
		return nil, err
	}

	return team, nil
}

// LoadTeam returns the members in stored order.
func (l *Loader) LoadTeam() ([]domain.TeamMember, error) {
	team, err := l.LoadTeamDocument()
	if err != nil {
		return nil, err
	}

	return team.Members, nil
}

func (l *Loader) LoadFaqDocument() (*domain.Faq, error) {
	faq := &domain.Faq{}
	if err := l.loadJSON(FaqFile, faq); err != nil {
		return nil, err
	}

	return faq, nil
}

func (l *Loader) LoadFaq() ([]domain.FaqItem, error) {
	faq, err := l.LoadFaqDocument()
	if err != nil {
		return nil, err
	}

	return faq.Items, nil
}

func (l *Loader) LoadLegal() (*domain.LegalInfo, error) {
	legal := &domain.LegalInfo{}
	if err := l.loadJSON(LegalFile, legal); err != nil {
		return nil, err
	}

	return legal, nil
}

func (l *Loader) LoadLocalBusiness() (*domain.LocalBusinessRecord, error) {
	record := &domain.LocalBusinessRecord{}
	if err := l.loadJSON(LocalBusinessFile, record); err != nil {
		return nil, err
	}

	return record, nil
}
