package utils

import (
	"strings"

	"github.com/pharmacie-tassigny/site/backend/internal/domain"
)

// Need is an entry of the "find the right service" picker.
type Need struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Keywords []string `json:"-"`
}

var Needs = []Need{
	{ID: "vaccination", Label: "Me faire vacciner", Keywords: []string{"vaccination"}},
	{ID: "depistage", Label: "Faire un dépistage", Keywords: []string{"depistage", "test", "screening"}},
	{ID: "materiel", Label: "Louer/acheter du matériel médical", Keywords: []string{"materiel", "location", "maintien"}},
	{ID: "orthopedie", Label: "Orthopédie / contention", Keywords: []string{"orthopedie", "orthese", "contention", "compression"}},
	{ID: "conseil", Label: "Avoir un conseil personnalisé", Keywords: []string{"aromatherapie", "sevrage", "accompagnement", "diagnostic"}},
	{ID: "suivi", Label: "Suivi de traitement", Keywords: []string{"entretien", "anticoagulant"}},
}

func FindNeed(id string) (Need, bool) {
	for _, need := range Needs {
		if need.ID == id {
			return need, true
		}
	}
	return Need{}, false
}

// FindServices keeps the services whose slug, lower-cased name or category
// contains one of the need's keywords. Catalog order is preserved.
func FindServices(services []domain.Service, need Need) []domain.Service {
	matched := make([]domain.Service, 0)
	for _, service := range services {
		name := strings.ToLower(service.Name)
		for _, kw := range need.Keywords {
			if strings.Contains(service.Slug, kw) || strings.Contains(name, kw) || strings.Contains(service.Category, kw) {
				matched = append(matched, service)
				break
			}
		}
	}
	return matched
}
