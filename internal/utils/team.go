package utils

import (
	"slices"

	"github.com/pharmacie-tassigny/site/backend/internal/domain"
)

const unknownRoleRank = 99

var roleRanks = map[string]int{
	"pharmacist_owner":          1,
	"pharmacist_assistant":      2,
	"medical_equipment_manager": 3,
	"pharmacy_technician":       4,
	"storekeeper":               5,
}

func RoleRank(roleType string) int {
	if rank, ok := roleRanks[roleType]; ok {
		return rank
	}
	return unknownRoleRank
}

// SortTeam returns a copy of members ordered by role rank. Members sharing a
// rank keep their input order.
func SortTeam(members []domain.TeamMember) []domain.TeamMember {
	sorted := slices.Clone(members)
	slices.SortStableFunc(sorted, func(a, b domain.TeamMember) int {
		return RoleRank(a.Type) - RoleRank(b.Type)
	})
	return sorted
}
