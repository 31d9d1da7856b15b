package agenda

import "tally/internal/models"

// FilterByCategories narrows an expanded view to items tagged with any of
// the selected categories. An empty selection means no filter and returns
// the view as-is. An occurrence is retained when either its own id or its
// recurParentId carries one of the selected categories, so tagging a
// recurring parent tags the whole series. Buckets that end up empty are
// dropped. Inputs are never mutated.
func FilterByCategories(view models.ItemStore, rels []models.CategoryRelationship, selected []int) models.ItemStore {
	if len(selected) == 0 {
		return view
	}

	wanted := make(map[int]bool, len(selected))
	for _, id := range selected {
		wanted[id] = true
	}
	tagged := make(map[int]bool)
	for _, rel := range rels {
		if wanted[rel.CategoryID] {
			tagged[rel.ItemID] = true
		}
	}

	out := make(models.ItemStore)
	for day, items := range view {
		var kept []models.Item
		for _, item := range items {
			if tagged[item.ID] || tagged[item.RecurParentID] {
				kept = append(kept, item)
			}
		}
		if len(kept) > 0 {
			out[day] = kept
		}
	}
	return out
}
