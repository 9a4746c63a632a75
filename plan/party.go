package plan

// Party is a person or organisation associated with a record. Role carries
// the source vocabulary (author, owner, funder, principalInvestigator,
// sponsor, contact); target role mapping happens at serialization.
type Party struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Affiliation string `json:"affiliation"`
	Org         bool   `json:"org"`
}

// Dedupe collapses parties that are equal under all four attributes into a
// single entry. The output contains each distinct tuple exactly once; order
// of the surviving entries is not guaranteed to match input order.
func Dedupe(parties []Party) []Party {
	seen := make(map[Party]bool, len(parties))
	result := make([]Party, 0, len(parties))
	for _, p := range parties {
		if seen[p] {
			continue
		}
		seen[p] = true
		result = append(result, p)
	}
	return result
}
