package utils

import "strings"

const (
	// Canonical submission status values as stored and displayed.
	StatusPending     = "Pending"
	StatusApproved    = "Approved"
	StatusRevisions   = "Revisions"
	StatusDisapproved = "Disapproved"
)

var statusSynonyms = map[string][]string{
	StatusPending: {
		"pending",
	},
	StatusApproved: {
		"approved",
		"approve",
	},
	StatusRevisions: {
		"revisions",
		"revision",
		"needs_revisions",
	},
	StatusDisapproved: {
		"disapproved",
		"disapprove",
		"rejected",
	},
}

var statusAliasToCanonical = buildStatusAliasMap()

func buildStatusAliasMap() map[string]string {
	aliasMap := make(map[string]string)
	for canonical, synonyms := range statusSynonyms {
		aliasMap[normalizeStatus(canonical)] = canonical
		for _, alias := range synonyms {
			if normalized := normalizeStatus(alias); normalized != "" {
				aliasMap[normalized] = canonical
			}
		}
	}
	return aliasMap
}

func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// CanonicalStatus resolves a status value or alias to its canonical form.
// The second return is false when the value matches no known status.
func CanonicalStatus(status string) (string, bool) {
	canonical, ok := statusAliasToCanonical[normalizeStatus(status)]
	return canonical, ok
}

// IsValidStatus reports whether the value resolves to one of the four statuses.
func IsValidStatus(status string) bool {
	_, ok := CanonicalStatus(status)
	return ok
}

// AllStatuses returns the canonical status values in review order.
func AllStatuses() []string {
	return []string{StatusPending, StatusApproved, StatusRevisions, StatusDisapproved}
}
