package usecase

import (
	"strings"

	"github.com/google/uuid"
)

var (
	LeadStatuses = []string{"New", "Contacted", "Qualified", "Proposal Sent", "Closed"}
	LeadSources  = []string{"Website", "Referral", "Cold Call", "Advertisement", "Email", "Other"}
)

// ValidateEmail applies a deliberately loose shape check: the first '@'
// must not be the leading character and the first '.' must come strictly
// after it. Addresses like "first.last@example.com" fail on purpose; do
// not harden without a matching API contract change.
func ValidateEmail(email string) bool {
	at := strings.Index(email, "@")
	dot := strings.Index(email, ".")
	return at > 0 && dot > at
}

// ValidateID reports whether id is a well-formed entity identifier.
// Identifiers are UUIDs in this backend; callers treat this as an opaque
// shape predicate.
func ValidateID(id string) bool {
	return uuid.Validate(id) == nil
}

func ValidateEnum(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

func enumList(allowed []string) string {
	return strings.Join(allowed, ", ")
}
