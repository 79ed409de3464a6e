package mapping

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qrsegnaletica/signage-tracker/internal/models"
)

// DefaultInterventionType is assigned when the backend sends an unknown
// intervention type or none at all.
const DefaultInterventionType = models.InterventionMaintenance

// ErrUnknownInterventionType is returned when an internal label has no
// backend spelling.
var ErrUnknownInterventionType = errors.New("unknown intervention type")

// canonicalInterventions holds the spelling the backend documents for
// each internal label.
var canonicalInterventions = map[string]models.InterventionType{
	"installation": models.InterventionInstallation,
	"maintenance":  models.InterventionMaintenance,
	"replacement":  models.InterventionReplacement,
	"verification": models.InterventionVerification,
	"dismissal":    models.InterventionDismissal,
}

// legacyInterventions holds spellings observed in older production records.
var legacyInterventions = map[string]models.InterventionType{
	"install":      models.InterventionInstallation,
	"repair":       models.InterventionMaintenance,
	"replace":      models.InterventionReplacement,
	"substitution": models.InterventionReplacement,
	"inspection":   models.InterventionVerification,
	"check":        models.InterventionVerification,
	"removal":      models.InterventionDismissal,
	"remove":       models.InterventionDismissal,
	"decommission": models.InterventionDismissal,
}

// interventionsToAPI is the outbound table. It must stay the exact inverse
// of canonicalInterventions.
var interventionsToAPI = map[models.InterventionType]string{
	models.InterventionInstallation: "installation",
	models.InterventionMaintenance:  "maintenance",
	models.InterventionReplacement:  "replacement",
	models.InterventionVerification: "verification",
	models.InterventionDismissal:    "dismissal",
}

// InterventionTypeFromAPI resolves a backend intervention type, ignoring
// case and surrounding blanks. The boolean reports whether raw was
// recognized; unrecognized and empty input resolve to DefaultInterventionType.
func InterventionTypeFromAPI(raw string) (models.InterventionType, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if t, ok := canonicalInterventions[key]; ok {
		return t, true
	}
	if t, ok := legacyInterventions[key]; ok {
		return t, true
	}
	return DefaultInterventionType, false
}

// InterventionTypeToAPI returns the canonical backend spelling of t.
func InterventionTypeToAPI(t models.InterventionType) (string, error) {
	s, ok := interventionsToAPI[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownInterventionType, t)
	}
	return s, nil
}
