package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrsegnaletica/signage-tracker/internal/models"
)

func TestInterventionTypeFromAPI(t *testing.T) {
	tests := []struct {
		raw        string
		want       models.InterventionType
		recognized bool
	}{
		{"installation", models.InterventionInstallation, true},
		{"INSTALLATION", models.InterventionInstallation, true},
		{" Maintenance ", models.InterventionMaintenance, true},
		{"replacement", models.InterventionReplacement, true},
		{"replace", models.InterventionReplacement, true},
		{"verification", models.InterventionVerification, true},
		{"inspection", models.InterventionVerification, true},
		{"dismissal", models.InterventionDismissal, true},
		{"remove", models.InterventionDismissal, true},
		{"removal", models.InterventionDismissal, true},
		{"unknown_value", models.InterventionMaintenance, false},
		{"", models.InterventionMaintenance, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := InterventionTypeFromAPI(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.recognized, ok)
		})
	}
}

func TestInterventionTables_ReverseIsInverseOfCanonical(t *testing.T) {
	require.Len(t, interventionsToAPI, len(canonicalInterventions))

	for api, internal := range canonicalInterventions {
		back, err := InterventionTypeToAPI(internal)
		require.NoError(t, err)
		assert.Equal(t, api, back)
	}

	for _, internal := range models.InterventionTypes {
		api, err := InterventionTypeToAPI(internal)
		require.NoError(t, err, internal)
		assert.Equal(t, internal, canonicalInterventions[api])
	}
}

func TestInterventionTables_LegacyDoesNotShadowCanonical(t *testing.T) {
	for legacy := range legacyInterventions {
		_, clash := canonicalInterventions[legacy]
		assert.False(t, clash, legacy)
	}
}

func TestInterventionTypeToAPI_Unknown(t *testing.T) {
	_, err := InterventionTypeToAPI("riparazione")
	assert.ErrorIs(t, err, ErrUnknownInterventionType)
}
