package mapping

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrsegnaletica/signage-tracker/internal/models"
)

func TestMapMaintenances_PreservesOrderAndLength(t *testing.T) {
	in := make([]models.APIMaintenance, 0, 25)
	for i := 0; i < 25; i++ {
		in = append(in, models.APIMaintenance{
			UUID:             fmt.Sprintf("m%02d", i),
			InterventionType: []string{"installation", "bogus", ""}[i%3],
			Year:             2000 + i,
		})
	}
	// Duplicates are kept as-is.
	in = append(in, in[0])

	out := MapMaintenances(in)

	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].UUID, out[i].ID)
		assert.Equal(t, in[i].Year, out[i].Year)
		assert.Equal(t, MapMaintenance(in[i]), out[i])
	}
}

func TestMapProducts_PreservesOrderAndLength(t *testing.T) {
	in := []models.APIProduct{
		{UUID: "b", SignalType: "temp"},
		{UUID: "a"},
		{UUID: "c", Maintenances: []models.APIMaintenance{{UUID: "x"}}},
	}

	out := MapProducts(in)

	require.Len(t, out, 3)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}

func TestCollections_Empty(t *testing.T) {
	assert.Empty(t, MapProducts(nil))
	assert.Empty(t, MapMaintenances([]models.APIMaintenance{}))
}
