package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/qrsegnaletica/signage-tracker/internal/models"
)

func newObservedMapper() (*Mapper, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewMapper(zap.New(core)), logs
}

func TestMapper_MatchesPureFunctions(t *testing.T) {
	m, _ := newObservedMapper()

	products := []models.APIProduct{productFixture(), {UUID: "bare"}}
	assert.Equal(t, MapProducts(products), m.Products(products))

	recs := productFixture().Maintenances
	assert.Equal(t, MapMaintenances(recs), m.Maintenances(recs))
}

func TestMapper_LogsSilentDefaults(t *testing.T) {
	m, logs := newObservedMapper()

	got := m.Maintenance(models.APIMaintenance{UUID: "legacy", InterventionType: "unknown_value"})
	assert.Equal(t, models.InterventionMaintenance, got.InterventionType)

	defaulted := logs.FilterMessage("intervention type defaulted").All()
	require.Len(t, defaulted, 1)
	assert.Equal(t, "unknown_value", defaulted[0].ContextMap()["intervention_type"])
	assert.Equal(t, "manutenzione", defaulted[0].ContextMap()["default"])
	assert.Equal(t, 1, logs.FilterMessage("maintenance product linkage defaulted to placeholder").Len())
}

func TestMapper_LogsGPSFallback(t *testing.T) {
	m, logs := newObservedMapper()

	_ = m.Product(productFixture())

	fallback := logs.FilterMessage("product GPS derived from first maintenance").All()
	require.Len(t, fallback, 1)
	assert.Equal(t, "m1", fallback[0].ContextMap()["maintenance_id"])
	assert.Zero(t, logs.FilterMessage("intervention type defaulted").Len())
}

func TestMapper_RecognizedValuesAreQuiet(t *testing.T) {
	m, logs := newObservedMapper()

	_ = m.Maintenance(models.APIMaintenance{InterventionType: "remove", ProductUUID: "p1"})
	assert.Zero(t, logs.Len())
}

func TestNewMapper_NilLogger(t *testing.T) {
	m := NewMapper(nil)
	assert.NotPanics(t, func() { m.Maintenance(models.APIMaintenance{}) })
}
