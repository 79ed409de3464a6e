package mapping

import (
	"go.uber.org/zap"

	"github.com/qrsegnaletica/signage-tracker/internal/models"
)

// Mapper wraps the pure mapping functions and logs the silent defaults
// they apply. Its results are identical to the package-level functions.
type Mapper struct {
	logger *zap.Logger
}

// NewMapper creates a Mapper. A nil logger disables diagnostics.
func NewMapper(logger *zap.Logger) *Mapper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mapper{logger: logger.Named("mapping")}
}

// Product maps one product and reports defaults applied to it and to its
// nested maintenances.
func (m *Mapper) Product(p models.APIProduct) models.Product {
	out := MapProduct(p)
	m.diagnoseProduct(p, out)
	for _, nested := range p.Maintenances {
		m.diagnoseMaintenance(nested)
	}
	return out
}

// Products maps a batch, preserving order and length.
func (m *Mapper) Products(products []models.APIProduct) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		out = append(out, m.Product(p))
	}
	return out
}

// Maintenance maps one maintenance record.
func (m *Mapper) Maintenance(rec models.APIMaintenance) models.Maintenance {
	m.diagnoseMaintenance(rec)
	return MapMaintenance(rec)
}

// Maintenances maps a batch, preserving order and length.
func (m *Mapper) Maintenances(recs []models.APIMaintenance) []models.Maintenance {
	out := make([]models.Maintenance, 0, len(recs))
	for _, rec := range recs {
		out = append(out, m.Maintenance(rec))
	}
	return out
}

func (m *Mapper) diagnoseProduct(p models.APIProduct, out models.Product) {
	if _, _, derived := ProductLocation(p); derived {
		m.logger.Debug("product GPS derived from first maintenance",
			zap.String("product_id", p.UUID),
			zap.String("maintenance_id", p.Maintenances[0].UUID),
		)
	}
	if p.SupportThickness != nil && ParseNumber(p.SupportThickness) == nil {
		m.logger.Debug("unparseable support thickness defaulted to 0",
			zap.String("product_id", p.UUID),
			zap.Any("support_thickness", p.SupportThickness),
		)
	}
	if out.CompanyID == PlaceholderCompanyID {
		m.logger.Debug("product company defaulted to placeholder", zap.String("product_id", p.UUID))
	}
}

func (m *Mapper) diagnoseMaintenance(rec models.APIMaintenance) {
	if _, ok := InterventionTypeFromAPI(rec.InterventionType); !ok {
		m.logger.Debug("intervention type defaulted",
			zap.String("maintenance_id", rec.UUID),
			zap.String("intervention_type", rec.InterventionType),
			zap.String("default", string(DefaultInterventionType)),
		)
	}
	if rec.ProductUUID == "" {
		m.logger.Debug("maintenance product linkage defaulted to placeholder",
			zap.String("maintenance_id", rec.UUID),
		)
	}
}
