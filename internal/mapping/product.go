package mapping

import (
	"strings"

	"github.com/qrsegnaletica/signage-tracker/internal/models"
)

// PlaceholderCompanyID is assigned to products because the product endpoint
// does not expose a company identifier yet.
const PlaceholderCompanyID = "unassigned"

// MapProduct converts one backend product record, including its nested
// maintenances, into the internal entity. It never fails.
func MapProduct(p models.APIProduct) models.Product {
	lat, lng, _ := ProductLocation(p)

	out := models.Product{
		ID:               p.UUID,
		QRCode:           p.QRCode,
		Category:         SignalCategoryOf(p.SignalType),
		SignalType:       signalTypeOf(p),
		Year:             p.ProductionYear,
		Shape:            p.Shape,
		Dimension:        p.Dimension,
		SupportMaterial:  p.SupportMaterial,
		SupportThickness: valueOr(ParseNumber(p.SupportThickness), 0),
		WL:               p.WL,
		Fixation:         p.FixationMethod,
		GPSLat:           lat,
		GPSLng:           lng,
		CompanyID:        companyOf(p),
		CreatedBy:        p.CreatedBy,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.CreatedAt,
		Blockchain:       blockchainOf(p),
		ProductAPIFields: &models.ProductAPIFields{
			RawSignalType:     p.SignalType,
			RawSignalCategory: p.SignalCategory,
			ProductionYear:    p.ProductionYear,
			FixationClass:     p.FixationClass,
		},
	}

	// nil and empty are distinct: nil means the backend sent no maintenance data.
	if p.Maintenances != nil {
		out.Maintenances = MapMaintenances(p.Maintenances)
	}

	return out
}

// SignalCategoryOf classifies a raw signal type: anything mentioning
// "temp" is temporary, everything else permanent.
func SignalCategoryOf(signalType string) models.SignalCategory {
	if strings.Contains(strings.ToLower(signalType), "temp") {
		return models.SignalCategoryTemporary
	}
	return models.SignalCategoryPermanent
}

// ProductLocation returns the product's GPS position. When the record has
// neither latitude nor longitude, the position of its first nested
// maintenance (by array order) is used and derived is true.
func ProductLocation(p models.APIProduct) (lat, lng *float64, derived bool) {
	lat, lng = ParseNumber(p.GPSLat), ParseNumber(p.GPSLng)
	if lat != nil || lng != nil || len(p.Maintenances) == 0 {
		return lat, lng, false
	}

	first := p.Maintenances[0]
	return ParseNumber(first.GPSLat), ParseNumber(first.GPSLng), true
}

func signalTypeOf(p models.APIProduct) string {
	if p.SignalCategory != "" {
		return p.SignalCategory
	}
	return p.SignalType
}

func companyOf(p models.APIProduct) string {
	if p.CompanyID != "" {
		return p.CompanyID
	}
	return PlaceholderCompanyID
}

func blockchainOf(p models.APIProduct) *models.BlockchainMetadata {
	if p.AssetID == "" && p.MetadataCID == "" && p.ContentHash == "" {
		return nil
	}
	return &models.BlockchainMetadata{
		AssetID:     p.AssetID,
		MetadataCID: p.MetadataCID,
		ContentHash: p.ContentHash,
	}
}
