package mapping

import (
	"fmt"

	"github.com/qrsegnaletica/signage-tracker/internal/models"
)

// PlaceholderProductID stands in for the product linkage legacy maintenance
// records are missing. The backend is expected to always send product_uuid
// once its fix ships; remove this constant then.
const PlaceholderProductID = "00000000-0000-0000-0000-000000000000"

// MapMaintenance converts one backend maintenance record into the internal
// entity. It never fails: missing or malformed fields fall back to defaults.
func MapMaintenance(m models.APIMaintenance) models.Maintenance {
	interventionType, _ := InterventionTypeFromAPI(m.InterventionType)
	poles := ParseInteger(m.PolesNumber)

	out := models.Maintenance{
		ID:                m.UUID,
		ProductID:         productLinkOf(m),
		InterventionType:  interventionType,
		Year:              m.Year,
		GPSLat:            valueOr(ParseNumber(m.GPSLat), 0),
		GPSLng:            valueOr(ParseNumber(m.GPSLng), 0),
		Reason:            m.Reason,
		CertificateNumber: m.CertificateNumber,
		CompanyID:         m.CompanyID,
		Notes:             m.Notes,
		PhotoURLs:         []string{},
		UserID:            "",
		CreatedAt:         m.CreatedAt,
		MaintenanceAPIFields: &models.MaintenanceAPIFields{
			RawInterventionType: m.InterventionType,
			PolesNumber:         poles,
		},
	}

	if poles != nil && *poles != 0 {
		out.InstallationType = InstallationLabel(*poles)
	}

	return out
}

// InstallationLabel renders a poles count as the installation type label.
func InstallationLabel(poles int) string {
	return fmt.Sprintf("%d-pali", poles)
}

func productLinkOf(m models.APIMaintenance) string {
	if m.ProductUUID == "" {
		return PlaceholderProductID
	}
	return m.ProductUUID
}
