package mapping

import "github.com/qrsegnaletica/signage-tracker/internal/models"

// MapProducts maps every record in order. The result has the same length
// as the input; nothing is filtered or deduplicated.
func MapProducts(products []models.APIProduct) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		out = append(out, MapProduct(p))
	}
	return out
}

// MapMaintenances maps every record in order. The result has the same
// length as the input; nothing is filtered or deduplicated.
func MapMaintenances(maintenances []models.APIMaintenance) []models.Maintenance {
	out := make([]models.Maintenance, 0, len(maintenances))
	for _, m := range maintenances {
		out = append(out, MapMaintenance(m))
	}
	return out
}
