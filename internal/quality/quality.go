// Package quality reports the places where mapping had to fall back to a
// default. The mapped entities stay unchanged; issues are a side report.
package quality

import (
	"fmt"
	"sort"
	"strings"

	"github.com/qrsegnaletica/signage-tracker/internal/mapping"
	"github.com/qrsegnaletica/signage-tracker/internal/models"
)

// Kind classifies a data-quality issue.
type Kind string

const (
	UnknownIntervention    Kind = "unknown_intervention_type"
	MissingIntervention    Kind = "missing_intervention_type"
	MissingProductLink     Kind = "missing_product_link"
	UnparseableGPS         Kind = "unparseable_gps"
	UnparseableThickness   Kind = "unparseable_support_thickness"
	DerivedProductLocation Kind = "product_gps_from_maintenance"
	MissingProductLocation Kind = "product_without_location"
)

// Entity names the record family an issue belongs to.
type Entity string

const (
	EntityProduct     Entity = "product"
	EntityMaintenance Entity = "maintenance"
)

// Issue is one observation about one record.
type Issue struct {
	Kind     Kind   `json:"kind"`
	Entity   Entity `json:"entity"`
	RecordID string `json:"record_id"`
	Field    string `json:"field,omitempty"`
	Value    string `json:"value,omitempty"`
}

func (i Issue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("%s %s: %s", i.Entity, i.RecordID, i.Kind)
	}
	return fmt.Sprintf("%s %s: %s (%s=%q)", i.Entity, i.RecordID, i.Kind, i.Field, i.Value)
}

// Inspect walks raw backend records and reports every silent default the
// mapping layer would apply. Nested maintenances are inspected as well.
// Issues come out in input order, products first.
func Inspect(products []models.APIProduct, maintenances []models.APIMaintenance) []Issue {
	var issues []Issue
	for _, p := range products {
		issues = append(issues, inspectProduct(p)...)
	}
	for _, m := range maintenances {
		issues = append(issues, inspectMaintenance(m)...)
	}
	return issues
}

func inspectProduct(p models.APIProduct) []Issue {
	var issues []Issue
	add := func(kind Kind, field string, value any) {
		issues = append(issues, Issue{Kind: kind, Entity: EntityProduct, RecordID: p.UUID, Field: field, Value: render(value)})
	}

	if p.SupportThickness != nil && mapping.ParseNumber(p.SupportThickness) == nil {
		add(UnparseableThickness, "support_thickness", p.SupportThickness)
	}
	if p.GPSLat != nil && mapping.ParseNumber(p.GPSLat) == nil {
		add(UnparseableGPS, "gps_lat", p.GPSLat)
	}
	if p.GPSLng != nil && mapping.ParseNumber(p.GPSLng) == nil {
		add(UnparseableGPS, "gps_lng", p.GPSLng)
	}

	lat, lng, derived := mapping.ProductLocation(p)
	switch {
	case lat == nil && lng == nil:
		add(MissingProductLocation, "", nil)
	case derived:
		add(DerivedProductLocation, "maintenances[0]", p.Maintenances[0].UUID)
	}

	for _, m := range p.Maintenances {
		issues = append(issues, inspectMaintenance(m)...)
	}
	return issues
}

func inspectMaintenance(m models.APIMaintenance) []Issue {
	var issues []Issue
	add := func(kind Kind, field string, value any) {
		issues = append(issues, Issue{Kind: kind, Entity: EntityMaintenance, RecordID: m.UUID, Field: field, Value: render(value)})
	}

	if strings.TrimSpace(m.InterventionType) == "" {
		add(MissingIntervention, "intervention_type", nil)
	} else if _, ok := mapping.InterventionTypeFromAPI(m.InterventionType); !ok {
		add(UnknownIntervention, "intervention_type", m.InterventionType)
	}
	if m.ProductUUID == "" {
		add(MissingProductLink, "product_uuid", nil)
	}
	// Maintenance GPS defaults to 0, so absence is reported alongside garbage.
	if mapping.ParseNumber(m.GPSLat) == nil {
		add(UnparseableGPS, "gps_lat", m.GPSLat)
	}
	if mapping.ParseNumber(m.GPSLng) == nil {
		add(UnparseableGPS, "gps_lng", m.GPSLng)
	}
	return issues
}

func render(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Summarize counts issues per kind.
func Summarize(issues []Issue) map[Kind]int {
	counts := make(map[Kind]int)
	for _, issue := range issues {
		counts[issue.Kind]++
	}
	return counts
}

// Kinds returns the kinds present in counts, sorted, for stable logging.
func Kinds(counts map[Kind]int) []Kind {
	kinds := make([]Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
