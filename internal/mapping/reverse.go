package mapping

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/qrsegnaletica/signage-tracker/internal/models"
)

// coordinatePlaces is the number of fractional digits the backend accepts
// for string-typed GPS values.
const coordinatePlaces = 6

var (
	// ErrMissingProductLink is returned when a maintenance still carries
	// PlaceholderProductID and therefore cannot be sent upstream.
	ErrMissingProductLink = errors.New("maintenance is not linked to a product")

	// ErrUnknownSignalCategory is returned for a product whose category is
	// neither temporary nor permanent.
	ErrUnknownSignalCategory = errors.New("unknown signal category")
)

// FormatCoordinate renders v with a fixed number of fractional digits,
// rounding half away from zero.
func FormatCoordinate(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(coordinatePlaces)
}

// PolesFromInstallationType extracts n from an "{n}-pali" label.
func PolesFromInstallationType(label string) (int, bool) {
	count, ok := strings.CutSuffix(strings.TrimSpace(label), "-pali")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(count)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// NewMaintenanceRequest builds the backend creation payload for m.
func NewMaintenanceRequest(m models.Maintenance) (models.MaintenanceRequest, error) {
	if m.ProductID == "" || m.ProductID == PlaceholderProductID {
		return models.MaintenanceRequest{}, ErrMissingProductLink
	}

	interventionType, err := InterventionTypeToAPI(m.InterventionType)
	if err != nil {
		return models.MaintenanceRequest{}, err
	}

	req := models.MaintenanceRequest{
		InterventionType:  interventionType,
		GPSLat:            FormatCoordinate(m.GPSLat),
		GPSLng:            FormatCoordinate(m.GPSLng),
		Year:              m.Year,
		CompanyID:         m.CompanyID,
		CertificateNumber: m.CertificateNumber,
		Reason:            m.Reason,
		Notes:             m.Notes,
		ProductUUID:       m.ProductID,
	}

	if n, ok := PolesFromInstallationType(m.InstallationType); ok {
		req.PolesNumber = &n
	}

	return req, nil
}

// NewProductRequest builds the backend creation payload for p. The category
// travels as signal_type and the descriptive type as signal_category, which
// MapProduct reads back into the same pair.
func NewProductRequest(p models.Product) (models.ProductRequest, error) {
	if !p.Category.Valid() {
		return models.ProductRequest{}, fmt.Errorf("%w: %q", ErrUnknownSignalCategory, p.Category)
	}

	req := models.ProductRequest{
		QRCode:           p.QRCode,
		SignalType:       string(p.Category),
		SignalCategory:   p.SignalType,
		ProductionYear:   p.Year,
		Shape:            p.Shape,
		Dimension:        p.Dimension,
		WL:               p.WL,
		SupportMaterial:  p.SupportMaterial,
		SupportThickness: decimal.NewFromFloat(p.SupportThickness).String(),
		FixationMethod:   p.Fixation,
		CreatedBy:        p.CreatedBy,
	}

	if p.ProductAPIFields != nil {
		req.FixationClass = p.FixationClass
	}
	if p.GPSLat != nil {
		lat := FormatCoordinate(*p.GPSLat)
		req.GPSLat = &lat
	}
	if p.GPSLng != nil {
		lng := FormatCoordinate(*p.GPSLng)
		req.GPSLng = &lng
	}
	if p.Blockchain != nil {
		req.AssetID = p.Blockchain.AssetID
		req.MetadataCID = p.Blockchain.MetadataCID
		req.ContentHash = p.Blockchain.ContentHash
	}

	return req, nil
}
