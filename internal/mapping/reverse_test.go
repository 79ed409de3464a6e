package mapping

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrsegnaletica/signage-tracker/internal/models"
)

func TestFormatCoordinate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{45, "45.000000"},
		{45.4642, "45.464200"},
		{9.1234567, "9.123457"},
		{-73.98765432, "-73.987654"},
		{0, "0.000000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCoordinate(tt.in))
		})
	}
}

func TestPolesFromInstallationType(t *testing.T) {
	n, ok := PolesFromInstallationType("3-pali")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	for _, label := range []string{"", "pali", "0-pali", "tre-pali", "3 pali"} {
		_, ok := PolesFromInstallationType(label)
		assert.False(t, ok, label)
	}
}

func internalMaintenance() models.Maintenance {
	return models.Maintenance{
		ProductID:         "2f1c8a52-3c6e-4e8e-9d61-0b8f7a2f4c11",
		InterventionType:  models.InterventionReplacement,
		Year:              2024,
		GPSLat:            45.4642,
		GPSLng:            9.19,
		InstallationType:  "2-pali",
		Reason:            "palo danneggiato",
		CertificateNumber: "CERT-9",
		CompanyID:         "c1",
		Notes:             "urto veicolo",
	}
}

func TestNewMaintenanceRequest(t *testing.T) {
	req, err := NewMaintenanceRequest(internalMaintenance())
	require.NoError(t, err)

	assert.Equal(t, models.MaintenanceRequest{
		InterventionType:  "replacement",
		GPSLat:            "45.464200",
		GPSLng:            "9.190000",
		Year:              2024,
		PolesNumber:       intPtr(2),
		CompanyID:         "c1",
		CertificateNumber: "CERT-9",
		Reason:            "palo danneggiato",
		Notes:             "urto veicolo",
		ProductUUID:       "2f1c8a52-3c6e-4e8e-9d61-0b8f7a2f4c11",
	}, req)
}

func TestNewMaintenanceRequest_Errors(t *testing.T) {
	m := internalMaintenance()
	m.ProductID = PlaceholderProductID
	_, err := NewMaintenanceRequest(m)
	assert.ErrorIs(t, err, ErrMissingProductLink)

	m = internalMaintenance()
	m.InterventionType = "riparazione"
	_, err = NewMaintenanceRequest(m)
	assert.ErrorIs(t, err, ErrUnknownInterventionType)
}

func TestMaintenanceRoundTrip(t *testing.T) {
	in := internalMaintenance()
	req, err := NewMaintenanceRequest(in)
	require.NoError(t, err)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	var echoed models.APIMaintenance
	require.NoError(t, json.Unmarshal(body, &echoed))
	out := MapMaintenance(echoed)

	assert.Equal(t, in.ProductID, out.ProductID)
	assert.Equal(t, in.InterventionType, out.InterventionType)
	assert.Equal(t, in.GPSLat, out.GPSLat)
	assert.Equal(t, in.GPSLng, out.GPSLng)
	assert.Equal(t, in.InstallationType, out.InstallationType)
	assert.Equal(t, in.Notes, out.Notes)
}

func TestNewProductRequest(t *testing.T) {
	lat, lng := 45.4642, 9.19
	p := models.Product{
		QRCode:           "QR-7",
		Category:         models.SignalCategoryTemporary,
		SignalType:       "Cartello di cantiere",
		Year:             2023,
		Shape:            "rettangolare",
		Dimension:        "60x90",
		SupportMaterial:  "acciaio",
		SupportThickness: 2.5,
		Fixation:         "bulloni",
		GPSLat:           &lat,
		GPSLng:           &lng,
		Blockchain:       &models.BlockchainMetadata{AssetID: "asset-1"},
	}

	req, err := NewProductRequest(p)
	require.NoError(t, err)

	assert.Equal(t, "temporanea", req.SignalType)
	assert.Equal(t, "Cartello di cantiere", req.SignalCategory)
	assert.Equal(t, "2.5", req.SupportThickness)
	assert.Equal(t, "bulloni", req.FixationMethod)
	assert.Empty(t, req.FixationClass)
	require.NotNil(t, req.GPSLat)
	assert.Equal(t, "45.464200", *req.GPSLat)
	assert.Equal(t, "9.190000", *req.GPSLng)
	assert.Equal(t, "asset-1", req.AssetID)
}

func TestNewProductRequest_OmitsAbsentGPS(t *testing.T) {
	req, err := NewProductRequest(models.Product{Category: models.SignalCategoryPermanent})
	require.NoError(t, err)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "gps_lat")
	assert.NotContains(t, string(body), "gps_lng")
}

func TestNewProductRequest_UnknownCategory(t *testing.T) {
	_, err := NewProductRequest(models.Product{Category: "provvisoria"})
	assert.ErrorIs(t, err, ErrUnknownSignalCategory)
}

func TestProductRoundTrip(t *testing.T) {
	for _, category := range []models.SignalCategory{models.SignalCategoryTemporary, models.SignalCategoryPermanent} {
		t.Run(string(category), func(t *testing.T) {
			lat := 41.9028
			in := models.Product{
				Category:         category,
				SignalType:       "Dare precedenza",
				SupportThickness: 3,
				GPSLat:           &lat,
			}

			req, err := NewProductRequest(in)
			require.NoError(t, err)
			body, err := json.Marshal(req)
			require.NoError(t, err)

			var echoed models.APIProduct
			require.NoError(t, json.Unmarshal(body, &echoed))
			out := MapProduct(echoed)

			assert.Equal(t, in.Category, out.Category)
			assert.Equal(t, in.SignalType, out.SignalType)
			assert.Equal(t, in.SupportThickness, out.SupportThickness)
			assert.Equal(t, in.GPSLat, out.GPSLat)
			assert.Nil(t, out.GPSLng)
		})
	}
}
