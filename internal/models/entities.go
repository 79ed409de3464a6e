package models

// SignalCategory is the two-valued normalized signal classification.
type SignalCategory string

const (
	SignalCategoryTemporary SignalCategory = "temporanea"
	SignalCategoryPermanent SignalCategory = "permanente"
)

// Valid reports whether c is one of the known categories.
func (c SignalCategory) Valid() bool {
	return c == SignalCategoryTemporary || c == SignalCategoryPermanent
}

// InterventionType is the internal label of a maintenance event.
type InterventionType string

const (
	InterventionInstallation InterventionType = "installazione"
	InterventionMaintenance  InterventionType = "manutenzione"
	InterventionReplacement  InterventionType = "sostituzione"
	InterventionVerification InterventionType = "verifica"
	InterventionDismissal    InterventionType = "dismissione"
)

// InterventionTypes lists every internal label in display order.
var InterventionTypes = []InterventionType{
	InterventionInstallation,
	InterventionMaintenance,
	InterventionReplacement,
	InterventionVerification,
	InterventionDismissal,
}

// Valid reports whether t is one of the five internal labels.
func (t InterventionType) Valid() bool {
	for _, known := range InterventionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// BlockchainMetadata carries the notarization references of a product.
type BlockchainMetadata struct {
	AssetID     string `json:"asset_id,omitempty"`
	MetadataCID string `json:"metadata_cid,omitempty"`
	ContentHash string `json:"content_hash,omitempty"`
}

// Product is the normalized signage product used by the dashboard and app.
//
// The Italian-labeled fields are always populated. ProductAPIFields is set
// only by the mapping layer and nothing downstream may depend on it.
type Product struct {
	ID                string              `json:"id"`
	QRCode            string              `json:"qr_code"`
	Category          SignalCategory      `json:"tipologia_segnale" validate:"required,signal_category"`
	SignalType        string              `json:"tipo_segnale" validate:"required"`
	Year              int                 `json:"anno" validate:"required,gte=1900,lte=2100"`
	Shape             string              `json:"forma" validate:"required"`
	Dimension         string              `json:"dimensioni" validate:"required"`
	SupportMaterial   string              `json:"materiale_supporto"`
	SupportThickness  float64             `json:"spessore_supporto" validate:"gte=0"`
	WL                string              `json:"wl"`
	Fixation          string              `json:"fissaggio"`
	GPSLat            *float64            `json:"gps_lat,omitempty" validate:"omitempty,latitude"`
	GPSLng            *float64            `json:"gps_lng,omitempty" validate:"omitempty,longitude"`
	CompanyID         string              `json:"companyId"`
	CreatedBy         string              `json:"created_by"`
	CreatedAt         string              `json:"createdAt"`
	UpdatedAt         string              `json:"updatedAt"`
	Maintenances      []Maintenance       `json:"maintenances,omitzero" validate:"-"`
	Blockchain        *BlockchainMetadata `json:"blockchain,omitempty" validate:"-"`
	*ProductAPIFields `validate:"-"`
}

// ProductAPIFields keeps the backend's original spelling of values the
// normalized product reinterprets.
type ProductAPIFields struct {
	RawSignalType     string `json:"signal_type,omitempty"`
	RawSignalCategory string `json:"signal_category,omitempty"`
	ProductionYear    int    `json:"production_year,omitempty"`
	FixationClass     string `json:"fixation_class,omitempty"`
}

// Maintenance is the normalized intervention record.
type Maintenance struct {
	ID                    string           `json:"id"`
	ProductID             string           `json:"productId" validate:"required,uuid"`
	InterventionType      InterventionType `json:"tipo_intervento" validate:"required,intervention"`
	Year                  int              `json:"anno" validate:"required,gte=1900,lte=2100"`
	GPSLat                float64          `json:"gps_lat" validate:"latitude"`
	GPSLng                float64          `json:"gps_lng" validate:"longitude"`
	InstallationType      string           `json:"tipologia_installazione,omitempty" validate:"omitempty,installation_type"`
	Reason                string           `json:"causale" validate:"required"`
	CertificateNumber     string           `json:"certificato_numero" validate:"required"`
	CompanyID             string           `json:"companyId" validate:"required"`
	Notes                 string           `json:"note"`
	PhotoURLs             []string         `json:"foto_urls"`
	UserID                string           `json:"userId"`
	CreatedAt             string           `json:"createdAt"`
	*MaintenanceAPIFields `validate:"-"`
}

// MaintenanceAPIFields keeps the backend's original spelling of values the
// normalized maintenance reinterprets.
type MaintenanceAPIFields struct {
	RawInterventionType string `json:"intervention_type,omitempty"`
	PolesNumber         *int   `json:"poles_number,omitempty"`
}
