package models

// Envelope models the JSON wrapper the backend puts around every response.
type Envelope[T any] struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Payload    *Payload[T] `json:"payload"`
}

// Payload holds the data member of an Envelope. Data is nil when the
// backend omitted it or sent null.
type Payload[T any] struct {
	Data *T `json:"data"`
}

// APIProduct represents a signage product as returned by the backend.
// Numeric fields the backend encodes inconsistently are kept as decoded
// JSON values (float64, string or nil) and normalized by the mapping layer.
type APIProduct struct {
	UUID             string           `json:"uuid"`
	QRCode           string           `json:"qr_code"`
	SignalType       string           `json:"signal_type"`
	SignalCategory   string           `json:"signal_category,omitempty"`
	ProductionYear   int              `json:"production_year"`
	Shape            string           `json:"shape"`
	Dimension        string           `json:"dimension"`
	WL               string           `json:"wl,omitempty"`
	SupportMaterial  string           `json:"support_material"`
	SupportThickness any              `json:"support_thickness"`
	FixationClass    string           `json:"fixation_class"`
	FixationMethod   string           `json:"fixation_method"`
	CompanyID        string           `json:"company_id,omitempty"`
	CreatedBy        string           `json:"created_by"`
	CreatedAt        string           `json:"created_at"`
	GPSLat           any              `json:"gps_lat,omitempty"`
	GPSLng           any              `json:"gps_lng,omitempty"`
	Maintenances     []APIMaintenance `json:"maintenances,omitzero"`
	AssetID          string           `json:"asset_id,omitempty"`
	MetadataCID      string           `json:"metadata_cid,omitempty"`
	ContentHash      string           `json:"content_hash,omitempty"`
}

// APIMaintenance represents one intervention event as returned by the backend.
// Legacy records may lack intervention_type and product_uuid entirely.
type APIMaintenance struct {
	UUID              string `json:"uuid"`
	InterventionType  string `json:"intervention_type,omitempty"`
	GPSLat            any    `json:"gps_lat"`
	GPSLng            any    `json:"gps_lng"`
	Year              int    `json:"year"`
	PolesNumber       any    `json:"poles_number,omitempty"`
	CompanyID         string `json:"company_id"`
	CertificateNumber string `json:"certificate_number"`
	Reason            string `json:"reason"`
	Notes             string `json:"notes,omitempty"`
	ProductUUID       string `json:"product_uuid,omitempty"`
	CreatedAt         string `json:"created_at"`
}
