package models

// MaintenanceRequest is the body accepted by the backend's maintenance
// creation endpoint. GPS travels as fixed-precision decimal strings.
type MaintenanceRequest struct {
	InterventionType  string `json:"intervention_type"`
	GPSLat            string `json:"gps_lat"`
	GPSLng            string `json:"gps_lng"`
	Year              int    `json:"year"`
	PolesNumber       *int   `json:"poles_number,omitempty"`
	CompanyID         string `json:"company_id"`
	CertificateNumber string `json:"certificate_number"`
	Reason            string `json:"reason"`
	Notes             string `json:"notes,omitempty"`
	ProductUUID       string `json:"product_uuid"`
}

// ProductRequest is the body accepted by the backend's product creation endpoint.
type ProductRequest struct {
	QRCode           string  `json:"qr_code,omitempty"`
	SignalType       string  `json:"signal_type"`
	SignalCategory   string  `json:"signal_category"`
	ProductionYear   int     `json:"production_year"`
	Shape            string  `json:"shape"`
	Dimension        string  `json:"dimension"`
	WL               string  `json:"wl,omitempty"`
	SupportMaterial  string  `json:"support_material"`
	SupportThickness string  `json:"support_thickness"`
	FixationClass    string  `json:"fixation_class,omitempty"`
	FixationMethod   string  `json:"fixation_method"`
	CreatedBy        string  `json:"created_by,omitempty"`
	GPSLat           *string `json:"gps_lat,omitempty"`
	GPSLng           *string `json:"gps_lng,omitempty"`
	AssetID          string  `json:"asset_id,omitempty"`
	MetadataCID      string  `json:"metadata_cid,omitempty"`
	ContentHash      string  `json:"content_hash,omitempty"`
}
