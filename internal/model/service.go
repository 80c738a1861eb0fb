package model

// Service is one entry of the payable service catalog returned by
// GET /services. Entries are immutable from the client's perspective
// and fetched fresh per view; service_code is the unique key used when
// creating a transaction.
type Service struct {
	ServiceCode   string `json:"service_code"`
	ServiceName   string `json:"service_name"`
	ServiceIcon   string `json:"service_icon"`
	ServiceTariff int64  `json:"service_tariff"`
}

// Banner is a promotional banner returned by GET /banner, rendered on
// the dashboard strip.
type Banner struct {
	BannerName  string `json:"banner_name"`
	BannerImage string `json:"banner_image"`
	Description string `json:"description"`
}
