package domain

// CampaignRecord representa uma linha de performance de campanha importada do CSV
type CampaignRecord struct {
	Platform     string  `json:"platform"`
	DeviceType   string  `json:"device_type"`
	AudienceType string  `json:"audience_type"`
	Spend        float64 `json:"spend"`
	Conversions  int     `json:"conversions"`
}

// HasValidSpend indica se o investimento da linha permite calcular o ROI
func (r CampaignRecord) HasValidSpend() bool {
	return r.Spend > 0
}
