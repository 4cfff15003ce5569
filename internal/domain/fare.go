package domain

// FareBreakdown decomposes an offered fare into its deductions.
// Derived purely from the gross fare and a fixed rate configuration.
type FareBreakdown struct {
	GrossFare       float64 `json:"gross_fare"`
	BaseFare        float64 `json:"base_fare"`
	Commission      float64 `json:"commission"`
	VAT             float64 `json:"vat"`
	CPFWithholding  float64 `json:"cpf_withholding"`
	PlatformFee     float64 `json:"platform_fee"`
	TotalDeductions float64 `json:"total_deductions"`
	NetFare         float64 `json:"net_fare"`
}
