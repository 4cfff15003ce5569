package services

import "courier-profit-service/internal/domain"

// Deduction rate configuration. CPF withholding is currently zero; the slot
// is reserved for a future policy change.
const (
	platformFeeOffset  = 0.50
	commissionRate     = 0.15
	vatRate            = 0.09
	cpfWithholdingRate = 0.0
)

// FareDeductionEngine decomposes an offered fare into platform fee,
// commission, VAT and withholding. Pure computation, no validation: a
// negative gross fare yields a negative net fare and is rejected upstream.
type FareDeductionEngine struct {
	platformFee float64
	commission  float64
	vat         float64
	cpf         float64
}

func NewFareDeductionEngine() *FareDeductionEngine {
	return &FareDeductionEngine{
		platformFee: platformFeeOffset,
		commission:  commissionRate,
		vat:         vatRate,
		cpf:         cpfWithholdingRate,
	}
}

// Breakdown derives every deduction from the gross fare.
func (e *FareDeductionEngine) Breakdown(grossFare float64) domain.FareBreakdown {
	baseFare := grossFare - e.platformFee

	b := domain.FareBreakdown{
		GrossFare:      grossFare,
		BaseFare:       baseFare,
		Commission:     baseFare * e.commission,
		VAT:            baseFare * e.vat,
		CPFWithholding: baseFare * e.cpf,
		PlatformFee:    e.platformFee,
	}
	b.TotalDeductions = b.Commission + b.VAT + b.CPFWithholding + b.PlatformFee
	b.NetFare = grossFare - b.TotalDeductions
	return b
}
