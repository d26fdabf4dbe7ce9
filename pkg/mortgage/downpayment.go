package mortgage

import (
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
)

// MinimumDownPayment returns the smallest acceptable down payment for
// propertyPrice under the Canadian guidelines at
// https://www.canada.ca/en/financial-consumer-agency/services/mortgages/down-payment.html
//
//	price <= 500,000:            5% of price
//	500,000 < price <= 1,000,000: 5% of 500,000 + 10% of the excess
//	price > 1,000,000:           20% of price
func MinimumDownPayment(propertyPrice float64) float64 {
	switch {
	case propertyPrice <= constants.PurchasePriceLowerThreshold:
		return mathutil.ApplyPercentage(propertyPrice, constants.DownPaymentPercentTier1)
	case propertyPrice > constants.PurchasePriceUpperThreshold:
		return mathutil.ApplyPercentage(propertyPrice, constants.DownPaymentPercentTier3)
	default:
		return mathutil.ApplyPercentage(constants.PurchasePriceLowerThreshold, constants.DownPaymentPercentTier1) +
			mathutil.ApplyPercentage(propertyPrice-constants.PurchasePriceLowerThreshold, constants.DownPaymentPercentTier2)
	}
}

// IsSufficientDownPayment reports whether downPayment meets the minimum for
// propertyPrice.
func IsSufficientDownPayment(downPayment, propertyPrice float64) bool {
	return downPayment >= MinimumDownPayment(propertyPrice)
}
