package utils

import "medilink-service/internal/pkg/constvars"

// SplitPayment divides a consultation fee (minor currency units) into the
// platform cut and the doctor payout. The cut is floored, the payout takes
// the remainder, so cut+payout always equals the amount exactly.
func SplitPayment(amount int64) (platformCut, paidToDoctor int64) {
	platformCut = amount * constvars.PlatformFeePercent / 100
	paidToDoctor = amount - platformCut
	return platformCut, paidToDoctor
}
