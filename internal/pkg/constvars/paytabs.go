package constvars

// PayTabs transaction response statuses as delivered in
// payment_result.response_status on the callback.
const (
	PayTabsStatusAuthorized = "A" // approved
	PayTabsStatusHeld       = "H"
	PayTabsStatusPending    = "P"
	PayTabsStatusVoided     = "V"
	PayTabsStatusError      = "E"
	PayTabsStatusDeclined   = "D"
)

const (
	PayTabsTranTypeSale  = "sale"
	PayTabsTranClassECom = "ecom"
)
