package requests

// PaymentCallback is the asynchronous confirmation the gateway POSTs after a
// hosted payment page completes. cart_id encodes the consultation ID.
type PaymentCallback struct {
	CartID        string        `json:"cart_id" validate:"required"`
	TranRef       string        `json:"tran_ref" validate:"required"`
	PaymentResult PaymentResult `json:"payment_result"`
}

type PaymentResult struct {
	ResponseStatus  string `json:"response_status"`
	ResponseCode    string `json:"response_code,omitempty"`
	ResponseMessage string `json:"response_message,omitempty"`
}

// PayTabsCreatePage is the outbound request for a hosted payment page.
type PayTabsCreatePage struct {
	ProfileID       int              `json:"profile_id"`
	TranType        string           `json:"tran_type"`
	TranClass       string           `json:"tran_class"`
	CartID          string           `json:"cart_id"`
	CartDescription string           `json:"cart_description"`
	CartCurrency    string           `json:"cart_currency"`
	CartAmount      int64            `json:"cart_amount"`
	CustomerDetails PayTabsCustomer  `json:"customer_details"`
	Callback        string           `json:"callback"`
	Return          string           `json:"return"`
}

type PayTabsCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}
