package responses

// CreateCheckout carries the gateway redirect URL back to the patient app.
type CreateCheckout struct {
	PaymentURL string `json:"payment_url"`
	CartID     string `json:"cart_id"`
}

// PayTabsCreatePage is the gateway's reply to a hosted-page request.
type PayTabsCreatePage struct {
	TranRef     string `json:"tran_ref"`
	RedirectURL string `json:"redirect_url"`
}

// PaymentCallbackAck reports what the callback handler did.
type PaymentCallbackAck struct {
	ConsultationID   string `json:"consultation_id"`
	AlreadyProcessed bool   `json:"already_processed"`
}
