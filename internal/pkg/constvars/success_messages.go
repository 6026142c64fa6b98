package constvars

const (
	ResponseSuccess = "Request processed successfully"

	ConsultationCreatedMessage       = "Consultation requested"
	ConsultationAcceptedMessage      = "Consultation accepted"
	ConsultationCancelledMessage     = "Consultation cancelled"
	ConsultationStartedMessage       = "Consultation started"
	ConsultationEndedMessage         = "Consultation ended"
	PaymentPageCreatedMessage        = "Payment page created"
	PaymentCallbackProcessedMessage  = "Payment callback processed"
	PaymentAlreadyProcessedMessage   = "Payment already processed"
	PayoutMarkedSentMessage          = "Payout marked as sent"
	ConsultationsResetMessage        = "All consultations removed"
	NotificationListFetchedMessage   = "Notifications fetched"
	ConsultationFetchedMessage       = "Consultation fetched"
	PendingPayoutsFetchedMessage     = "Pending payouts fetched"
	PlatformStatsFetchedMessage      = "Platform statistics fetched"
)
