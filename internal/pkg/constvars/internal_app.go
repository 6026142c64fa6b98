package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ACTOR_KEY                ContextKey = "actor"
)

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

const (
	ReceiverKindDoctor  = "Doctor"
	ReceiverKindPatient = "Patient"
)

const (
	// PlatformFeePercent is the marketplace commission on every consultation
	// fee. The doctor payout is the remainder.
	PlatformFeePercent = 20

	// CartIDPrefix prefixes the consultation ID inside the gateway cart ID.
	CartIDPrefix = "cons"
)

const (
	MongoCollectionConsultations = "consultations"
	MongoCollectionDoctors       = "doctors"
	MongoCollectionPatients      = "patients"
	MongoCollectionNotifications = "notifications"
	MongoCollectionPlatformStats = "platform_stats"
	MongoCollectionLedgerCredits = "ledger_credits"

	// PlatformStatsDocumentID is the well-known _id of the singleton stats
	// document, upserted idempotently on first credit.
	PlatformStatsDocumentID = "platform"
)

const (
	RedisKeyConsultationLockFormat = "lock:consultation:%s"
	ConsultationLockTTLInSeconds   = 15
)

const (
	URLParamConsultationID = "consultationID"
)
