package constvars

// Client-facing messages. Kept deliberately vague for anything internal.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientConsultationNotFound          = "Consultation not found"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientNotConsultationParty          = "You are not a participant of this consultation"
	ErrClientInvalidConsultationState      = "The consultation is not in a state that allows this action"
	ErrClientDoctorBusy                    = "The doctor already has an ongoing consultation"
	ErrClientPaymentDeclined               = "The payment was declined by the gateway"
	ErrClientPaymentGatewayUnavailable     = "The payment provider is unavailable, please retry"
	ErrClientTooManyRequests               = "Too many requests, please slow down"
)

// Dev-facing messages, logged and shown outside production only.
const (
	ErrDevValidationFailed             = "VALIDATION_FAILED"
	ErrDevCannotParseJSON              = "CANNOT_PARSE_JSON_BODY"
	ErrDevCannotMarshalJSON            = "CANNOT_MARSHAL_JSON"
	ErrDevMissingRequestID             = "REQUEST_ID_MISSING_FROM_CONTEXT"
	ErrDevServerDeadlineExceeded       = "SERVER_DEADLINE_EXCEEDED"
	ErrDevAuthTokenMissing             = "AUTH_TOKEN_MISSING"
	ErrDevAuthTokenInvalidOrExpired    = "AUTH_TOKEN_INVALID_OR_EXPIRED"
	ErrDevAuthRoleMissing              = "AUTH_ROLE_CLAIM_MISSING"
	ErrDevActorMissing                 = "ACTOR_MISSING_FROM_CONTEXT"
	ErrDevActorForbidden               = "ACTOR_NOT_PARTY_OF_CONSULTATION"
	ErrDevConsultationNotFound         = "CONSULTATION_NOT_FOUND"
	ErrDevDoctorNotFound               = "DOCTOR_NOT_FOUND"
	ErrDevPatientNotFound              = "PATIENT_NOT_FOUND"
	ErrDevInvalidConsultationState     = "INVALID_CONSULTATION_STATE_FOR_TRANSITION"
	ErrDevDoctorOngoingSlotOccupied    = "DOCTOR_ONGOING_SLOT_OCCUPIED"
	ErrDevInvalidCartID                = "CART_ID_MALFORMED"
	ErrDevPaymentNotApproved           = "GATEWAY_REPORTED_PAYMENT_NOT_APPROVED"
	ErrDevPaymentGatewayRequestFailed  = "PAYMENT_GATEWAY_REQUEST_FAILED"
	ErrDevPaymentGatewayBadResponse    = "PAYMENT_GATEWAY_RESPONSE_UNPARSABLE"
	ErrDevPayoutNotPending             = "PAYOUT_NOT_IN_PENDING_STATE"
	ErrDevMongoDBFailedToFindDocument  = "MONGODB_FAILED_TO_FIND_DOCUMENT"
	ErrDevMongoDBFailedToInsert        = "MONGODB_FAILED_TO_INSERT_DOCUMENT"
	ErrDevMongoDBFailedToUpdate        = "MONGODB_FAILED_TO_UPDATE_DOCUMENT"
	ErrDevMongoDBFailedToDelete        = "MONGODB_FAILED_TO_DELETE_DOCUMENT"
	ErrDevMongoDBFailedToIterate       = "MONGODB_FAILED_TO_ITERATE_DOCUMENTS"
	ErrDevMongoDBStringNotObjectID     = "MONGODB_STRING_NOT_OBJECT_ID"
	ErrDevMongoDBFailedToCreateIndex   = "MONGODB_FAILED_TO_CREATE_INDEX"
	ErrDevRedisSetData                 = "REDIS_FAILED_TO_SET_DATA"
	ErrDevRedisGetData                 = "REDIS_FAILED_TO_GET_DATA"
	ErrDevRedisDeleteData              = "REDIS_FAILED_TO_DELETE_DATA"
	ErrDevRedisIncrementValue          = "REDIS_FAILED_TO_INCREMENT_VALUE"
	ErrDevRedisUnlockNotOwner          = "REDIS_UNLOCK_LOCK_NOT_OWNED"
	ErrDevRedisLockUnavailable         = "REDIS_LOCK_NOT_ACQUIRED"
	ErrDevRabbitMQPublishFailed        = "RABBITMQ_FAILED_TO_PUBLISH_MESSAGE"
	ErrDevPushDeliveryFailed           = "PUSH_DELIVERY_REQUEST_FAILED"
	ErrDevCreateHTTPRequest            = "CANNOT_CREATE_HTTP_REQUEST"
	ErrDevSendHTTPRequest              = "CANNOT_SEND_HTTP_REQUEST"
	ErrDevURLParamIDValidationFailed   = "URL_PARAM_%s_VALIDATION_FAILED"
	ErrDevGatewayCallbackRateLimited   = "GATEWAY_CALLBACK_RATE_LIMITED"
)
