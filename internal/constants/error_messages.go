package constants

const (
	ErrCodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeInvalidUserType     = "INVALID_USER_TYPE"
	ErrCodeInvalidMessageType  = "INVALID_MESSAGE_TYPE"
	ErrCodeNotParticipant      = "NOT_A_PARTICIPANT"
	ErrCodeNotMessageSender    = "NOT_MESSAGE_SENDER"
	ErrCodeThreadNotFound      = "THREAD_NOT_FOUND"
	ErrCodeMessageNotFound     = "MESSAGE_NOT_FOUND"
	ErrCodeEscalationNotFound  = "ESCALATION_NOT_FOUND"
	ErrCodeThreadInactive      = "THREAD_INACTIVE"
	ErrCodeEscalationNotFailed = "ESCALATION_NOT_FAILED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

const (
	ErrMsgInvalidRequestBody  = "failed to parse request body"
	ErrMsgValidationFailed    = "request validation failed"
	ErrMsgInvalidUserType     = "user type must be couple or vendor"
	ErrMsgInvalidMessageType  = "unsupported message type"
	ErrMsgNotParticipant      = "user is not a participant of this thread"
	ErrMsgNotMessageSender    = "only the sender can delete a message"
	ErrMsgThreadNotFound      = "thread not found"
	ErrMsgMessageNotFound     = "message not found"
	ErrMsgEscalationNotFound  = "escalation not found"
	ErrMsgThreadInactive      = "thread is no longer active"
	ErrMsgEscalationNotFailed = "escalation is not in failed state"
	ErrMsgInternalError       = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeInvalidRequestBody:  ErrMsgInvalidRequestBody,
	ErrCodeValidationFailed:    ErrMsgValidationFailed,
	ErrCodeInvalidUserType:     ErrMsgInvalidUserType,
	ErrCodeInvalidMessageType:  ErrMsgInvalidMessageType,
	ErrCodeNotParticipant:      ErrMsgNotParticipant,
	ErrCodeNotMessageSender:    ErrMsgNotMessageSender,
	ErrCodeThreadNotFound:      ErrMsgThreadNotFound,
	ErrCodeMessageNotFound:     ErrMsgMessageNotFound,
	ErrCodeEscalationNotFound:  ErrMsgEscalationNotFound,
	ErrCodeThreadInactive:      ErrMsgThreadInactive,
	ErrCodeEscalationNotFailed: ErrMsgEscalationNotFailed,
	ErrCodeInternalError:       ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeValidationFailed, ErrCodeInvalidUserType, ErrCodeInvalidMessageType:
		return 400
	case ErrCodeNotParticipant, ErrCodeNotMessageSender:
		return 403
	case ErrCodeThreadNotFound, ErrCodeMessageNotFound, ErrCodeEscalationNotFound:
		return 404
	case ErrCodeThreadInactive, ErrCodeEscalationNotFailed:
		return 409
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
