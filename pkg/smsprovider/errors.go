package smsprovider

// Error codes returned by Send, one per failure class the gateway reports.
const (
	ErrorCodeServerError   = "SERVER_ERROR"   // 5xx or undecodable response
	ErrorCodeTimeout       = "TIMEOUT"        // request deadline exceeded
	ErrorCodeInvalidNumber = "INVALID_NUMBER" // gateway rejected the destination
	ErrorCodeNetworkError  = "NETWORK_ERROR"  // connection failure
)

// Permanent reports whether err is a rejection that will fail on every
// attempt, such as an invalid destination number.
func Permanent(err error) bool {
	return err != nil && err.Error() == ErrorCodeInvalidNumber
}
