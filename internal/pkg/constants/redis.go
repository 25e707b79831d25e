package constants

// Redis key formats
const (
	KeyAuthOTP = "auth:otp:%s" // Format: auth:otp:{email}
)
