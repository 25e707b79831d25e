package mail

import "fmt"

// LoginOTPMessage builds the subject and body for a login verification code
func LoginOTPMessage(code string, ttlMinutes int) (subject, body string) {
	subject = "Your login verification code"
	body = fmt.Sprintf(
		"<p>Your one-time login code is:</p>"+
			"<h2>%s</h2>"+
			"<p>This code expires in %d minutes. If you did not try to sign in, you can ignore this email.</p>",
		code, ttlMinutes,
	)
	return subject, body
}

// ResetOTPMessage builds the subject and body for a password-reset code
func ResetOTPMessage(code string, ttlMinutes int) (subject, body string) {
	subject = "Your password reset code"
	body = fmt.Sprintf(
		"<p>Your password reset code is:</p>"+
			"<h2>%s</h2>"+
			"<p>This code expires in %d minutes. If you did not request a password reset, you can ignore this email.</p>",
		code, ttlMinutes,
	)
	return subject, body
}
