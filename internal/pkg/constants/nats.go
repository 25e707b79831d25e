package constants

// NATS Subjects
const (
	// Auth Service
	SubjectAuthLogin           = "auth.login"
	SubjectAuthPasswordChanged = "auth.password_changed"
)
