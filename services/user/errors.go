package user

// AuthError signals a failed registration or login without revealing which
// part of the credentials was wrong.
type AuthError struct {
	Reason string
}

func (e AuthError) Error() string {
	return e.Reason
}
