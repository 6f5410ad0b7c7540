package domain

// TokenPair is the value returned to a client after registration, login or a
// refresh exchange. The server keeps only the signing secret and the
// refresh-token consumption record, never the tokens themselves.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Identity is the request-scoped authenticated identity derived from a
// validated access token. It lives for a single request and is never
// persisted.
type Identity struct {
	UserID string
	Email  string
	Role   string
}
