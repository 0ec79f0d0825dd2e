package auth

import "time"

// Claims is the authenticated identity carried by a token: the user
// identifier plus the role granted at issue time. Role changes take
// effect on the next login.
type Claims struct {
	UserID int64
	Role   string
}

type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
