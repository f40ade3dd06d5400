package entities

import "context"

// Session carries identity facts resolved by the authentication layer.
type Session struct {
	Email   string
	IsAdmin bool
}

type sessionKey struct{}

func ContextWithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(Session)
	if !ok || session.Email == "" {
		return Session{}, false
	}
	return session, true
}
