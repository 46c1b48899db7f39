package commands

import (
	"context"

	"barberbook/internal/domain/identity"
	"barberbook/internal/gateway"
	"barberbook/internal/pkg/errs"
)

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (identity.Identity, error)
	Register(ctx context.Context, email, password, name string) (identity.Identity, error)
	Logout()
	Restore(ctx context.Context) bool
}

type authCommandsImpl struct {
	authGateway AuthGateway
	session     SessionState
}

func NewAuthCommands(authGateway AuthGateway, session SessionState) AuthCommands {
	return &authCommandsImpl{
		authGateway: authGateway,
		session:     session,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) (identity.Identity, error) {
	credentials, err := identity.NewCredentials(email, password)
	if err != nil {
		return identity.Identity{}, errs.Mark(err, errs.ErrInvalidInput)
	}

	ident, token, err := a.authGateway.Login(ctx, credentials)
	if err != nil {
		if gateway.IsNetwork(err) {
			return identity.Identity{}, errs.Mark(err, errs.ErrTransport)
		}
		return identity.Identity{}, errs.Mark(err, errs.ErrLoginFailed)
	}

	a.session.Init(ident, token)
	return ident, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, email, password, name string) (identity.Identity, error) {
	credentials, err := identity.NewCredentials(email, password)
	if err != nil {
		return identity.Identity{}, errs.Mark(err, errs.ErrInvalidInput)
	}

	ident, err := a.authGateway.Register(ctx, credentials, name)
	if err != nil {
		if gateway.IsNetwork(err) {
			return identity.Identity{}, errs.Mark(err, errs.ErrTransport)
		}
		return identity.Identity{}, errs.Mark(err, errs.ErrRegistrationFailed)
	}
	return ident, nil
}

func (a *authCommandsImpl) Logout() {
	a.session.Clear()
}

// Restore resumes a previous session from the persisted token: the identity
// itself is not durable, so it is re-fetched from the auth endpoint. Best
// effort; when the token is gone or stale the app simply starts logged out.
func (a *authCommandsImpl) Restore(ctx context.Context) bool {
	token, ok := a.session.RestoreToken()
	if !ok {
		return false
	}

	ident, err := a.authGateway.Me(ctx, token)
	if err != nil {
		return false
	}

	a.session.Init(ident, token)
	return true
}
