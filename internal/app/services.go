package app

import (
	"context"
	"fmt"

	"gitrack/internal/coordinator"
	"gitrack/internal/github"
	"gitrack/internal/screens"
	"gitrack/internal/session"
	"gitrack/pkg/logging"

	"github.com/atotto/clipboard"
)

// Services holds the session store, the data service and the screen factory
// built on top of both.
type Services struct {
	Session *session.Store
	Data    github.Service
	Factory *screens.Factory
}

// InitializeServices opens the session and picks the data service. Demo mode
// never touches the network or the session file.
func InitializeServices(cfg *Config) (*Services, error) {
	gc := cfg.GitrackConfig

	var store *session.Store
	var data github.Service
	if cfg.Demo {
		store = session.NewMemory()
		fixture := github.NewDemoFixture()
		fixture.Token = store.Credential
		data = fixture
		logging.Info("Bootstrap", "Demo mode: using offline data")
	} else {
		path, err := gc.SessionPath()
		if err != nil {
			return nil, fmt.Errorf("resolving session path: %w", err)
		}
		store, err = session.Open(path)
		if err != nil {
			return nil, err
		}
		data = github.NewClient(github.ClientOptions{
			BaseURL: gc.GitHub.APIURL,
			PerPage: gc.GitHub.PerPage,
			Timeout: gc.GitHub.Timeout,
			Token:   store.Credential,
		})
		logging.Debug("Bootstrap", "Session %s, API %s", path, gc.GitHub.APIURL)
	}

	return &Services{
		Session: store,
		Data:    data,
		Factory: &screens.Factory{
			Data:      data,
			Session:   store,
			Clipboard: clipboard.WriteAll,
		},
	}, nil
}

// SignIn verifies token against the API and stores it with the login it
// belongs to.
func (s *Services) SignIn(ctx context.Context, token string) error {
	user, err := currentUser(ctx, s.Data, token)
	if err != nil {
		return fmt.Errorf("verifying token: %w", err)
	}
	if err := s.Session.SetCredential(token, user.Login); err != nil {
		return err
	}
	logging.Info("Bootstrap", "Signed in as %s", user.Login)
	return nil
}

// Logout clears the stored credential. The selected repository is kept.
func (s *Services) Logout() error {
	if !s.Session.HasCredential() {
		return session.ErrNoCredential
	}
	return s.Session.ClearCredential()
}

// Stage reports which flow the TUI would open with.
func (s *Services) Stage() coordinator.Stage {
	return coordinator.Decide(s.Session)
}

func currentUser(ctx context.Context, data github.Service, token string) (github.User, error) {
	type result struct {
		value any
		err   error
	}
	done := make(chan result, 1)
	data.Fetch(ctx, github.ResourceCurrentUser, github.Query{Token: token}, func(value any, err error) {
		done <- result{value, err}
	})

	select {
	case r := <-done:
		if r.err != nil {
			return github.User{}, r.err
		}
		user, ok := r.value.(github.User)
		if !ok {
			return github.User{}, fmt.Errorf("unexpected %T for current user", r.value)
		}
		return user, nil
	case <-ctx.Done():
		return github.User{}, ctx.Err()
	}
}
