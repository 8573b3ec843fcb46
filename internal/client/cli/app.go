// Package cli implements the interactive terminal client: a REPL over the
// account service with durable sign-in state.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/accountd/internal/client/config"
	"github.com/dmitrijs2005/accountd/internal/client/gateway"
	"github.com/dmitrijs2005/accountd/internal/client/repositories/state"
	"github.com/dmitrijs2005/accountd/internal/client/services"
	"github.com/dmitrijs2005/accountd/internal/client/session"
)

type App struct {
	config         *config.Config
	accountService services.AccountService
	session        *session.Manager
	reader         *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := state.InitDatabase(ctx, c.StatePath)
	if err != nil {
		log.Printf("error initializing state database: %s", err.Error())
		return nil, err
	}

	sess := session.NewManager(db)

	gw := gateway.NewHTTPGateway(c.ServerBaseURL, c.RequestTimeout, func() string {
		return sess.Current().Token
	})

	// a rejected token means the session is dead (expired, or the account
	// is gone); drop it so the prompt falls back to signed-out
	gw.OnUnauthenticated = func() {
		if err := sess.Logout(context.Background()); err != nil {
			log.Printf("error clearing session: %s", err.Error())
		}
	}

	as := services.NewAccountService(gw, sess)

	return &App{
		config:         c,
		accountService: as,
		session:        sess,
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().Authenticated()
}

func (a *App) Run(ctx context.Context) {
	if st := a.session.Restore(ctx); st.Authenticated() {
		log.Printf("Restored session for %s", st.Email)
	}
	a.Root(ctx)
}
