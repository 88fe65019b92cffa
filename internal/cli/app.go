// Package cli implements the interactive journal REPL: authentication
// prompts, daily entry commands, search and stats, and backup import/export.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ericmacharia6907-max/365/internal/auth"
	"github.com/ericmacharia6907-max/365/internal/config"
	"github.com/ericmacharia6907-max/365/internal/journal"
	"github.com/ericmacharia6907-max/365/internal/logging"
	"github.com/ericmacharia6907-max/365/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	engine  *auth.Engine
	session *auth.Session
	journal *journal.Service
	log     logging.Logger
	reader  *bufio.Reader
	now     func() time.Time

	userName string

	// Last deleted entry, kept in memory so "undo" can restore it.
	lastDeletedKey   string
	lastDeletedEntry journal.Entry
	hasUndo          bool
}

func NewApp(c *config.Config, engine *auth.Engine, session *auth.Session, svc *journal.Service, log logging.Logger) *App {
	return &App{
		config:  c,
		engine:  engine,
		session: session,
		journal: svc,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		now:     time.Now,
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Run restores a remembered session if one exists, then hands control to
// the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) {
	if name := a.session.Get(ctx); name != "" {
		// A pointer to a user that no longer exists means logged out.
		if a.engine.HasUser(ctx, name) {
			a.userName = name
			printlnFn("Welcome back,", name)
		} else {
			a.log.Warn(ctx, "dangling session pointer, ignoring", "username", name)
		}
	}

	printlnFn("365 journal (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// NewStore opens the sqlite-backed medium configured in c.
func NewStore(ctx context.Context, c *config.Config) (storage.Store, error) {
	return storage.Open(ctx, c.DatabaseDSN)
}
