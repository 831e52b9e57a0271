package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Dashboard(ctx context.Context) error
	Insights(ctx context.Context, args []string) error
	Journal(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Write(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Resources(ctx context.Context) error
	Save(ctx context.Context, args []string) error
	Unsave(ctx context.Context, args []string) error
	Saved(ctx context.Context) error
	Retry(ctx context.Context) error

	Profile(ctx context.Context) error
	Update(ctx context.Context) error
	Passwd(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	ToggleTheme(ctx context.Context) error

	Chat(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, theme, help, exit"
	helpLoggedIn  = "Available commands: (d)ashboard, insights [mood_days] [theme_days], (j)ournal, show <id>, (w)rite, delete <id>, " +
		"resources, save <id>, unsave <id>, saved, retry, profile, update, passwd, delete-account, theme, chat [message], " +
		"logout, help, exit"
)

// runREPL starts a simple read-eval-print loop for the moodkeeper CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Commands that prompt for more input read from the same reader, so reader
// must be the one the App prompts with. Unknown commands are reported back
// to the user. The loop exits at end of input or when the user types "exit"
// or "quit".
//
// Command errors never end the loop. Views render their own errors; the
// only error the loop acts on is common.ErrLoginRequired, which sends the
// user to the login prompt.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("mk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		err = nil
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)

		case "d", "dashboard":
			err = a.Dashboard(ctx)
		case "insights":
			err = a.Insights(ctx, args)
		case "j", "journal":
			err = a.Journal(ctx)
		case "show":
			err = a.Show(ctx, args)
		case "w", "write":
			err = a.Write(ctx)
		case "delete":
			err = a.Delete(ctx, args)
		case "resources":
			err = a.Resources(ctx)
		case "save":
			err = a.Save(ctx, args)
		case "unsave":
			err = a.Unsave(ctx, args)
		case "saved":
			err = a.Saved(ctx)
		case "retry", "refresh":
			err = a.Retry(ctx)

		case "profile", "settings":
			err = a.Profile(ctx)
		case "update":
			err = a.Update(ctx)
		case "passwd":
			err = a.Passwd(ctx)
		case "delete-account":
			err = a.DeleteAccount(ctx)
		case "theme":
			err = a.ToggleTheme(ctx)

		case "chat", "history":
			err = a.Chat(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		handleResult(ctx, a, err)
	}
}

// handleResult redirects to the login prompt when a command needs a
// session. Other errors have already been shown by the command.
func handleResult(ctx context.Context, a execIface, err error) {
	if err == nil || !errors.Is(err, common.ErrLoginRequired) {
		return
	}
	printlnFn("Please log in to continue.")
	_ = a.Login(ctx)
}
