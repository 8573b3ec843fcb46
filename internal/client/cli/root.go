package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	st := a.session.Current()
	if st.Authenticated() {
		return fmt.Sprintf("(%s)", st.Email)
	}
	return ""
}

// Root runs the command loop. Commands execute sequentially; a second
// mutation cannot start before the previous one finished. Command errors
// are printed and the loop continues.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to accountd CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("acct %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: whoami, passwd, delete, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.runCommand(ctx, a.Register)
		case "login":
			a.runCommand(ctx, a.Login)
		case "whoami":
			a.runCommand(ctx, a.Whoami)
		case "passwd":
			a.runCommand(ctx, a.Passwd)
		case "delete":
			a.runCommand(ctx, a.Delete)
		case "logout":
			a.runCommand(ctx, a.Logout)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) runCommand(ctx context.Context, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		fmt.Println("Error:", err.Error())
	}
}
