package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-gamehub-client/gameapi"
	"github.com/jrsteele09/go-gamehub-client/internal/config"
	"github.com/jrsteele09/go-gamehub-client/platform"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("Error: %s\n", err)
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.New()
	if err != nil {
		return err
	}
	displayAppname(cfg.AppName)

	p, err := platform.New(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	p.Boot(ctx)

	if len(args) == 0 {
		return usage()
	}
	switch args[0] {
	case "login":
		return login(ctx, p, args[1:])
	case "me":
		return me(p)
	case "games":
		return games(ctx, p, args[1:])
	case "logout":
		p.Session.Logout()
		fmt.Println("Logged out")
		return nil
	default:
		return usage()
	}
}

func usage() error {
	fmt.Println("usage: gamehub <login|me|games|logout> [args]")
	fmt.Println("  login <username> [--remember]")
	fmt.Println("  games [search terms]")
	return nil
}

func login(ctx context.Context, p *platform.Platform, args []string) error {
	if len(args) == 0 {
		return errors.New("login requires a username")
	}
	username := args[0]
	remember := len(args) > 1 && args[1] == "--remember"

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	result := p.Session.Login(ctx, username, string(password), remember)
	if !result.Success {
		return fmt.Errorf("login failed: %s", result.Message)
	}
	fmt.Printf("Logged in as %s\n", username)
	return nil
}

func me(p *platform.Platform) error {
	if !p.Session.IsLoggedIn() {
		return errors.New("not logged in")
	}
	identity := p.Session.Identity()
	fmt.Printf("Username: %s\n", identity.Username)
	fmt.Printf("Email:    %s\n", identity.Email)
	fmt.Printf("Role:     %s\n", identity.Role)
	return nil
}

func games(ctx context.Context, p *platform.Platform, args []string) error {
	query := gameapi.Query{Search: strings.Join(args, " ")}
	page, err := p.Games.List(ctx, query)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, game := range page.Results {
		fmt.Fprintf(w, "%6d  %-40s %s\n", game.ID, game.Name, game.ReleaseDate)
	}
	fmt.Fprintf(w, "%d games\n", page.Count)
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
