package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "register":
		registerCmd(apiURL, args)
	case "login":
		loginCmd(apiURL, args)
	case "profile":
		profileCmd(apiURL)
	case "update":
		updateCmd(apiURL, args)
	case "delete":
		deleteCmd(apiURL)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func registerCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("nome", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("senha", "", "password")
	fs.Parse(args)

	if *name == "" || *email == "" || *password == "" {
		fatal("register requires -nome, -email and -senha")
	}

	msg, err := NewAPIClient(apiURL).Register(*name, *email, *password)
	if err != nil {
		fatal(err.Error())
	}
	fmt.Println(msg)
}

func loginCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("senha", "", "password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		fatal("login requires -email and -senha")
	}

	token, err := NewAPIClient(apiURL).Login(*email, *password)
	if err != nil {
		fatal(err.Error())
	}
	if err := saveToken(token); err != nil {
		fatal(fmt.Sprintf("failed to save token: %v", err))
	}
	fmt.Println("Logged in.")
}

func profileCmd(apiURL string) {
	token, err := loadToken()
	if err != nil {
		fatal(err.Error())
	}

	profile, err := NewAPIClient(apiURL).GetProfile(token)
	if err != nil {
		fatal(err.Error())
	}
	fmt.Printf("Nome:  %s\nEmail: %s\n", profile.Name, profile.Email)
}

func updateCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	name := fs.String("nome", "", "new display name")
	email := fs.String("email", "", "new email address")
	fs.Parse(args)

	if *name == "" && *email == "" {
		fatal("update requires -nome and/or -email")
	}

	token, err := loadToken()
	if err != nil {
		fatal(err.Error())
	}

	msg, err := NewAPIClient(apiURL).UpdateProfile(token, *name, *email)
	if err != nil {
		fatal(err.Error())
	}
	fmt.Println(msg)
}

func deleteCmd(apiURL string) {
	token, err := loadToken()
	if err != nil {
		fatal(err.Error())
	}

	msg, err := NewAPIClient(apiURL).DeleteAccount(token)
	if err != nil {
		fatal(err.Error())
	}
	fmt.Println(msg)
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func printUsage() {
	fmt.Println(`Accounts CLI - client for the user-account API

USAGE:
  accounts <command> [options]

COMMANDS:
  register  Create a new account (-nome, -email, -senha)
  login     Log in and cache the session token (-email, -senha)
  profile   Show the logged-in user's profile
  update    Change name and/or email (-nome, -email)
  delete    Delete the logged-in user's account
  help      Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  accounts register -nome Ana -email ana@x.com -senha pw1
  accounts login -email ana@x.com -senha pw1
  accounts profile`)
}
