package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/joho/godotenv"
)

func executor(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	args := strings.Split(input, " ")
	cmd := strings.ToLower(args[0])
	cmdArgs := args[1:]

	switch cmd {
	case "login":
		login(cmdArgs)
	case "check":
		check()
	case "run":
		run()
	case "create":
		if len(cmdArgs) != 1 {
			fmt.Println("Usage: create <action-code>")
			return
		}
		code, err := strconv.Atoi(cmdArgs[0])
		if err != nil || code < 0 {
			fmt.Println("Action code must be a non-negative integer")
			return
		}
		create(code)
	case "complete":
		if len(cmdArgs) != 1 {
			fmt.Println("Usage: complete <action-code>")
			return
		}
		code, err := strconv.Atoi(cmdArgs[0])
		if err != nil || code < 0 {
			fmt.Println("Action code must be a non-negative integer")
			return
		}
		complete(code)
	case "help":
		fmt.Println("\n=== Action Runner Help ===")
		fmt.Printf("%-20s : %s\n", "login", "Login and store the session cookie")
		fmt.Printf("%-20s   %s\n", "", "Usage: login --username:yourname --password:yourpass")
		fmt.Printf("%-20s : %s\n", "check", "List pending and completed photo actions")
		fmt.Printf("%-20s : %s\n", "run", "Execute every pending action in order and report each back")
		fmt.Printf("%-20s : %s\n", "create", "Create a pending action: create <action-code>")
		fmt.Printf("%-20s : %s\n", "complete", "Mark an action done: complete <action-code>")
		fmt.Printf("%-20s : %s\n", "exit", "Quit")
	case "exit":
		os.Exit(0)
	default:
		fmt.Println("Unknown command. Type 'help' for a list of commands.")
	}
}

func noCompleter(d prompt.Document) []prompt.Suggest {
	return []prompt.Suggest{}
}

func main() {
	godotenv.Load()

	fmt.Println("Photo Action Runner")
	fmt.Println("Type 'help' to see available commands")

	p := prompt.New(
		executor,
		noCompleter,
		prompt.OptionPrefix("> "),
		prompt.OptionTitle("Action Runner"),
		prompt.OptionHistory([]string{}),
	)
	p.Run()
}
