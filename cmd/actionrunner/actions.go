package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
)

type photoAction struct {
	ActionID uint `json:"action_id"`
	UserID   uint `json:"user_id"`
	Action   int  `json:"action"`
	Done     bool `json:"done"`
}

type actionListResponse struct {
	Success bool          `json:"success"`
	Actions []photoAction `json:"actions"`
}

var client = newClient()

func newClient() *resty.Client {
	jar, _ := cookiejar.New(nil)
	return resty.New().SetCookieJar(jar)
}

func baseURL() string {
	if url := os.Getenv("API_URL"); url != "" {
		return strings.TrimRight(url, "/")
	}
	return "http://localhost:8000"
}

// actionHandlers maps action codes to their local effect. Unknown codes fall
// through to the default branch in execute, so the dispatch is total.
var actionHandlers = map[int]func() error{
	0: func() error {
		fmt.Println("  [0] opening the camera overlay")
		return nil
	},
	1: func() error {
		fmt.Println("  [1] capturing a photo")
		return nil
	},
	2: func() error {
		fmt.Println("  [2] applying the night filter")
		return nil
	},
	3: func() error {
		fmt.Println("  [3] saving to the gallery")
		return nil
	},
	4: func() error {
		fmt.Println("  [4] unlocking the gallery app")
		return nil
	},
}

func execute(code int) error {
	handler, ok := actionHandlers[code]
	if !ok {
		fmt.Printf("  [%d] no local effect, acknowledging only\n", code)
		return nil
	}
	return handler()
}

func login(args []string) {
	var username, password string

	if len(args) >= 2 &&
		strings.HasPrefix(args[0], "--username:") &&
		strings.HasPrefix(args[1], "--password:") {
		username = strings.TrimPrefix(args[0], "--username:")
		password = strings.TrimPrefix(args[1], "--password:")
	} else {
		reader := bufio.NewReader(os.Stdin)

		fmt.Print("Enter username: ")
		u, _ := reader.ReadString('\n')
		username = strings.TrimSpace(u)

		fmt.Print("Enter password: ")
		p, _ := reader.ReadString('\n')
		password = strings.TrimSpace(p)
	}

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"username": username,
			"password": password,
		}).
		Post(baseURL() + "/api/auth/login")
	if err != nil {
		fmt.Println("Login request failed:", err)
		return
	}

	if resp.StatusCode() != http.StatusOK {
		fmt.Println("Login failed:", resp.String())
		return
	}

	// The session cookie lives in the client's jar from here on.
	fmt.Println("Login successful! Session stored for this run.")
	check()
}

func fetchActions() ([]photoAction, error) {
	resp, err := client.R().Get(baseURL() + "/api/photo-actions")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode(), resp.String())
	}

	var list actionListResponse
	if err := json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, err
	}
	return list.Actions, nil
}

func partition(actions []photoAction) (pending, completed []photoAction) {
	for _, a := range actions {
		if a.Done {
			completed = append(completed, a)
		} else {
			pending = append(pending, a)
		}
	}
	return pending, completed
}

func check() {
	actions, err := fetchActions()
	if err != nil {
		fmt.Println("Failed to fetch actions:", err)
		return
	}

	pending, completed := partition(actions)
	fmt.Printf("%d pending, %d completed\n", len(pending), len(completed))
	for _, a := range pending {
		fmt.Printf("  pending   action=%d id=%d\n", a.Action, a.ActionID)
	}
	for _, a := range completed {
		fmt.Printf("  completed action=%d id=%d\n", a.Action, a.ActionID)
	}
}

// run executes pending actions strictly in order. A failed action is logged
// and skipped; nothing is rolled back and the rest of the queue still runs.
func run() {
	actions, err := fetchActions()
	if err != nil {
		fmt.Println("Failed to fetch actions:", err)
		return
	}

	pending, _ := partition(actions)
	if len(pending) == 0 {
		fmt.Println("Nothing to run")
		return
	}

	for _, a := range pending {
		fmt.Printf("Running action %d...\n", a.Action)
		if err := execute(a.Action); err != nil {
			fmt.Printf("  action %d failed: %v (continuing)\n", a.Action, err)
			continue
		}
		reportDone(a.Action)
	}
}

func reportDone(code int) {
	resp, err := client.R().
		Post(fmt.Sprintf("%s/api/photo-actions/%d/done", baseURL(), code))
	if err != nil {
		fmt.Printf("  failed to report action %d: %v\n", code, err)
		return
	}
	if resp.StatusCode() != http.StatusOK {
		fmt.Printf("  server rejected completion of action %d: %s\n", code, resp.String())
		return
	}
	fmt.Printf("  action %d reported done\n", code)
}

func create(code int) {
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{"action": code}).
		Post(baseURL() + "/api/photo-actions")
	if err != nil {
		fmt.Println("Create request failed:", err)
		return
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		fmt.Println("Create failed:", resp.String())
		return
	}
	fmt.Printf("Action %d created\n", code)
}

func complete(code int) {
	reportDone(code)
}
