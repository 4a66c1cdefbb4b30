package commands

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"golang.org/x/oauth2"
)

var AuthoriseCmd = Authorise{
	credentials: "",
	workdir:     "",
	port:        8085,
}

type Authorise struct {
	credentials string
	workdir     string
	port        uint
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises competency-app-sheets to access Google Sheets"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] authorise [options]\n", APP)
	fmt.Println()
	fmt.Println("  Authorises competency-app-sheets to access Google Sheets and saves the OAuth2 token to the working directory")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    competency-app-sheets authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("authorise", flag.ExitOnError)

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file. Defaults to sheets.credentials")
	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, etc). Defaults to sheets.workdir")
	flagset.UintVar(&cmd.port, "port", cmd.port, "Local port for the OAuth2 redirect")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	options := args[0].(*Options)

	conf, err := configure(options)
	if err != nil {
		return err
	}

	credentials := conf.Sheets.Credentials
	if strings.TrimSpace(cmd.credentials) != "" {
		credentials = cmd.credentials
	}

	workdir := conf.Sheets.Workdir
	if strings.TrimSpace(cmd.workdir) != "" {
		workdir = cmd.workdir
	}

	if strings.TrimSpace(credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	return authenticate(credentials, SHEETS, workdir, cmd.port)
}

func authenticate(credentials, scope, workdir string, port uint) error {
	config, err := oauthConfig(credentials, scope)
	if err != nil {
		return fmt.Errorf("invalid credentials (%w)", err)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%v", port))
	if err != nil {
		return err
	}

	config.RedirectURL = fmt.Sprintf("http://localhost:%v/", port)

	authorised := make(chan string, 1)
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, rq *http.Request) {
		state := rq.FormValue("state")
		code := rq.FormValue("code")

		debugf("OAuth2 redirect  state:%v  scope:%v", state, rq.FormValue("scope"))

		if state != "state-token" || code == "" {
			http.Error(w, "Invalid authorisation response", http.StatusBadRequest)
			return
		}

		fmt.Fprintln(w, "competency-app-sheets authorised - you can close this window")

		select {
		case authorised <- code:
		default:
		}
	})

	srv := &http.Server{
		Handler: mux,
	}

	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			warnf("%v", err)
		}
	}()

	defer srv.Shutdown(context.Background())

	// ... CTRL-C handler
	interrupt := make(chan os.Signal, 1)

	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	// ... open OAuth2 URL in browser
	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Printf("\n  Open the following link in your browser to authorise access:\n\n  %v\n\n", url)

	if err := exec.Command("open", url).Start(); err != nil {
		debugf("could not open browser (%v)", err)
	}

	// ... wait for authorisation
	select {
	case <-interrupt:
		fmt.Printf("\n.. cancelled\n\n")
		return nil

	case code := <-authorised:
		token, err := config.Exchange(context.Background(), code)
		if err != nil {
			return fmt.Errorf("unable to retrieve token (%w)", err)
		}

		tokens := tokenFile(credentials, scope, workdir)
		if err := saveToken(tokens, token); err != nil {
			return err
		}

		infof("saved authorisation token to %v", tokens)
	}

	return nil
}
