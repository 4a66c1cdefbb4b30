package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/kompetanse/competency-app-sheets/config"
	"github.com/kompetanse/competency-app-sheets/survey"
)

var GenerateCmd = Generate{
	credentials: "",
	workdir:     "",
	url:         "",
	data:        "",
	notAnswered: "",
	blocklist:   "",
	dryrun:      false,
}

type Generate struct {
	credentials string
	workdir     string
	url         string
	data        string
	notAnswered string
	blocklist   string
	dryrun      bool
}

func (cmd *Generate) Name() string {
	return "generate"
}

func (cmd *Generate) Description() string {
	return "Fetches the survey answers and writes the answer matrix and not-answered roster to a Google Sheets spreadsheet"
}

func (cmd *Generate) Usage() string {
	return "--url <url>"
}

func (cmd *Generate) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] generate [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Fetches the users, question catalog and answers from the survey API and rewrites the")
	fmt.Println("  'data' and 'not answered' worksheets. Users in the blocklist range are excluded from both.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    competency-app-sheets generate --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`)
	fmt.Println()
	fmt.Println(`    competency-app-sheets --debug generate --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                           --blocklist "user blocklist!A3:A" \`)
	fmt.Println(`                                           --dryrun`)
	fmt.Println()
}

func (cmd *Generate) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("generate", flag.ExitOnError)

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file. Defaults to sheets.credentials")
	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, etc). Defaults to sheets.workdir")
	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL. Defaults to sheets.url")
	flagset.StringVar(&cmd.data, "data", cmd.data, "Worksheet for the answer matrix. Defaults to sheets.data")
	flagset.StringVar(&cmd.notAnswered, "not-answered", cmd.notAnswered, "Worksheet for the not-answered roster. Defaults to sheets.not-answered")
	flagset.StringVar(&cmd.blocklist, "blocklist", cmd.blocklist, "Spreadsheet range for the user blocklist e.g. 'user blocklist!A3:A'. Defaults to sheets.blocklist")
	flagset.BoolVar(&cmd.dryrun, "dryrun", cmd.dryrun, "Displays the result without updating the spreadsheet")

	return flagset
}

func (cmd *Generate) Execute(args ...any) error {
	options := args[0].(*Options)

	conf, err := configure(options)
	if err != nil {
		return err
	}

	cmd.defaults(conf)

	// ... check parameters
	if err := cmd.validate(conf); err != nil {
		return err
	}

	spreadsheetId, err := spreadsheetID(cmd.url)
	if err != nil {
		return err
	}

	debugf("Spreadsheet - ID:%s  data:%s  not-answered:%s  blocklist:%s", spreadsheetId, cmd.data, cmd.notAnswered, cmd.blocklist)

	// ... authorise
	ctx := context.Background()
	client, err := authorize(cmd.credentials, SHEETS, cmd.workdir)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%w)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	spreadsheet, err := getSpreadsheet(google, spreadsheetId)
	if err != nil {
		return err
	}

	// ... all worksheets must exist before anything is fetched or cleared
	for _, name := range []string{cmd.data, cmd.notAnswered, cmd.blocklist} {
		if _, err := getSheet(spreadsheet, name); err != nil {
			return err
		}
	}

	blocklist, err := cmd.getBlocklist(google, spreadsheet, ctx)
	if err != nil {
		return err
	}

	infof("Retrieved %v blocklisted users", len(blocklist))

	r := fetchAndBuild(ctx, conf, blocklist)

	if cmd.dryrun {
		summarise(os.Stdout, r)
		return nil
	}

	if err := cmd.write(google, spreadsheet, r, conf.Labels, ctx); err != nil {
		return err
	}

	infof("Updated '%v' with %v rows and '%v' with %v users", cmd.data, len(r.result.Rows), cmd.notAnswered, len(r.result.NotAnswered))

	return nil
}

func (cmd *Generate) defaults(conf *config.Config) {
	set := func(v *string, dflt string) {
		if strings.TrimSpace(*v) == "" {
			*v = dflt
		}
	}

	set(&cmd.credentials, conf.Sheets.Credentials)
	set(&cmd.workdir, conf.Sheets.Workdir)
	set(&cmd.url, conf.Sheets.URL)
	set(&cmd.data, conf.Sheets.Data)
	set(&cmd.notAnswered, conf.Sheets.NotAnswered)
	set(&cmd.blocklist, conf.Sheets.Blocklist)
}

func (cmd *Generate) validate(conf *config.Config) error {
	if err := conf.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	if strings.TrimSpace(cmd.data) == "" {
		return fmt.Errorf("--data is a required option")
	}

	if strings.TrimSpace(cmd.notAnswered) == "" {
		return fmt.Errorf("--not-answered is a required option")
	}

	if !strings.Contains(cmd.blocklist, "!") {
		return fmt.Errorf("invalid blocklist range '%s' - expected something like 'user blocklist!A3:A'", cmd.blocklist)
	}

	return nil
}

func (cmd *Generate) getBlocklist(google *sheets.Service, spreadsheet *sheets.Spreadsheet, ctx context.Context) (survey.Blocklist, error) {
	response, err := google.Spreadsheets.Values.Get(spreadsheet.SpreadsheetId, cmd.blocklist).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve blocklist from sheet (%w)", err)
	}

	return survey.ParseBlocklist(response.Values), nil
}

func (cmd *Generate) write(google *sheets.Service, spreadsheet *sheets.Spreadsheet, r run, labels config.Labels, ctx context.Context) error {
	updated := lastUpdated(r.updated)

	infof("Clearing '%v' and '%v' worksheets", cmd.data, cmd.notAnswered)
	if err := clear(google, spreadsheet, []string{quote(cmd.data), quote(cmd.notAnswered)}, ctx); err != nil {
		return fmt.Errorf("error clearing worksheets (%w)", err)
	}

	infof("Writing answer matrix to '%v'", cmd.data)
	if err := update(google, spreadsheet, dataSheet(cmd.data, r.catalog, r.result, labels, updated), ctx); err != nil {
		return fmt.Errorf("error writing answer matrix (%w)", err)
	}

	infof("Writing not-answered roster to '%v'", cmd.notAnswered)
	if err := update(google, spreadsheet, notAnsweredSheet(cmd.notAnswered, r.result, updated), ctx); err != nil {
		return fmt.Errorf("error writing not-answered roster (%w)", err)
	}

	return nil
}
