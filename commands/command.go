package commands

import (
	"errors"
	"flag"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"

	"github.com/kompetanse/competency-app-sheets/config"
	"github.com/kompetanse/competency-app-sheets/logger"
)

const APP = "competency-app-sheets"

type Options struct {
	Config string
	Debug  bool
}

var ErrMissingSheet = errors.New("missing worksheet")

var log = zap.NewNop().Sugar()

// configure loads the configuration file and sets up the logger for the
// command being executed.
func configure(options *Options) (*config.Config, error) {
	conf, err := config.Load(options.Config)
	if err != nil {
		return nil, fmt.Errorf("could not load configuration (%w)", err)
	}

	level := conf.Logging.Level
	if options.Debug {
		level = "debug"
	}

	l, err := logger.New(level, conf.Logging.Format)
	if err != nil {
		return nil, err
	}

	log = l.Sugar()

	return conf, nil
}

func spreadsheetID(url string) (string, error) {
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(strings.TrimSpace(url))
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func getSpreadsheet(google *sheets.Service, id string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(id).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
	}

	return spreadsheet, nil
}

// getSheet finds the worksheet for a sheet name or an A1 range, e.g. 'data' or
// 'user blocklist!A3:A'.
func getSheet(spreadsheet *sheets.Spreadsheet, area string) (*sheets.Sheet, error) {
	name := sheetName(area)
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && normalise(sheet.Properties.Title) == normalise(name) {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("%w '%s'", ErrMissingSheet, name)
}

func sheetName(area string) string {
	name := area
	if ix := strings.LastIndex(area, "!"); ix >= 0 {
		name = area[:ix]
	}

	name = strings.TrimSpace(name)
	if len(name) > 1 && strings.HasPrefix(name, "'") && strings.HasSuffix(name, "'") {
		name = strings.ReplaceAll(name[1:len(name)-1], "''", "'")
	}

	return name
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(v), " ", ""))
}

func helpOptions(flagset *flag.FlagSet) {
	count := 0
	flag.VisitAll(func(f *flag.Flag) {
		count++
	})

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	if count > 0 {
		fmt.Println()
		fmt.Println("  Options:")
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
		})
	}
}

func debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

func infof(format string, args ...any) {
	log.Infof(format, args...)
}

func warnf(format string, args ...any) {
	log.Warnf(format, args...)
}
