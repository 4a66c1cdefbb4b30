package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kompetanse/competency-app-sheets/survey"
)

var ExportCmd = Export{
	file:        time.Now().Format("competency-2006-01-02T150405.xlsx"),
	notAnswered: "",
	blocklist:   "",
}

type Export struct {
	file        string
	notAnswered string
	blocklist   string
}

func (cmd *Export) Name() string {
	return "export"
}

func (cmd *Export) Description() string {
	return "Fetches the survey answers and stores the answer matrix to a local TSV or XLSX file"
}

func (cmd *Export) Usage() string {
	return "--file <file>"
}

func (cmd *Export) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] export [options] --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Builds the answer matrix without a Google Sheets spreadsheet. The file format follows the")
	fmt.Println("  file extension: an .xlsx workbook has 'data' and 'not answered' worksheets, a .tsv file has")
	fmt.Println("  only the answer matrix (use --not-answered for the roster).")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    competency-app-sheets export --file "competency.xlsx"`)
	fmt.Println()
	fmt.Println(`    competency-app-sheets --debug export --file "competency.tsv" \`)
	fmt.Println(`                                         --not-answered "not-answered.tsv" \`)
	fmt.Println(`                                         --blocklist "blocklist.txt"`)
	fmt.Println()
}

func (cmd *Export) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("export", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "Output file (.tsv or .xlsx). Defaults to 'competency-<yyyy-mm-ddTHHmmss>.xlsx'")
	flagset.StringVar(&cmd.notAnswered, "not-answered", cmd.notAnswered, "Optional TSV file for the not-answered roster")
	flagset.StringVar(&cmd.blocklist, "blocklist", cmd.blocklist, "Optional file of blocklisted emails, one per line")

	return flagset
}

func (cmd *Export) Execute(args ...any) error {
	options := args[0].(*Options)

	conf, err := configure(options)
	if err != nil {
		return err
	}

	// ... check parameters
	if err := conf.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	ext := strings.ToLower(filepath.Ext(cmd.file))
	if ext != ".tsv" && ext != ".xlsx" {
		return fmt.Errorf("unsupported file type '%s' - expected .tsv or .xlsx", filepath.Ext(cmd.file))
	}

	blocklist := survey.NewBlocklist()
	if cmd.blocklist != "" {
		if blocklist, err = loadBlocklist(cmd.blocklist); err != nil {
			return err
		}

		infof("Loaded %v blocklisted users from %v", len(blocklist), cmd.blocklist)
	}

	r := fetchAndBuild(context.Background(), conf, blocklist)

	data := matrixValues(r.catalog, r.result)
	roster := notAnsweredValues(r.result)

	switch ext {
	case ".xlsx":
		err = save(cmd.file, func(w io.Writer) error {
			return writeXLSX(w,
				worksheet{name: conf.Sheets.Data, values: data},
				worksheet{name: conf.Sheets.NotAnswered, values: roster})
		})

	default:
		err = save(cmd.file, func(w io.Writer) error {
			return writeTSV(w, data)
		})

		if err == nil && cmd.notAnswered != "" {
			err = save(cmd.notAnswered, func(w io.Writer) error {
				return writeTSV(w, roster)
			})
		}
	}

	if err != nil {
		return err
	}

	infof("Exported %v rows and %v not-answered users to %v", len(r.result.Rows), len(r.result.NotAnswered), cmd.file)

	return nil
}

// loadBlocklist reads a blocklist file with one email per line. Blank lines and
// lines starting with '#' are ignored.
func loadBlocklist(file string) (survey.Blocklist, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return readBlocklist(f)
}

func readBlocklist(r io.Reader) (survey.Blocklist, error) {
	emails := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "#") {
			emails = append(emails, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading blocklist (%w)", err)
	}

	return survey.NewBlocklist(emails...), nil
}

// save writes to a temporary file and then renames it to the output file so
// that a failed export does not leave a partial file behind.
func save(file string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(os.TempDir(), "competency")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := write(tmp); err != nil {
		return fmt.Errorf("error creating %v (%w)", file, err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}
