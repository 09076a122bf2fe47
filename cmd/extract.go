package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/kverel/pnl"
)

// extractCmd holds the flags for the 'extract' subcommand.
type extractCmd struct {
	docFile       string
	current       string
	previous      string
	model         string
	previousModel string
}

func (*extractCmd) Name() string     { return "extract" }
func (*extractCmd) Synopsis() string { return "extract a mark row from a provider JSON document" }
func (*extractCmd) Usage() string {
	return `plc extract -doc <file> -current <path> -previous <path> -model <path> -previous-model <path>

  Applies jsonpath expressions to a provider's JSON document to lift
  the four mark prices out of it, and appends the resulting mark
  record to the datasets file. Use -doc - to read the document from
  standard input.

Usage Examples:
$ curl -s https://feed.example.com/marks | plc extract -doc - \
    -current '$.quote.last' -previous '$.quote.close' \
    -model '$.model.fair' -previous-model '$.model.prevFair'

`
}

func (c *extractCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.docFile, "doc", "-", "JSON document to extract from, - for stdin")
	f.StringVar(&c.current, "current", "", "jsonpath of the current market price")
	f.StringVar(&c.previous, "previous", "", "jsonpath of the previous market price")
	f.StringVar(&c.model, "model", "", "jsonpath of the current model price")
	f.StringVar(&c.previousModel, "previous-model", "", "jsonpath of the previous model price")
}

func (c *extractCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if c.docFile != "-" {
		file, err := os.Open(c.docFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening document %q: %v\n", c.docFile, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding document: %v\n", err)
		return subcommands.ExitFailure
	}

	spec := pnl.FeedSpec{
		Current:       c.current,
		Previous:      c.previous,
		Model:         c.model,
		PreviousModel: c.previousModel,
		Currency:      *currency,
	}
	row, err := spec.ExtractMark(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting mark: %v\n", err)
		return subcommands.ExitFailure
	}

	// Open the file in append mode, creating it if it doesn't exist.
	out, err := os.OpenFile(*datasetsFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening datasets file %q: %v\n", *datasetsFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := pnl.EncodeMark(out, row); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to datasets file %q: %v\n", *datasetsFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended mark to %s\n", *datasetsFile)
	return subcommands.ExitSuccess
}
