package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/adsctl/adsctl/internal/api"
)

// reportResults prints one line per mutate result. A terminal gets a small
// headed table, a pipe gets bare resource names, -json gets the result
// objects.
func reportResults(w io.Writer, resp *api.MutateResponse, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp.Results)
	}

	if isTerminal(w) {
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "RESOURCE NAME")
		for _, r := range resp.Results {
			fmt.Fprintln(tw, r.ResourceName)
		}
		return tw.Flush()
	}

	for _, r := range resp.Results {
		fmt.Fprintln(w, r.ResourceName)
	}
	return nil
}

// printRunError renders a terminal failure. ServiceError values already carry
// the request id and every (code, message) pair in their message; everything
// else prints as a single line.
func printRunError(w io.Writer, err error) {
	fmt.Fprintf(w, "adsctl: %v\n", err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
