package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adsctl/adsctl/internal/api"
	"github.com/adsctl/adsctl/internal/config"
)

// Placeholder fallbacks used when neither -feed-item flags nor config
// defaults are given, matching the fill-in-your-ids convention of the
// platform's example scripts.
var placeholderFeedItems = []string{
	"customers/INSERT_CUSTOMER_ID/extensionFeedItems/INSERT_FEED_ITEM_ID_1",
	"customers/INSERT_CUSTOMER_ID/extensionFeedItems/INSERT_FEED_ITEM_ID_2",
}

// stdout is swapped out by tests.
var stdout io.Writer = os.Stdout

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func newClient(cfg config.Config) *api.Client {
	var opts []api.Option
	if cfg.Endpoint != "" {
		opts = append(opts, api.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Version != "" {
		opts = append(opts, api.WithVersion(cfg.Version))
	}
	if cfg.LoginCustomerID != "" {
		opts = append(opts, api.WithLoginCustomer(cfg.LoginCustomerID))
	}
	if debug {
		opts = append(opts, api.WithDebug(true))
	}
	return api.New(cfg.AuthToken, cfg.DeveloperToken, opts...)
}

func handleUpdateSitelinks(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("update-sitelinks", flag.ExitOnError)
	customer := fs.Int64("customer", 0, "customer id (required)")
	campaign := fs.Int64("campaign", 0, "campaign id (required)")
	var feedItems stringList
	fs.Var(&feedItems, "feed-item", "extension feed item resource name (repeatable)")
	jsonOut := fs.Bool("json", false, "output JSON")
	validateOnly := fs.Bool("validate-only", false, "validate the request without applying it")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: adsctl update-sitelinks -customer <id> -campaign <id> [-feed-item <name>]...\n\n")
		fmt.Fprintf(os.Stderr, "Replace the sitelink feed items attached to a campaign. The feed-item\n")
		fmt.Fprintf(os.Stderr, "list is applied exactly as given; an empty list clears the setting.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireIDs(*customer, *campaign); err != nil {
		fs.Usage()
		return err
	}

	op, err := api.ReplaceSitelinks(*customer, *campaign, resolveFeedItems(feedItems, cfg))
	if err != nil {
		return err
	}

	resp, err := newClient(cfg).MutateCampaignExtensionSettings(context.Background(), *customer,
		&api.MutateRequest{
			Operations:   []api.Operation{op},
			ValidateOnly: *validateOnly,
		})
	if err != nil {
		return err
	}
	return reportResults(stdout, resp, *jsonOut)
}

func handleRemoveSitelinks(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("remove-sitelinks", flag.ExitOnError)
	customer := fs.Int64("customer", 0, "customer id (required)")
	campaign := fs.Int64("campaign", 0, "campaign id (required)")
	jsonOut := fs.Bool("json", false, "output JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: adsctl remove-sitelinks -customer <id> -campaign <id>\n\n")
		fmt.Fprintf(os.Stderr, "Remove a campaign's sitelink extension setting entirely.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireIDs(*customer, *campaign); err != nil {
		fs.Usage()
		return err
	}

	op := api.RemoveSitelinkSetting(*customer, *campaign)
	resp, err := newClient(cfg).MutateCampaignExtensionSettings(context.Background(), *customer,
		&api.MutateRequest{Operations: []api.Operation{op}})
	if err != nil {
		return err
	}
	return reportResults(stdout, resp, *jsonOut)
}

func requireIDs(customerID, campaignID int64) error {
	if customerID <= 0 {
		return fmt.Errorf("-customer is required")
	}
	if campaignID <= 0 {
		return fmt.Errorf("-campaign is required")
	}
	return nil
}

// resolveFeedItems applies the defaulting chain: explicit flags, then config
// defaults, then placeholders. Construction itself never defaults anything.
func resolveFeedItems(flagged []string, cfg config.Config) []string {
	if len(flagged) > 0 {
		return flagged
	}
	if len(cfg.DefaultFeedItems) > 0 {
		return cfg.DefaultFeedItems
	}
	return placeholderFeedItems
}
