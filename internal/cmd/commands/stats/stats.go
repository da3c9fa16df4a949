package stats

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/dustin/go-humanize"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
	"github.com/endpoints-sh/endpoints-cli/pkg/endpoints"
)

var rule = strings.Repeat("─", 50)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Show billing and usage stats"
}

func (c *Command) Help() string {
	return `Usage: endpoints stats

  Shows the account's tier, parse quota and storage usage for the current
  billing period.`
}

func (c *Command) Flags() *base.FlagSet {
	return base.NewFlagSet(flag.NewFlagSet("stats", flag.ContinueOnError))
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail(err)
	}

	stats, err := client.GetBillingStats(c.Context())
	if err != nil {
		return c.Fail(err)
	}

	c.UI.Output("Billing Stats")
	c.UI.Output(rule)
	c.UI.Output(fmt.Sprintf("Tier:        %s", stats.Tier))
	c.UI.Output(fmt.Sprintf("Status:      %s", stats.Status))
	c.UI.Output(fmt.Sprintf("Parses:      %d / %d this month", stats.ParsesThisMonth, stats.MonthlyParseLimit))
	c.UI.Output(fmt.Sprintf("Storage:     %s / %s", humanize.IBytes(uint64(max(stats.StorageUsed, 0))), StorageLimit(stats)))
	c.UI.Output(fmt.Sprintf("Period ends: %s", c.periodEnd(stats)))

	return 0
}

// StorageLimit renders the storage quota. The API sends it as a decimal
// string; anything that is not a byte count is shown as-is.
func StorageLimit(stats *endpoints.BillingStats) string {
	n, err := strconv.ParseUint(stats.StorageLimit, 10, 64)
	if err != nil {
		return stats.StorageLimit
	}
	return humanize.IBytes(n)
}

func (c *Command) periodEnd(stats *endpoints.BillingStats) string {
	if stats.CurrentPeriodEnd == "" {
		return "n/a"
	}

	t, err := dateparse.ParseIn(stats.CurrentPeriodEnd, time.UTC)
	if err != nil {
		c.Log.Debug("unparsed period end", "value", stats.CurrentPeriodEnd, "error", err)
		return stats.CurrentPeriodEnd
	}
	return t.UTC().Format("January 2, 2006")
}
