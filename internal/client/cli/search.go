package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/countries-explorer/internal/client/countries"
	"github.com/iudanet/countries-explorer/internal/models"
)

func (c *Cli) runSearch(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: countries search <term> [region]")
	}
	term := args[0]

	if err := c.countriesService.FetchAll(ctx); err != nil {
		return err
	}

	if len(args) > 1 {
		region, ok := models.IsRegion(args[1])
		if ok {
			if err := c.countriesService.FilterByRegion(ctx, region); err != nil {
				return err
			}
		} else if !strings.EqualFold(args[1], countries.RegionAll) {
			return fmt.Errorf("unknown region: %s", args[1])
		}
	}

	if err := c.countriesService.Search(ctx, term); err != nil {
		return err
	}

	c.printCountryTable(c.countriesService.Displayed())

	return nil
}
