package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/countries-explorer/internal/client/countries"
	"github.com/iudanet/countries-explorer/internal/models"
)

func (c *Cli) runRegion(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: countries region <name> (one of %s, or All)",
			strings.Join(models.Regions, ", "))
	}

	region := args[0]
	if canonical, ok := models.IsRegion(region); ok {
		region = canonical
	} else if !strings.EqualFold(region, countries.RegionAll) {
		return fmt.Errorf("unknown region: %s", region)
	} else {
		region = countries.RegionAll
	}

	if err := c.countriesService.FetchAll(ctx); err != nil {
		return err
	}

	if err := c.countriesService.FilterByRegion(ctx, region); err != nil {
		return err
	}

	c.printCountryTable(c.countriesService.Displayed())

	return nil
}
