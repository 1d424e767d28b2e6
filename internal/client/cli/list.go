package cli

import "context"

func (c *Cli) runList(ctx context.Context) error {
	if err := c.countriesService.FetchAll(ctx); err != nil {
		return err
	}

	c.printCountryTable(c.countriesService.Displayed())

	return nil
}
