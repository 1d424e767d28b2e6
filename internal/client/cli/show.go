package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: countries show <code>")
	}
	code := strings.ToUpper(args[0])

	country, err := c.countriesService.ByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to fetch country %s: %w", code, err)
	}

	c.printCountryDetail(country)

	// Отметка избранного показывается только авторизованному пользователю
	user, err := c.authService.CurrentUser(ctx)
	if err != nil || user == nil {
		return nil
	}

	favorites, err := c.authService.Favorites(ctx)
	if err != nil {
		return nil
	}

	if slices.Contains(favorites, country.Code) {
		c.io.Println()
		c.io.Println("★ In your favorites")
	}

	return nil
}
