package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runFav(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: countries fav add|remove|list [code]")
	}

	switch args[0] {
	case "add":
		if len(args) != 2 {
			return fmt.Errorf("usage: countries fav add <code>")
		}
		return c.runFavAdd(ctx, strings.ToUpper(args[1]))
	case "remove":
		if len(args) != 2 {
			return fmt.Errorf("usage: countries fav remove <code>")
		}
		return c.runFavRemove(ctx, strings.ToUpper(args[1]))
	case "list":
		return c.runFavList(ctx)
	default:
		return fmt.Errorf("unknown fav subcommand: %s", args[0])
	}
}

func (c *Cli) runFavAdd(ctx context.Context, code string) error {
	// Код проверяется через API до записи в избранное
	country, err := c.countriesService.ByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to fetch country %s: %w", code, err)
	}

	ok, err := c.authService.AddFavorite(ctx, country.Code)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	if !ok {
		return fmt.Errorf("not authenticated. Please run 'countries login' first")
	}

	c.io.Printf("✓ %s (%s) added to favorites\n", country.Name.Common, country.Code)

	return nil
}

func (c *Cli) runFavRemove(ctx context.Context, code string) error {
	ok, err := c.authService.RemoveFavorite(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if !ok {
		return fmt.Errorf("not authenticated. Please run 'countries login' first")
	}

	c.io.Printf("✓ %s removed from favorites\n", code)

	return nil
}

func (c *Cli) runFavList(ctx context.Context) error {
	user, err := c.authService.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if user == nil {
		return fmt.Errorf("not authenticated. Please run 'countries login' first")
	}

	favorites, err := c.authService.Favorites(ctx)
	if err != nil {
		return fmt.Errorf("failed to get favorites: %w", err)
	}

	if len(favorites) == 0 {
		c.io.Println("No favorites yet.")
		c.io.Println("Run 'countries fav add <code>' to add one.")
		return nil
	}

	c.io.Printf("=== Favorites of %s ===\n", user.Username)
	c.io.Println()

	for _, code := range favorites {
		country, err := c.countriesService.ByCode(ctx, code)
		if err != nil {
			// Страна могла пропасть из API: показываем хотя бы код
			c.io.Printf("  %s (details unavailable)\n", code)
			continue
		}
		c.io.Printf("  %s  %s (%s)\n", country.Code, country.Name.Common, country.Region)
	}

	c.io.Println()
	c.io.Printf("%d favorite(s)\n", len(favorites))

	return nil
}
