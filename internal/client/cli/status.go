package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	user, err := c.authService.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if user == nil {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'countries login' to sign in.")
		return nil
	}

	favorites, err := c.authService.Favorites(ctx)
	if err != nil {
		return fmt.Errorf("failed to get favorites: %w", err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("Favorites: %d country(ies)\n", len(favorites))

	return nil
}
