package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// runBrowse запускает интерактивный режим: один процесс, общий каталог,
// фильтры и сессия живут между командами
func (c *Cli) runBrowse(ctx context.Context) error {
	c.io.Println("Countries Explorer interactive mode (type 'help' for commands)")

	if err := c.countriesService.FetchAll(ctx); err != nil {
		c.io.Printf("Warning: %v\n", err)
	}

	for {
		line, err := c.io.ReadInput(c.browsePrompt(ctx))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			return nil
		}

		if err := c.browseCommand(ctx, cmd, args); err != nil {
			c.io.Printf("Error: %v\n", err)
		}
	}
}

// browsePrompt строит приглашение с именем пользователя и активными фильтрами
func (c *Cli) browsePrompt(ctx context.Context) string {
	who := "anonymous"
	if user, err := c.authService.CurrentUser(ctx); err == nil && user != nil {
		who = user.Username
	}

	var filters []string
	if region := c.countriesService.SelectedRegion(); region != "" {
		filters = append(filters, "region="+region)
	}
	if term := c.countriesService.SearchTerm(); strings.TrimSpace(term) != "" {
		filters = append(filters, "search="+term)
	}

	if len(filters) == 0 {
		return fmt.Sprintf("countries %s > ", who)
	}
	return fmt.Sprintf("countries %s [%s] > ", who, strings.Join(filters, " "))
}

func (c *Cli) browseCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		c.printBrowseHelp()
		return nil

	case "all":
		// Сброс обоих фильтров и показ полного каталога
		if err := c.countriesService.FilterByRegion(ctx, ""); err != nil {
			return err
		}
		if err := c.countriesService.Search(ctx, ""); err != nil {
			return err
		}
		c.printCountryTable(c.countriesService.Displayed())
		return nil

	case "list":
		c.printCountryTable(c.countriesService.Displayed())
		return nil

	case "region":
		return c.runRegion(ctx, args)

	case "search":
		if len(args) < 1 {
			return fmt.Errorf("usage: search <term>")
		}
		if err := c.countriesService.Search(ctx, strings.Join(args, " ")); err != nil {
			return err
		}
		c.printCountryTable(c.countriesService.Displayed())
		return nil

	case "show":
		return c.runShow(ctx, args)

	case "fav":
		return c.runFav(ctx, args)

	case "register":
		return c.runRegister(ctx)

	case "login":
		return c.runLogin(ctx)

	case "logout":
		return c.runLogout(ctx)

	case "status":
		return c.runStatus(ctx)

	default:
		return fmt.Errorf("unknown command: %s (type 'help')", cmd)
	}
}

func (c *Cli) printBrowseHelp() {
	c.io.Println("Available commands:")
	c.io.Println("  all              Reset filters and show the full catalog")
	c.io.Println("  list             Show the current view again")
	c.io.Println("  region <name>    Filter by region (or 'All' to reset)")
	c.io.Println("  search <term>    Search by name within the active region")
	c.io.Println("  show <code>      Show country details")
	c.io.Println("  fav add <code>   Add to favorites")
	c.io.Println("  fav remove <code> Remove from favorites")
	c.io.Println("  fav list         List favorites")
	c.io.Println("  register         Register new user")
	c.io.Println("  login            Login")
	c.io.Println("  logout           Logout")
	c.io.Println("  status           Show authentication status")
	c.io.Println("  exit             Leave interactive mode")
}
