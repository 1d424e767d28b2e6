package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/countries-explorer/internal/client/auth"
	"github.com/iudanet/countries-explorer/internal/client/countries"
	"github.com/iudanet/countries-explorer/internal/client/iocli"
)

// Cli ties the country data service, the session/favorites service and
// terminal IO together and dispatches commands.
type Cli struct {
	countriesService *countries.Service
	authService      *auth.Service
	io               iocli.IO
}

// New creates a new Cli
func New(countriesService *countries.Service, authService *auth.Service, io iocli.IO) *Cli {
	return &Cli{
		countriesService: countriesService,
		authService:      authService,
		io:               io,
	}
}

// Run выполняет команду с аргументами
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "list":
		return c.runList(ctx)
	case "search":
		return c.runSearch(ctx, args)
	case "region":
		return c.runRegion(ctx, args)
	case "show":
		return c.runShow(ctx, args)
	case "fav":
		return c.runFav(ctx, args)
	case "browse":
		return c.runBrowse(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage prints command reference
func (c *Cli) PrintUsage() {
	c.io.Println("Countries Explorer")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  countries [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --version              Show version information")
	c.io.Println("  --db PATH              Path to local database (default: countries-explorer.db)")
	c.io.Println("  --storage ENGINE       Local storage engine: bolt or sqlite (default: bolt)")
	c.io.Println("  --api URL              REST Countries base URL (default: https://restcountries.com/v3.1)")
	c.io.Println("  --session-ttl DURATION Session lifetime (default: 24h)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  register               Register new user")
	c.io.Println("  login                  Login")
	c.io.Println("  logout                 Logout")
	c.io.Println("  status                 Show authentication status")
	c.io.Println("  list                   List all countries")
	c.io.Println("  search <term> [region] Search countries by name, optionally within a region")
	c.io.Println("  region <name>          List countries in a region (or 'All')")
	c.io.Println("  show <code>            Show country details by three-letter code")
	c.io.Println("  fav add <code>         Add a country to favorites")
	c.io.Println("  fav remove <code>      Remove a country from favorites")
	c.io.Println("  fav list               List favorite countries")
	c.io.Println("  browse                 Interactive mode")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  countries search Ger")
	c.io.Println("  countries search Ger Europe")
	c.io.Println("  countries region Europe")
	c.io.Println("  countries show DEU")
	c.io.Println("  countries fav add DEU")
	c.io.Println("  countries browse")
}
