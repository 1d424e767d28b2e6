package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/iudanet/countries-explorer/internal/models"
)

// printCountryTable выводит список стран таблицей
func (c *Cli) printCountryTable(list []models.Country) {
	if len(list) == 0 {
		c.io.Println("No countries to display.")
		return
	}

	w := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tREGION\tCAPITAL\tPOPULATION")
	for i := range list {
		country := &list[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			country.Code,
			country.Name.Common,
			country.Region,
			country.CapitalDisplay(),
			country.Population,
		)
	}
	_ = w.Flush()

	c.io.Println()
	c.io.Printf("%d country(ies)\n", len(list))
}

// printCountryDetail выводит детальную карточку страны
func (c *Cli) printCountryDetail(country *models.Country) {
	c.io.Printf("=== %s ===\n", country.Name.Common)
	c.io.Println()

	w := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Official name:\t%s\n", country.Name.Official)
	fmt.Fprintf(w, "Code:\t%s\n", country.Code)
	fmt.Fprintf(w, "Region:\t%s\n", country.Region)
	if country.Subregion != "" {
		fmt.Fprintf(w, "Subregion:\t%s\n", country.Subregion)
	}
	fmt.Fprintf(w, "Capital:\t%s\n", country.CapitalDisplay())
	fmt.Fprintf(w, "Population:\t%d\n", country.Population)
	fmt.Fprintf(w, "Area:\t%.0f km²\n", country.Area)
	fmt.Fprintf(w, "Borders:\t%s\n", country.BordersDisplay())
	fmt.Fprintf(w, "Languages:\t%s\n", country.LanguagesDisplay())
	fmt.Fprintf(w, "Currencies:\t%s\n", country.CurrenciesDisplay())
	if country.Flags.PNG != "" {
		fmt.Fprintf(w, "Flag:\t%s\n", country.Flags.PNG)
	}
	_ = w.Flush()
}
