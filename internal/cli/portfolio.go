package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/google/subcommands"
)

type portfolioCmd struct {
	app *App
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "list holdings with their performance" }
func (*portfolioCmd) Usage() string {
	return `portfolio

  Lists every holding with cost, current value, profit and return.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app := c.app
	performances := app.Portfolio.GetPortfolio()
	if len(performances) == 0 {
		return app.print("No holdings yet.\n")
	}

	t := newTable("ID", "Symbol", "Name", "Quantity", "Cost", "Value", "Profit", "Return")
	for _, p := range performances {
		t.add(p.Asset.ID, p.Asset.Symbol, p.Asset.Name, p.Asset.Quantity.String(),
			app.money(p.Cost), app.money(p.Value), app.signedMoney(p.Profit), p.Return.SignedString())
	}

	snapshot := app.Snapshots.View()
	totals := fmt.Sprintf("\nTotal value **%s**, gain **%s**\n",
		app.money(service.PortfolioValue(snapshot.Portfolio)),
		app.signedMoney(service.PortfolioGain(snapshot.Portfolio)))

	return app.print("# Portfolio\n\n" + t.String() + totals)
}

type addAssetCmd struct {
	app      *App
	id       string
	name     string
	symbol   string
	quantity string
	price    string
	current  string
	kind     string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "add a holding to the portfolio" }
func (*addAssetCmd) Usage() string {
	return `add-asset -name <name> -symbol <symbol> -quantity <qty> -price <price> -type <stock|crypto|etf|bond> [-current <price>] [-id <id>]

  Adds a holding. The current price defaults to the purchase price.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "holding id, generated when omitted")
	f.StringVar(&c.name, "name", "", "display name (required)")
	f.StringVar(&c.symbol, "symbol", "", "ticker symbol (required)")
	f.StringVar(&c.quantity, "quantity", "", "units held (required)")
	f.StringVar(&c.price, "price", "", "purchase price per unit (required)")
	f.StringVar(&c.current, "current", "", "current price per unit")
	f.StringVar(&c.kind, "type", string(domain.AssetTypeStock), "asset type: stock, crypto, etf or bond")
}

func (c *addAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quantity, err := service.ParseAmount(c.quantity)
	if err != nil {
		return c.app.usage("-quantity must be a non-negative number")
	}
	price, err := service.ParseAmount(c.price)
	if err != nil {
		return c.app.usage("-price must be a non-negative number")
	}
	current := price
	if c.current != "" {
		if current, err = service.ParseAmount(c.current); err != nil {
			return c.app.usage("-current must be a non-negative number")
		}
	}

	asset, err := c.app.Portfolio.AddAsset(ctx, service.CreateAssetInput{
		ID:            c.id,
		Name:          c.name,
		Symbol:        c.symbol,
		Quantity:      quantity,
		PurchasePrice: price,
		CurrentPrice:  current,
		Type:          domain.AssetType(strings.ToLower(c.kind)),
	})
	if err != nil {
		return c.app.fail("could not add asset: %v", err)
	}

	return c.app.print(fmt.Sprintf("Added **%s** (%s), id `%s`\n", asset.Symbol, asset.Name, asset.ID))
}

type removeAssetCmd struct {
	app *App
	id  string
}

func (*removeAssetCmd) Name() string     { return "remove-asset" }
func (*removeAssetCmd) Synopsis() string { return "remove a holding from the portfolio" }
func (*removeAssetCmd) Usage() string {
	return `remove-asset -id <id>
`
}

func (c *removeAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "holding id (required)")
}

func (c *removeAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.app.usage("-id is required")
	}
	if err := c.app.Portfolio.RemoveAsset(ctx, c.id); err != nil {
		return c.app.fail("could not remove asset %s: %v", c.id, err)
	}
	return c.app.print(fmt.Sprintf("Removed holding `%s`\n", c.id))
}

type setPriceCmd struct {
	app   *App
	id    string
	price string
}

func (*setPriceCmd) Name() string     { return "set-price" }
func (*setPriceCmd) Synopsis() string { return "overwrite the current price of a holding" }
func (*setPriceCmd) Usage() string {
	return `set-price -id <id> -price <price>
`
}

func (c *setPriceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "holding id (required)")
	f.StringVar(&c.price, "price", "", "new current price per unit (required)")
}

func (c *setPriceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.app.usage("-id is required")
	}
	price, err := service.ParseAmount(c.price)
	if err != nil {
		return c.app.usage("-price must be a non-negative number")
	}

	asset, err := c.app.Portfolio.UpdatePrice(ctx, c.id, price)
	if err != nil {
		return c.app.fail("could not update price of %s: %v", c.id, err)
	}

	p := service.Performance(*asset)
	return c.app.print(fmt.Sprintf("**%s** now at %s, value %s (%s)\n",
		asset.Symbol, c.app.money(asset.CurrentPrice), c.app.money(p.Value), p.Return.SignedString()))
}
