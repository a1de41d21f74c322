// internal/cli/cli.go
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/odalton/storekeep/internal/core/domain"
	"github.com/odalton/storekeep/internal/core/ports"
	"github.com/odalton/storekeep/internal/core/services"
)

const menu = `Commands:
  add               add a product (interactive)
  remove <id>       remove a product
  search <text>     search products by name
  type <variant>    list products of a variant (electronics/grocery/clothing)
  list              list all products
  sell <id> <qty>   sell units of a product
  restock <id> <qty>  restock units of a product
  value             show total inventory value
  sweep             remove expired grocery products
  save              save the inventory to disk
  load              reload the inventory from disk
  export            export an xlsx inventory report
  help              show this menu
  exit              quit`

// CLI is the interactive command interface. Every command maps 1:1 to a
// store or codec operation; a failed operation is reported and the loop
// continues.
type CLI struct {
	inv    *services.Inventory
	repo   ports.InventoryRepository
	report ports.ReportWriter
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// New creates a CLI reading operator input from in and printing to out.
func New(inv *services.Inventory, repo ports.InventoryRepository, report ports.ReportWriter, in io.Reader, out io.Writer, logger *slog.Logger) *CLI {
	return &CLI{
		inv:    inv,
		repo:   repo,
		report: report,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger.With(slog.String("component", "cli")),
	}
}

// Run drives the menu loop until the operator exits, the input ends, or the
// context is canceled.
func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "storekeep - store inventory manager")
	fmt.Fprintln(c.out, menu)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, "> ")
		line, ok := c.readLine()
		if !ok {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		cmd, args := strings.ToLower(fields[0]), fields[1:]
		switch cmd {
		case "help":
			fmt.Fprintln(c.out, menu)
		case "add":
			c.handleAdd()
		case "remove":
			c.handleRemove(args)
		case "search":
			c.handleSearch(args)
		case "type":
			c.handleSearchType(args)
		case "list":
			c.printProducts(c.inv.ListAll())
		case "sell":
			c.handleSell(args)
		case "restock":
			c.handleRestock(args)
		case "value":
			fmt.Fprintf(c.out, "Total inventory value: %s\n", c.inv.TotalValue().StringFixed(2))
		case "sweep":
			c.handleSweep()
		case "save":
			c.handleSave(ctx)
		case "load":
			c.handleLoad(ctx)
		case "export":
			c.handleExport(ctx)
		case "exit", "quit":
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintf(c.out, "Unknown command %q. Type 'help' for the command list.\n", cmd)
		}
	}
}

func (c *CLI) handleAdd() {
	token := c.prompt("Variant (electronics/grocery/clothing): ")
	variant, ok := domain.ParseProductType(token)
	if !ok {
		fmt.Fprintf(c.out, "Unknown variant %q.\n", token)
		return
	}

	id := c.prompt("Product ID (blank to generate): ")
	if id == "" {
		id = uuid.NewString()
	}
	name := c.prompt("Name: ")

	price, err := decimal.NewFromString(c.prompt("Price: "))
	if err != nil {
		fmt.Fprintln(c.out, "Price must be a number.")
		return
	}
	quantity, err := strconv.Atoi(c.prompt("Quantity in stock: "))
	if err != nil {
		fmt.Fprintln(c.out, "Quantity must be a whole number.")
		return
	}

	var product domain.Product
	switch variant {
	case domain.TypeElectronics:
		warranty, convErr := strconv.Atoi(c.prompt("Warranty years: "))
		if convErr != nil {
			fmt.Fprintln(c.out, "Warranty years must be a whole number.")
			return
		}
		brand := c.prompt("Brand: ")
		product, err = domain.NewElectronics(id, name, price, quantity, warranty, brand)
	case domain.TypeGrocery:
		expiry := c.prompt(fmt.Sprintf("Expiry date (%s): ", domain.ExpiryDateLayout))
		// Route through the record decoder so the date parsing and
		// validation match what a load from disk would do.
		rec := domain.Record{
			Type:            domain.TypeGrocery,
			ProductID:       &id,
			Name:            &name,
			Price:           &price,
			QuantityInStock: &quantity,
			ExpiryDate:      &expiry,
		}
		product, err = domain.ProductFromRecord(rec)
	case domain.TypeClothing:
		size := c.prompt("Size (e.g. S/M/L/XL): ")
		material := c.prompt("Material: ")
		product, err = domain.NewClothing(id, name, price, quantity, size, material)
	}
	if err != nil {
		c.presentError(err)
		return
	}

	if err := c.inv.AddProduct(product); err != nil {
		c.presentError(err)
		return
	}
	fmt.Fprintf(c.out, "Added %s product %q (ID %s).\n", product.Type(), product.Name(), product.ID())
}

func (c *CLI) handleRemove(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: remove <id>")
		return
	}
	removed, err := c.inv.RemoveProduct(args[0])
	if err != nil {
		c.presentError(err)
		return
	}
	fmt.Fprintf(c.out, "Removed %q (ID %s).\n", removed.Name(), removed.ID())
}

func (c *CLI) handleSearch(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Usage: search <text>")
		return
	}
	matches := c.inv.SearchByName(strings.Join(args, " "))
	if len(matches) == 0 {
		fmt.Fprintln(c.out, "No products match.")
		return
	}
	c.printProducts(matches)
}

func (c *CLI) handleSearchType(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: type <variant>")
		return
	}
	variant, ok := domain.ParseProductType(args[0])
	if !ok {
		fmt.Fprintf(c.out, "Unknown variant %q.\n", args[0])
		return
	}
	matches := c.inv.SearchByType(variant)
	if len(matches) == 0 {
		fmt.Fprintf(c.out, "No %s products in the inventory.\n", variant)
		return
	}
	c.printProducts(matches)
}

func (c *CLI) handleSell(args []string) {
	id, qty, ok := c.parseIDQuantity(args, "sell")
	if !ok {
		return
	}
	if err := c.inv.SellProduct(id, qty); err != nil {
		c.presentError(err)
		return
	}
	fmt.Fprintf(c.out, "Sold %d unit(s) of %s.\n", qty, id)
}

func (c *CLI) handleRestock(args []string) {
	id, qty, ok := c.parseIDQuantity(args, "restock")
	if !ok {
		return
	}
	if err := c.inv.RestockProduct(id, qty); err != nil {
		c.presentError(err)
		return
	}
	fmt.Fprintf(c.out, "Restocked %d unit(s) of %s.\n", qty, id)
}

func (c *CLI) handleSweep() {
	removed := c.inv.RemoveExpired()
	if len(removed) == 0 {
		fmt.Fprintln(c.out, "No expired products found.")
		return
	}
	fmt.Fprintf(c.out, "Removed %d expired product(s):\n", len(removed))
	c.printProducts(removed)
}

func (c *CLI) handleSave(ctx context.Context) {
	if err := c.repo.SaveAll(ctx, c.inv.ListAll()); err != nil {
		c.presentError(err)
		return
	}
	fmt.Fprintf(c.out, "Saved %d product(s).\n", c.inv.Len())
}

// handleLoad builds a fresh store from the file and swaps it in only when
// the whole load succeeds, so a corrupt document never clobbers the current
// inventory.
func (c *CLI) handleLoad(ctx context.Context) {
	products, err := c.repo.LoadAll(ctx)
	if err != nil {
		c.presentError(err)
		return
	}
	fresh, err := services.NewInventoryFrom(c.logger, products)
	if err != nil {
		c.presentError(err)
		return
	}
	c.inv = fresh
	fmt.Fprintf(c.out, "Loaded %d product(s).\n", fresh.Len())
}

func (c *CLI) handleExport(ctx context.Context) {
	path, err := c.report.WriteReport(ctx, c.inv.ListAll())
	if err != nil {
		c.presentError(err)
		return
	}
	fmt.Fprintf(c.out, "Report written to %s.\n", path)
}

func (c *CLI) parseIDQuantity(args []string, usage string) (string, int, bool) {
	if len(args) != 2 {
		fmt.Fprintf(c.out, "Usage: %s <id> <qty>\n", usage)
		return "", 0, false
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(c.out, "Quantity must be a whole number.")
		return "", 0, false
	}
	return args[0], qty, true
}

func (c *CLI) printProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Fprintln(c.out, "Inventory is empty.")
		return
	}
	for i, p := range products {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, p.Describe())
	}
}

// presentError turns a taxonomy error into an operator-facing message. The
// raw error is logged, never shown.
func (c *CLI) presentError(err error) {
	c.logger.Debug("operation failed", slog.String("error", err.Error()))

	var (
		stockErr *domain.InsufficientStockError
		dupErr   *domain.DuplicateProductIDError
		nfErr    *domain.ProductNotFoundError
		opErr    *domain.InvalidOperationError
		dataErr  *domain.InvalidProductDataError
	)
	switch {
	case errors.As(err, &stockErr):
		fmt.Fprintf(c.out, "Cannot sell %d unit(s) of %s: only %d in stock.\n",
			stockErr.Requested, stockErr.ProductID, stockErr.Available)
	case errors.As(err, &dupErr):
		fmt.Fprintf(c.out, "A product with ID %s already exists.\n", dupErr.ProductID)
	case errors.As(err, &nfErr):
		fmt.Fprintf(c.out, "No product with ID %s.\n", nfErr.ProductID)
	case errors.As(err, &opErr):
		fmt.Fprintf(c.out, "Invalid %s: %s.\n", opErr.Op, opErr.Reason)
	case errors.As(err, &dataErr):
		fmt.Fprintf(c.out, "Invalid product data: %s.\n", dataErr.Reason)
	default:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}

func (c *CLI) prompt(label string) string {
	fmt.Fprint(c.out, label)
	line, _ := c.readLine()
	return strings.TrimSpace(line)
}

func (c *CLI) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}
