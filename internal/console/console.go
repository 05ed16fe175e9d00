// Package console is the interactive admin menu used to set up and inspect
// the market database.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amirasaad/market/pkg/domain"
	"github.com/amirasaad/market/pkg/money"
	"github.com/amirasaad/market/pkg/service/catalog"
	"github.com/amirasaad/market/pkg/validation"
	"github.com/fatih/color"
)

// ErrExit is returned by a command that ends the session.
var ErrExit = errors.New("exit")

// errEndOfInput ends the session when input runs out mid-command.
var errEndOfInput = errors.New("end of input")

type command struct {
	key   string
	title string
	run   func(ctx context.Context) error
}

// Console reads menu choices from in and writes to out.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	catalog *catalog.Service
	migrate func() error
	sample  []validation.NewItem

	title, ok, warn, fail *color.Color
	commands              []command
}

// New builds a console. migrate applies the schema; sample is the item set
// offered by "Add sample items".
func New(
	in io.Reader,
	out io.Writer,
	svc *catalog.Service,
	migrate func() error,
	sample []validation.NewItem,
	useColor bool,
) *Console {
	c := &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: svc,
		migrate: migrate,
		sample:  sample,
		title:   color.New(color.FgCyan, color.Bold),
		ok:      color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
	}
	for _, col := range []*color.Color{c.title, c.ok, c.warn, c.fail} {
		if useColor {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	c.commands = []command{
		{"1", "Create database tables", c.createTables},
		{"2", "Add sample items", c.addSampleItems},
		{"3", "Show all items", c.showItems},
		{"4", "Add custom item", c.addItem},
		{"5", "Delete item", c.deleteItem},
		{"6", "View users and ownership", c.showUsers},
		{"7", "Assign item owner", c.assignOwner},
		{"8", "Verify item ownership", c.verifyOwnership},
		{"9", "Delete user", c.deleteUser},
		{"0", "Exit", func(context.Context) error { return ErrExit }},
	}
	return c
}

// Run shows the menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.menu()
		choice, ok := c.prompt("Enter your choice")
		if !ok {
			return c.in.Err()
		}
		cmd, found := c.find(choice)
		if !found {
			c.fail.Fprintln(c.out, "Invalid choice. Please try again.")
			continue
		}
		err := cmd.run(ctx)
		if errors.Is(err, errEndOfInput) {
			return c.in.Err()
		}
		if errors.Is(err, ErrExit) {
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		}
		if err != nil {
			c.report(err)
		}
	}
}

func (c *Console) menu() {
	fmt.Fprintln(c.out)
	c.title.Fprintln(c.out, "=== Market Admin ===")
	for _, cmd := range c.commands {
		fmt.Fprintf(c.out, "%s. %s\n", cmd.key, cmd.title)
	}
}

func (c *Console) find(key string) (command, bool) {
	for _, cmd := range c.commands {
		if cmd.key == key {
			return cmd, true
		}
	}
	return command{}, false
}

// prompt prints label and reads one trimmed line. ok is false at end of input.
func (c *Console) prompt(label string) (line string, ok bool) {
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// ask prompts for each label in turn. It fails with errEndOfInput if input
// ends before every answer is read.
func (c *Console) ask(labels ...string) ([]string, error) {
	answers := make([]string, len(labels))
	for i, label := range labels {
		line, ok := c.prompt(label)
		if !ok {
			return nil, errEndOfInput
		}
		answers[i] = line
	}
	return answers, nil
}

func (c *Console) confirm(label string) (bool, error) {
	answer, err := c.ask(label + " (y/n)")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer[0], "y"), nil
}

func (c *Console) report(err error) {
	var errs validation.Errors
	switch {
	case errors.As(err, &errs):
		for _, fe := range errs {
			c.fail.Fprintf(c.out, "  %s: %s\n", fe.Field, fe.Reason)
		}
	case errors.Is(err, domain.ErrNotFound):
		c.fail.Fprintf(c.out, "Not found: %v\n", err)
	default:
		c.fail.Fprintf(c.out, "Error: %v\n", err)
	}
}

func (c *Console) createTables(context.Context) error {
	if err := c.migrate(); err != nil {
		return err
	}
	c.ok.Fprintln(c.out, "Database tables are up to date.")
	return nil
}

func (c *Console) addSampleItems(ctx context.Context) error {
	n, err := c.catalog.CountItems(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		c.warn.Fprintf(c.out, "The store already has %d item(s).\n", n)
		yes, err := c.confirm("Add sample items anyway?")
		if err != nil || !yes {
			fmt.Fprintln(c.out, "Cancelled.")
			return err
		}
	}
	res, err := c.catalog.SeedItems(ctx, c.sample)
	if err != nil {
		return err
	}
	for _, name := range res.Added {
		c.ok.Fprintf(c.out, "Added %s\n", name)
	}
	for _, name := range res.Skipped {
		c.warn.Fprintf(c.out, "Skipped %s (name or barcode already exists)\n", name)
	}
	return nil
}

func (c *Console) showItems(ctx context.Context) error {
	entries, err := c.catalog.ListItems(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		c.warn.Fprintln(c.out, "No items in the store.")
		return nil
	}
	fmt.Fprintf(c.out, "%-30s %-12s %10s  %s\n", "NAME", "BARCODE", "PRICE", "OWNER")
	for _, e := range entries {
		owner := "-"
		if e.Owner != nil {
			owner = e.Owner.Username
		}
		fmt.Fprintf(c.out, "%-30s %-12s %10s  %s\n", e.Item.Name, e.Item.Barcode, e.Item.Price, owner)
	}
	return nil
}

func (c *Console) addItem(ctx context.Context) error {
	in, err := c.ask("Name", "Barcode (12 digits)", "Description", "Price")
	if err != nil {
		return err
	}
	price, err := money.Parse(in[3])
	if err != nil {
		return validation.Errors{{Field: "price", Reason: "Price must be a number."}}
	}
	it, err := c.catalog.AddItem(ctx, validation.NewItem{
		Name:        in[0],
		Barcode:     in[1],
		Description: in[2],
		Price:       price,
	})
	if err != nil {
		return err
	}
	c.ok.Fprintf(c.out, "Added %s (%s) for %s\n", it.Name, it.ID, it.Price)
	return nil
}

func (c *Console) deleteItem(ctx context.Context) error {
	ref, err := c.ask("Item name or ID")
	if err != nil {
		return err
	}
	it, err := c.catalog.FindItem(ctx, ref[0])
	if err != nil {
		return err
	}
	yes, err := c.confirm(fmt.Sprintf("Delete %s?", it.Name))
	if err != nil || !yes {
		fmt.Fprintln(c.out, "Cancelled.")
		return err
	}
	if _, err := c.catalog.DeleteItem(ctx, it.ID.String()); err != nil {
		return err
	}
	c.ok.Fprintf(c.out, "Deleted %s\n", it.Name)
	return nil
}

func (c *Console) showUsers(ctx context.Context) error {
	profiles, err := c.catalog.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		c.warn.Fprintln(c.out, "No users registered.")
		return nil
	}
	for _, p := range profiles {
		c.title.Fprintf(c.out, "%s <%s>  budget %s\n", p.User.Username, p.User.Email, p.User.Budget)
		if len(p.Items) == 0 {
			fmt.Fprintln(c.out, "  (no items)")
		}
		for _, it := range p.Items {
			fmt.Fprintf(c.out, "  - %s (%s)\n", it.Name, it.Price)
		}
	}
	return nil
}

func (c *Console) assignOwner(ctx context.Context) error {
	refs, err := c.ask("Item name or ID", "Username or ID (empty returns it to the market)")
	if err != nil {
		return err
	}
	userRef := refs[1]
	it, err := c.catalog.AssignOwner(ctx, refs[0], userRef)
	if err != nil {
		return err
	}
	if it.OwnerID == nil {
		c.ok.Fprintf(c.out, "%s is back on the market.\n", it.Name)
		return nil
	}
	c.ok.Fprintf(c.out, "%s now belongs to %s.\n", it.Name, userRef)
	return nil
}

func (c *Console) verifyOwnership(ctx context.Context) error {
	refs, err := c.ask("Item name or ID", "Username or ID")
	if err != nil {
		return err
	}
	itemRef, userRef := refs[0], refs[1]
	owned, err := c.catalog.VerifyOwnership(ctx, itemRef, userRef)
	if err != nil {
		return err
	}
	if owned {
		c.ok.Fprintf(c.out, "%s owns %s.\n", userRef, itemRef)
	} else {
		c.warn.Fprintf(c.out, "%s does not own %s.\n", userRef, itemRef)
	}
	return nil
}

func (c *Console) deleteUser(ctx context.Context) error {
	refs, err := c.ask("Username or ID")
	if err != nil {
		return err
	}
	userRef := refs[0]
	yes, err := c.confirm(fmt.Sprintf("Delete %s and return their items to the market?", userRef))
	if err != nil || !yes {
		fmt.Fprintln(c.out, "Cancelled.")
		return err
	}
	released, err := c.catalog.DeleteUser(ctx, userRef)
	if err != nil {
		return err
	}
	c.ok.Fprintf(c.out, "Deleted %s; %d item(s) returned to the market.\n", userRef, released)
	return nil
}
