// Package cli is the Kula terminal client: it signs in, shows the menu,
// places orders and follows the cart over the HTTP API.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/junaidrashid-git/kula-api/auth"
	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/ordercart"
)

// Options tune the runner from root flags.
type Options struct {
	BaseURL string
	Out     io.Writer
	Err     io.Writer
}

func (o *Options) defaults() {
	if o.BaseURL == "" {
		o.BaseURL = "http://localhost:8080"
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
}

type runner struct {
	opt     Options
	ctx     context.Context
	session models.Session
	client  *Client
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Out)
		return 2
	}

	r := &runner{opt: opt, ctx: ctx, session: models.LoggedOut()}
	ti, err := GetToken()
	if err != nil {
		fail(opt.Err, err.Error())
		return 1
	}
	token := ""
	if ti != nil {
		token = ti.Token
		r.session = ti.Session
		if ti.Source == "env" {
			r.session = models.Session{Authenticated: true}
		}
	}
	r.client = NewClient(opt.BaseURL, token)

	cmd, a := args[0], args[1:]
	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0
	case "login":
		return r.login(a)
	case "register":
		return r.register(a)
	case "logout":
		return r.logout()
	case "about":
		if !r.gate(auth.ScreenAbout) {
			return 1
		}
		renderAbout(opt.Out)
		return 0
	case "menu":
		return r.menu()
	case "order":
		return r.order(a)
	case "cart":
		return r.cart(a)
	case "profile":
		return r.profile()
	}

	fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `kula - order food from the terminal

Usage:
  kula [-api URL] <subcommand> [args]

Subcommands:
  login <email> <password>                       Sign in
  register <name> <email> <password> <confirm>   Create an account
  logout                                         Sign out
  menu                                           Show today's menu
  order [-qty N] [-location L] [-notes N] <item> Order an item by id or name
  cart [-watch]                                  Show the cart; -watch follows changes
  profile                                        Show your profile
  about                                          About Kula

Environment:
  KULA_API_URL   server address (default http://localhost:8080)
  KULA_TOKEN     use this token instead of ~/.kula/credentials.json
`)
}

// gate checks that the signed-in session may open screen.
func (r *runner) gate(screen auth.Screen) bool {
	if auth.CanReach(r.session, screen) {
		return true
	}
	if !r.session.Authenticated {
		fail(r.opt.Err, "Please sign in first: kula login <email> <password>")
	} else {
		fail(r.opt.Err, "This screen is not available for your account")
	}
	return false
}

func (r *runner) report(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		fail(r.opt.Err, "Your session has expired. Please sign in again.")
		return 1
	}
	fail(r.opt.Err, err.Error())
	return 1
}

func (r *runner) login(a []string) int {
	if len(a) != 2 {
		fail(r.opt.Err, "usage: kula login <email> <password>")
		return 2
	}
	res, err := r.client.Login(r.ctx, a[0], a[1])
	if err != nil {
		fail(r.opt.Err, err.Error())
		return 1
	}
	return r.signedIn(res)
}

func (r *runner) register(a []string) int {
	if len(a) != 4 {
		fail(r.opt.Err, "usage: kula register <name> <email> <password> <confirm>")
		return 2
	}
	res, err := r.client.Register(r.ctx, models.Credentials{
		Name: a[0], Email: a[1], Password: a[2], ConfirmPassword: a[3], Register: true,
	})
	if err != nil {
		fail(r.opt.Err, err.Error())
		return 1
	}
	return r.signedIn(res)
}

func (r *runner) signedIn(res AuthResult) int {
	if err := SetToken(res.Token, res.Session); err != nil {
		fail(r.opt.Err, "save credentials: "+err.Error())
		return 1
	}
	ok(r.opt.Out, res.Message)
	screens := make([]string, 0, len(res.Screens))
	for _, s := range res.Screens {
		screens = append(screens, string(s))
	}
	fmt.Fprintln(r.opt.Out, mutedStyle.Render("Available: "+strings.Join(screens, ", ")))
	return 0
}

func (r *runner) logout() int {
	if r.session.Authenticated {
		if err := r.client.Logout(r.ctx); err != nil {
			var apiErr *APIError
			if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
				return r.report(err)
			}
		}
	}
	if err := DeleteToken(); err != nil {
		fail(r.opt.Err, err.Error())
		return 1
	}
	ok(r.opt.Out, "You have been signed out successfully")
	return 0
}

func (r *runner) menu() int {
	if !r.gate(auth.ScreenMenu) {
		return 1
	}
	m, err := r.client.Menu(r.ctx)
	if err != nil {
		return r.report(err)
	}
	greeting := ""
	if p, err := r.client.Profile(r.ctx); err == nil {
		greeting = p.Profile.Greeting
	}
	renderMenu(r.opt.Out, greeting, m)
	return 0
}

func (r *runner) order(a []string) int {
	if !r.gate(auth.ScreenMenu) {
		return 1
	}
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	fs.SetOutput(r.opt.Err)
	qty := fs.Int("qty", 1, "quantity")
	location := fs.String("location", "", "delivery location")
	notes := fs.String("notes", "", "special instructions")
	if err := fs.Parse(a); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fail(r.opt.Err, "usage: kula order [-qty N] [-location L] [-notes N] <item>")
		return 2
	}
	want := strings.Join(fs.Args(), " ")

	m, err := r.client.Menu(r.ctx)
	if err != nil {
		return r.report(err)
	}
	item, found := findItem(m.Items, want)
	if !found {
		fail(r.opt.Err, "No menu item matches "+want)
		return 1
	}

	sel := ordercart.NewSelection(item, *qty, *location, *notes)
	fmt.Fprintf(r.opt.Out, "%s x %d  %s\n", item.Name, sel.Quantity(), accentStyle.Render("Total: "+money(sel.Total())))

	ack, err := sel.Confirm(r.ctx, r.client, r.session)
	if err != nil {
		return r.report(err)
	}
	ok(r.opt.Out, "Order placed successfully!")
	fmt.Fprintln(r.opt.Out, ack.Message())
	return 0
}

func findItem(items []models.MenuItem, want string) (models.MenuItem, bool) {
	for _, it := range items {
		if it.ID == want {
			return it, true
		}
	}
	for _, it := range items {
		if strings.EqualFold(it.Name, want) {
			return it, true
		}
	}
	return models.MenuItem{}, false
}

func (r *runner) cart(a []string) int {
	if !r.gate(auth.ScreenCart) {
		return 1
	}
	fs := flag.NewFlagSet("cart", flag.ContinueOnError)
	fs.SetOutput(r.opt.Err)
	watch := fs.Bool("watch", false, "keep the cart open and redraw on every change")
	if err := fs.Parse(a); err != nil {
		return 2
	}

	if !*watch {
		v, err := r.client.Cart(r.ctx)
		if err != nil {
			return r.report(err)
		}
		renderCart(r.opt.Out, v.Cart)
		if v.Error != "" {
			fail(r.opt.Err, v.Error)
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(r.ctx, os.Interrupt)
	defer stop()
	fmt.Fprintln(r.opt.Out, mutedStyle.Render("Watching your cart, Ctrl+C to stop."))
	err := r.client.WatchCart(ctx, func(cart models.Cart) error {
		renderCart(r.opt.Out, cart)
		return nil
	})
	if err != nil {
		return r.report(err)
	}
	return 0
}

func (r *runner) profile() int {
	if !r.gate(auth.ScreenProfile) {
		return 1
	}
	v, err := r.client.Profile(r.ctx)
	if err != nil {
		return r.report(err)
	}
	renderProfile(r.opt.Out, v.Profile)
	return 0
}
