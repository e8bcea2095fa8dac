package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/profile"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// AboutText is shown by `kula about`.
const AboutText = `Welcome to KULA, your trusted food ordering app.

We are committed to providing a safe and secure experience for all our users.
All transactions are fully encrypted and monitored to prevent fraud or unauthorized access.

With KULA, you can enjoy your favorite meals worry-free. Your safety is our top priority!

🔒 Safe & Secure      All payments are secure and protected against fraud.
💵 No Money Robbery   Your money is safe. You pay only for the food you order.
✅ Reliable Service   We ensure every order is tracked until it reaches you.

KULA App © 2026. All rights reserved.`

func ok(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render("✔ "+msg))
}

func fail(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render("✖ "+msg))
}

func panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, panelStyle.Render(strings.Join(lines, "\n")))
}

func money(d interface{ StringFixed(int32) string }) string {
	return "$" + d.StringFixed(2)
}

func renderMenu(w io.Writer, greeting string, m Menu) {
	lines := []string{titleStyle.Render(m.Title)}
	if greeting != "" {
		lines = append(lines, mutedStyle.Render("Hi "+greeting+", what are you having today?"))
	}
	lines = append(lines, "")
	if len(m.Items) == 0 {
		lines = append(lines, mutedStyle.Render("No food items available right now."))
	}
	for _, item := range m.Items {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			titleStyle.Render(item.Name),
			accentStyle.Render(item.DisplayPrice()),
			mutedStyle.Render("["+item.ID+"]")))
		if item.Description != "" {
			lines = append(lines, "  "+item.Description)
		}
	}
	panel(w, lines)
	if m.Error != "" {
		fail(w, m.Error)
	}
}

func renderCart(w io.Writer, cart models.Cart) {
	lines := []string{titleStyle.Render("🛒 My Cart"), ""}
	if cart.Empty() {
		lines = append(lines, mutedStyle.Render("Your cart is empty."))
	}
	for _, l := range cart.Lines {
		lines = append(lines, fmt.Sprintf("%d x %s  %s", l.Quantity, titleStyle.Render(l.Name), accentStyle.Render(money(l.LineTotal()))))
		if l.Location != "" {
			lines = append(lines, mutedStyle.Render("  Deliver to: "+l.Location))
		}
		if l.Notes != "" {
			lines = append(lines, mutedStyle.Render("  Notes: "+l.Notes))
		}
	}
	lines = append(lines, "",
		fmt.Sprintf("Subtotal      %s", money(cart.Subtotal)),
		fmt.Sprintf("Delivery fee  %s", money(cart.DeliveryFee)),
		titleStyle.Render(fmt.Sprintf("Total         %s", money(cart.Total))),
	)
	panel(w, lines)
}

func renderProfile(w io.Writer, v profile.View) {
	lines := []string{
		titleStyle.Render(v.Name),
	}
	if v.Username != "" {
		lines = append(lines, mutedStyle.Render("@"+v.Username))
	}
	lines = append(lines,
		"",
		"Email  "+v.Email,
		"Role   "+v.Role,
		"",
		v.Description,
	)
	panel(w, lines)
}

func renderAbout(w io.Writer) {
	panel(w, []string{titleStyle.Render("About KULA"), "", AboutText})
}
