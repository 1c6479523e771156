package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/jkarimi/fanaka-furniture/core/cart"
)

// Customer is the contact block the shopper fills in at checkout. It lives
// with the form, not the cart; it is reset after a successful submission.
type Customer struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// Trim strips surrounding whitespace so that a blank-but-padded field is
// caught by validation.
func (c *Customer) Trim() {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
}

// Message renders the order summary sent over the messaging channel: header,
// order reference, customer block, one line per item, total, and the
// submission time. The layout is what the shop staff read on their phone, so
// it stays plain text with WhatsApp bold markers.
func Message(snap cart.Snapshot, cust Customer, ref string, at time.Time) string {
	var b strings.Builder

	b.WriteString("🛒 *NEW ORDER*\n\n")
	fmt.Fprintf(&b, "Order Ref: %s\n\n", ref)

	b.WriteString("👤 *Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", cust.Name)
	fmt.Fprintf(&b, "Phone: %s\n", cust.Phone)
	if cust.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", cust.Email)
	}

	b.WriteString("\n📦 *Order Items:*\n")
	for _, it := range snap.Items {
		fmt.Fprintf(&b, "• %s x%d - %s\n", it.Name, it.Quantity, FormatKES(it.Price*it.Quantity))
	}

	fmt.Fprintf(&b, "\n💰 *Total: %s*\n\n", FormatKES(snap.Total))
	fmt.Fprintf(&b, "📅 Order Date: %s", at.Format("02 Jan 2006 15:04"))

	return b.String()
}
