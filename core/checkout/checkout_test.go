package checkout

import (
	"strings"
	"testing"
	"time"

	"github.com/jkarimi/fanaka-furniture/core/cart"
)

func TestFormatKES(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{0, "KES 0"},
		{999, "KES 999"},
		{5000, "KES 5,000"},
		{15000, "KES 15,000"},
		{1250000, "KES 1,250,000"},
	}

	for _, c := range cases {
		if got := FormatKES(c.amount); got != c.want {
			t.Errorf("FormatKES(%d) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestMessage(t *testing.T) {
	var s cart.State
	if err := s.Add(cart.Item{ProductID: "p1", Name: "Chair", Price: 5000}, 3); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(cart.Item{ProductID: "p2", Name: "Table", Price: 12000}, 1); err != nil {
		t.Fatal(err)
	}

	cust := Customer{Name: "Jane", Phone: "0700000000"}
	at := time.Date(2023, time.March, 4, 15, 30, 0, 0, time.UTC)

	msg := Message(s.Snapshot(), cust, "A1B2C3D4", at)

	for _, want := range []string{
		"🛒 *NEW ORDER*",
		"Order Ref: A1B2C3D4",
		"Name: Jane",
		"Phone: 0700000000",
		"• Chair x3 - KES 15,000",
		"• Table x1 - KES 12,000",
		"💰 *Total: KES 27,000*",
		"📅 Order Date: 04 Mar 2023 15:30",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message is missing %q:\n%s", want, msg)
		}
	}

	if strings.Contains(msg, "Email:") {
		t.Errorf("blank email must be omitted entirely:\n%s", msg)
	}
}

func TestMessageWithEmail(t *testing.T) {
	var s cart.State
	if err := s.Add(cart.Item{ProductID: "p1", Name: "Chair", Price: 5000}, 1); err != nil {
		t.Fatal(err)
	}

	cust := Customer{Name: "Jane", Phone: "0700000000", Email: "jane@example.com"}
	msg := Message(s.Snapshot(), cust, "REF", time.Now())

	if !strings.Contains(msg, "Email: jane@example.com") {
		t.Errorf("expected email line in message:\n%s", msg)
	}
}

func TestCustomerTrim(t *testing.T) {
	c := Customer{Name: "  Jane  ", Phone: "\t0700000000\n", Email: " "}
	c.Trim()

	if c.Name != "Jane" || c.Phone != "0700000000" || c.Email != "" {
		t.Fatalf("unexpected trim result: %+v", c)
	}
}
