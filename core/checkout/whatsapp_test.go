package checkout

import (
	"net/url"
	"strings"
	"testing"
)

func TestNewWhatsApp(t *testing.T) {
	cases := []struct {
		number string
		ok     bool
	}{
		{"+254708921377", true},
		{"254708921377", true},
		{" +254708921377 ", true},
		{"", false},
		{"+2547-089-213", false},
		{"12345", false},
		{"1234567890123456", false},
	}

	for _, c := range cases {
		_, err := NewWhatsApp(c.number)
		if c.ok && err != nil {
			t.Errorf("NewWhatsApp(%q): unexpected error %v", c.number, err)
		}
		if !c.ok && err == nil {
			t.Errorf("NewWhatsApp(%q): expected an error", c.number)
		}
	}
}

func TestDispatchBuildsLink(t *testing.T) {
	wa, err := NewWhatsApp("+254708921377")
	if err != nil {
		t.Fatal(err)
	}

	link, err := wa.Dispatch("🛒 *NEW ORDER*\n\nName: Jane & John")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(link, "https://wa.me/254708921377?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	// Spaces must be %20 rather than +, and the text must round-trip.
	if strings.Contains(link, "+") {
		t.Fatalf("link must not contain raw or form-encoded plus signs: %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatal(err)
	}
	if got := u.Query().Get("text"); got != "🛒 *NEW ORDER*\n\nName: Jane & John" {
		t.Fatalf("message did not round-trip through the link: %q", got)
	}
}
