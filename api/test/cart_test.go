package test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jkarimi/fanaka-furniture/core/cart"
	"github.com/jkarimi/fanaka-furniture/core/checkout"
	"github.com/jkarimi/fanaka-furniture/core/product"
)

type cartTest struct {
	*TestEnv
}

func TestCartCheckout(t *testing.T) {
	env, err := NewTestEnv(t, "cart_test")
	if err != nil {
		t.Fatalf("initializing test env: %v", err)
	}

	rt := &cartTest{env}

	rt.Login(t)
	var chair product.Product
	rt.do(t, http.MethodPost, "/products", map[string]any{
		"name":     "Chair",
		"category": "Seating",
		"price":    5000,
	}, http.StatusCreated, &chair)
	rt.Logout(t)

	// Empty cart is empty.
	snap := rt.showCart(t)
	if len(snap.Items) != 0 || snap.Total != 0 {
		t.Fatalf("expected an empty cart, got %+v", snap)
	}

	// Checkout on an empty cart is rejected before any dispatch.
	rt.do(t, http.MethodPost, "/checkout", map[string]any{
		"name": "Jane", "phone": "0700000000",
	}, http.StatusUnprocessableEntity, nil)

	// Adding the same product twice merges quantities.
	rt.addItem(t, chair.ID, 1)
	snap = rt.addItem(t, chair.ID, 2)
	if len(snap.Items) != 1 || snap.Items[0].Quantity != 3 || snap.Total != 15000 {
		t.Fatalf("expected one line with quantity 3 and total 15000, got %+v", snap)
	}

	// A negative quantity rejects without touching the cart.
	rt.do(t, http.MethodPut, "/cart/items", map[string]any{
		"productId": chair.ID, "quantity": -1,
	}, http.StatusUnprocessableEntity, nil)
	if got := rt.showCart(t); got.Total != 15000 {
		t.Fatalf("rejected add changed the cart: %+v", got)
	}

	// Missing customer name is rejected and leaves the cart alone.
	rt.do(t, http.MethodPost, "/checkout", map[string]any{
		"name": "  ", "phone": "0700000000",
	}, http.StatusUnprocessableEntity, nil)
	if got := rt.showCart(t); got.Total != 15000 {
		t.Fatalf("rejected checkout changed the cart: %+v", got)
	}

	// A refused hand-off surfaces as a retryable error; the cart survives.
	rt.Dispatcher.Fail = true
	rt.do(t, http.MethodPost, "/checkout", map[string]any{
		"name": "Jane", "phone": "0700000000",
	}, http.StatusBadGateway, nil)
	if got := rt.showCart(t); got.Total != 15000 {
		t.Fatalf("failed dispatch must keep the cart intact: %+v", got)
	}
	rt.Dispatcher.Fail = false

	// The happy path: link carries the formatted order, cart resets.
	var sub checkout.Submission
	rt.do(t, http.MethodPost, "/checkout", map[string]any{
		"name": "Jane", "phone": "0700000000",
	}, http.StatusOK, &sub)

	u, err := url.Parse(sub.URL)
	if err != nil {
		t.Fatal(err)
	}
	if u.Host != "wa.me" || u.Path != "/254708921377" {
		t.Fatalf("unexpected dispatch link: %s", sub.URL)
	}

	text := u.Query().Get("text")
	for _, want := range []string{
		"Chair x3 - KES 15,000",
		"Total: KES 15,000",
		"Name: Jane",
		"Order Ref: " + sub.Ref,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("dispatched message is missing %q:\n%s", want, text)
		}
	}

	if got := rt.showCart(t); len(got.Items) != 0 || got.Total != 0 {
		t.Fatalf("expected the cart to reset after checkout, got %+v", got)
	}

	rt.waitForOrderLog(t, sub.Ref)
}

func TestCartOperations(t *testing.T) {
	env, err := NewTestEnv(t, "cartops_test")
	if err != nil {
		t.Fatalf("initializing test env: %v", err)
	}

	rt := &cartTest{env}

	rt.Login(t)
	var chair, table product.Product
	rt.do(t, http.MethodPost, "/products", map[string]any{
		"name": "Chair", "category": "Seating", "price": 5000,
	}, http.StatusCreated, &chair)
	rt.do(t, http.MethodPost, "/products", map[string]any{
		"name": "Table", "category": "Tables", "price": 12000,
	}, http.StatusCreated, &table)
	rt.Logout(t)

	rt.addItem(t, chair.ID, 2)
	snap := rt.addItem(t, table.ID, 1)
	if len(snap.Items) != 2 || snap.Total != 22000 {
		t.Fatalf("unexpected cart after adds: %+v", snap)
	}

	// Absolute quantity set.
	var out cart.Snapshot
	rt.do(t, http.MethodPut, "/cart/items/"+chair.ID, map[string]any{"quantity": 1}, http.StatusOK, &out)
	if out.Total != 17000 {
		t.Fatalf("expected total 17000 after quantity set, got %+v", out)
	}

	// Setting a non-positive quantity removes the line entirely.
	rt.do(t, http.MethodPut, "/cart/items/"+chair.ID, map[string]any{"quantity": -1}, http.StatusOK, &out)
	if len(out.Items) != 1 || out.Items[0].ProductID != table.ID {
		t.Fatalf("expected only the table to remain, got %+v", out)
	}

	// Deleting an absent item is a no-op, twice.
	rt.do(t, http.MethodDelete, "/cart/items/"+chair.ID, nil, http.StatusOK, &out)
	rt.do(t, http.MethodDelete, "/cart/items/"+chair.ID, nil, http.StatusOK, &out)
	if len(out.Items) != 1 || out.Total != 12000 {
		t.Fatalf("deleting an absent item changed the cart: %+v", out)
	}

	// Manual clear.
	rt.do(t, http.MethodDelete, "/cart", nil, http.StatusNoContent, nil)
	if got := rt.showCart(t); len(got.Items) != 0 || got.Total != 0 {
		t.Fatalf("expected an empty cart after clear, got %+v", got)
	}
}

func (rt *cartTest) showCart(t *testing.T) cart.Snapshot {
	t.Helper()

	var snap cart.Snapshot
	rt.do(t, http.MethodGet, "/cart", nil, http.StatusOK, &snap)
	return snap
}

func (rt *cartTest) addItem(t *testing.T, productID string, qty int) cart.Snapshot {
	t.Helper()

	var snap cart.Snapshot
	body := map[string]any{"productId": productID, "quantity": qty}
	rt.do(t, http.MethodPut, "/cart/items", body, http.StatusOK, &snap)
	return snap
}

// waitForOrderLog polls the admin order list until the background writer has
// flushed the dispatched order.
func (rt *cartTest) waitForOrderLog(t *testing.T, ref string) {
	t.Helper()

	rt.Login(t)
	defer rt.Logout(t)

	deadline := time.Now().Add(3 * time.Second)
	for {
		var logs []checkout.Log
		rt.do(t, http.MethodGet, "/orders", nil, http.StatusOK, &logs)
		for _, l := range logs {
			if l.Ref == ref {
				if l.Total != 15000 {
					t.Fatalf("order log has the wrong total: %+v", l)
				}
				return
			}
		}

		if time.Now().After(deadline) {
			t.Fatalf("order log[%s] never appeared", ref)
		}
		time.Sleep(50 * time.Millisecond)
	}
}
