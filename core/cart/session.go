package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexedwards/scs/v2"
)

const sessionKey = "cart"

// FromSession restores the shopper's cart from the session store. A missing
// or undecodable entry yields an empty cart rather than an error: the cart is
// a convenience snapshot, not a system of record.
func FromSession(ctx context.Context, session *scs.SessionManager) State {
	b, ok := session.Get(ctx, sessionKey).([]byte)
	if !ok {
		return State{}
	}

	var s State
	if err := json.Unmarshal(b, &s); err != nil {
		return State{}
	}
	return s
}

// Save writes the cart back to the session. Only the items are serialized;
// the total is recomputed on load.
func Save(ctx context.Context, session *scs.SessionManager, s State) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serializing cart: %w", err)
	}

	session.Put(ctx, sessionKey, b)
	return nil
}
