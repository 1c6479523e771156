package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Dispatcher hands a formatted order message to the external channel and
// returns the link the shopper's browser should open. Delivery itself is
// fire-and-forget: nothing downstream confirms the message arrived.
type Dispatcher interface {
	Dispatch(message string) (string, error)
}

type WhatsApp struct {
	number string
}

// NewWhatsApp validates the shop's recipient number once, at startup, so a
// misconfigured deployment fails before the first checkout.
func NewWhatsApp(number string) (*WhatsApp, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(number), "+")
	if digits == "" {
		return nil, errors.New("whatsapp number is not configured")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("whatsapp number [%s] contains non-digit characters", number)
		}
	}
	if len(digits) < 10 || len(digits) > 15 {
		return nil, fmt.Errorf("whatsapp number [%s] is not a plausible international number", number)
	}

	return &WhatsApp{number: digits}, nil
}

func (wa *WhatsApp) Dispatch(message string) (string, error) {
	// wa.me expects %20 for spaces, not the + of form encoding.
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", wa.number, text), nil
}
