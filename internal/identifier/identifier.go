package identifier

import (
	"log"

	"github.com/jaevor/go-nanoid"
)

const (
	PaymentPrefix    = "pay_"
	RefundPrefix     = "rfnd_"
	OrderPrefix      = "order_"
	WebhookLogPrefix = "whl_"
)

var generate func() string

func init() {
	gen, err := nanoid.CustomASCII("0123456789abcdefghijklmnopqrstuvwxyz", 16)
	if err != nil {
		log.Fatalf("failed to init id generator: %v", err)
	}
	generate = gen
}

// New returns an opaque identifier with the given prefix, e.g. pay_k2j9x...
func New(prefix string) string {
	return prefix + generate()
}
