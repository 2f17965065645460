package session

import (
	"fmt"

	"github.com/gabapcia/walletsync/internal/pkg/validator"
)

// RequestKind selects the lifecycle operation of a Request.
type RequestKind uint8

const (
	KindStart RequestKind = iota + 1
	KindStop
)

// String returns the request kind name.
func (k RequestKind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindStop:
		return "stop"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Request is one lifecycle message processed by the session worker.
type Request struct {
	Kind     RequestKind `validate:"oneof=1 2"`
	WalletID string      `validate:"required_if=Kind 1,walletid"`
	Password string
}

// StartRequest builds a request that opens walletID and starts refreshing it.
func StartRequest(walletID, password string) Request {
	return Request{Kind: KindStart, WalletID: walletID, Password: password}
}

// StopRequest builds a request that tears down the active session.
func StopRequest() Request {
	return Request{Kind: KindStop}
}

// Validate checks the request fields.
func (r Request) Validate() error {
	return validator.Validate(r)
}
