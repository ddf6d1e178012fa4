package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/nftrelay/base/log"
)

// KeyRequestID is the context key and log field carrying the X-Request-ID
const KeyRequestID = "requestID"

// Ctx carries a context.Context together with a request scoped logger
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// From wraps a plain context, e.g. the one of an inbound *http.Request
func From(parent context.Context) Ctx {
	return Ctx{
		Context: parent,
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent.Context, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithRequestID(parent Ctx, requestID string) Ctx {
	return WithValue(parent, KeyRequestID, requestID)
}

// RequestID returns the request id stored by WithRequestID, or ""
func (c Ctx) RequestID() string {
	id, _ := c.Value(KeyRequestID).(string)
	return id
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent.Context, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}
