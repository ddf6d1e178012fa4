package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/x-xyz/nftrelay/base/log"
)

// Exit reports how a goroutine started by RecoverableGo finished.
// Panic is nil unless f panicked.
type Exit struct {
	Err   error
	Panic interface{}
	Stack []byte
}

// Panicked reports whether the goroutine ended with a recovered panic
func (e Exit) Panicked() bool {
	return e.Panic != nil
}

func (e Exit) Error() string {
	if e.Panicked() {
		return fmt.Sprintf("panic: %v", e.Panic)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

type options struct {
	name           string
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(p interface{}, stack []byte)
}

type Option func(*options)

// WithName tags the panic log line
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func WithBeforeStart(f func()) Option {
	return func(o *options) {
		o.beforeStart = f
	}
}

func WithAfterEnded(f func()) Option {
	return func(o *options) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(p interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f in a new goroutine. The returned channel receives
// exactly one Exit and is then closed.
func RecoverableGo(f func() error, opts ...Option) <-chan Exit {
	o := options{name: "goroutine"}
	for _, opt := range opts {
		opt(&o)
	}

	exitChan := make(chan Exit, 1)

	go func() {
		var exit Exit
		defer func() {
			if o.afterEnded != nil {
				o.afterEnded()
			}

			if p := recover(); p != nil {
				stack := debug.Stack()

				log.Log().WithFields(log.Fields{
					"name":  o.name,
					"err":   p,
					"stack": string(stack),
				}).Error("panic")

				if o.afterRecovered != nil {
					o.afterRecovered(p, stack)
				}
				exit = Exit{Panic: p, Stack: stack}
			}

			exitChan <- exit
			close(exitChan)
		}()

		if o.beforeStart != nil {
			o.beforeStart()
		}

		exit.Err = f()
	}()

	return exitChan
}
