package log

import "go.uber.org/zap"

var base = zap.NewNop()

// Init builds the process logger: production JSON encoding when prod,
// console development encoding otherwise.
func Init(prod bool) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if prod {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	base = l
	return l, nil
}

// L returns the process logger. Safe before Init; it is a nop then.
func L() *zap.Logger { return base }
