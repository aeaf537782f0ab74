package gamebyte

import "go.uber.org/zap"

// NewLogger builds the application logger: a human-readable development
// logger when debug is set, a JSON production logger otherwise. The zero
// dependency path is zap.NewNop(), which New uses when no logger is given.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
