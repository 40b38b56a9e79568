package internal

import "time"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	now    func() time.Time
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithNow overrides the clock used for "today" resolution. Defaults to
// time.Now.
func WithNow(now func() time.Time) Option {
	return func(a *application) {
		a.now = now
	}
}
