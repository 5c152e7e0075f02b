// Package app implements the mileage scheduler: a weekly journey grid backed
// by a per-user journey store, with site/postcode/distance lookups and
// mileage-report exports.
package app

// App holds the wired dependencies for all handlers.
type App struct {
	Store EventStore
	Users UserStore
	Cfg   *Config
}
