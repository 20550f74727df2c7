// Package playstore defines the records, request options and taxonomy of
// the app store, and the Scraper interface the HTTP layer talks to.
//
// Records:
//   - App: a listing, either full detail or a summary from a listing page
//   - Review / ReviewPage: user reviews with continuation tokens
//   - Permission: declared permissions grouped by type
//   - DataSafety: shared/collected data and security practices
//   - Category: the fixed store taxonomy
//
// Every option struct embeds Locale; empty locales are completed with
// Locale.WithDefaults before a request is sent.
//
// Example Usage:
//
//	app, err := scraper.App(ctx, playstore.AppOptions{AppID: "org.wikipedia"})
//	if errors.Is(err, playstore.ErrNotFound) {
//		// no such listing
//	}
package playstore
