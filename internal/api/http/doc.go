/*
Package http exposes the store scraper as a JSON REST API.

Every route forwards its query parameters to one playstore.Scraper call,
rewrites the result's links to point back into the API and returns JSON.
List routes carry prev/next links; failures are rendered by ErrorHandler
as 400 {"message": ...}.

	h := http.NewHandlers(scraper, "/api", logger)
	api := router.Group("/api", http.ErrorHandler())
	h.Register(api)
*/
package http
