package playstore

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

// priceMicros converts the store's micro-unit prices.
const priceMicros = 1e6

// App fetches a listing's details page.
func (p *Provider) App(ctx context.Context, opts playstore.AppOptions) (*playstore.App, error) {
	if err := requireAppID(opts.AppID); err != nil {
		return nil, err
	}
	locale := opts.Locale.WithDefaults(p.locale)

	doc, err := p.fetchDetails(ctx, "app", opts.AppID, locale)
	if err != nil {
		return nil, err
	}
	return parseDetails(doc, opts.AppID, p.client.URL(detailsPath, detailsQuery(opts.AppID, locale)))
}

func detailsQuery(appID string, locale playstore.Locale) url.Values {
	return url.Values{"id": {appID}, "hl": {locale.Lang}, "gl": {locale.Country}}
}

func (p *Provider) fetchDetails(ctx context.Context, op, appID string, locale playstore.Locale) (*goquery.Document, error) {
	body, err := p.client.get(ctx, op, detailsPath, detailsQuery(appID, locale))
	if err != nil {
		return nil, err
	}
	return loadDocument(body)
}

// parseDetails maps the ds:5 block, falling back to the JSON-LD summary when
// the page carries no script data.
func parseDetails(doc *goquery.Document, appID, pageURL string) (*playstore.App, error) {
	data, err := extractInitData(doc).decode("ds:5")
	if err == nil {
		if base := dig(data, 1, 2); base != nil {
			return mapDetails(base, appID, pageURL), nil
		}
	}
	app, ldErr := parseLinkedData(doc, appID, pageURL)
	if ldErr != nil {
		if err == nil {
			err = fmt.Errorf("%w: ds:5 has no listing", playstore.ErrUnexpectedPayload)
		}
		return nil, err
	}
	return app, nil
}

func mapDetails(base interface{}, appID, pageURL string) *playstore.App {
	descriptionHTML := sanitizeDescription(digString(base, 72, 0, 1))
	price := digFloat(base, 57, 0, 0, 0, 0, 1, 0, 0) / priceMicros

	app := &playstore.App{
		AppID:            appID,
		URL:              pageURL,
		Title:            digString(base, 0, 0),
		Summary:          digString(base, 73, 0, 1),
		Description:      plainText(descriptionHTML),
		DescriptionHTML:  descriptionHTML,
		Installs:         digString(base, 13, 0),
		MinInstalls:      digInt(base, 13, 1),
		MaxInstalls:      digInt(base, 13, 2),
		Score:            digFloat(base, 51, 0, 1),
		ScoreText:        digString(base, 51, 0, 0),
		Ratings:          digInt(base, 51, 2, 1),
		Reviews:          digInt(base, 51, 3, 1),
		Price:            price,
		Free:             price == 0,
		Currency:         digString(base, 57, 0, 0, 0, 0, 1, 0, 1),
		PriceText:        digString(base, 57, 0, 0, 0, 0, 1, 0, 2),
		Available:        digBool(base, 18, 0),
		OffersIAP:        digBool(base, 19, 0),
		IAPRange:         digString(base, 19, 0),
		AndroidVersion:   digString(base, 140, 1, 1, 0, 0, 1),
		Developer:        digString(base, 68, 0),
		DeveloperID:      developerIDFromLink(digString(base, 68, 1, 4, 2)),
		DeveloperEmail:   digString(base, 69, 1, 0),
		DeveloperWebsite: digString(base, 69, 0, 5, 2),
		DeveloperAddress: digString(base, 69, 2, 0),
		PrivacyPolicy:    digString(base, 99, 0, 5, 2),
		Genre:            digString(base, 79, 0, 0, 0),
		GenreID:          digString(base, 79, 0, 0, 2),
		Icon:             digString(base, 95, 0, 3, 2),
		HeaderImage:      digString(base, 96, 0, 3, 2),
		Video:            digString(base, 100, 0, 0, 3, 2),
		ContentRating:    digString(base, 9, 0),
		AdSupported:      digBool(base, 48),
		Released:         digString(base, 10, 0),
		Updated:          digInt(base, 145, 0, 1, 0) * 1000,
		Version:          digString(base, 140, 0, 0, 0),
		RecentChanges:    digString(base, 144, 1, 1),
	}
	if app.AndroidVersion == "" {
		app.AndroidVersion = "VARY"
	}
	if app.Version == "" {
		app.Version = "VARY"
	}
	for _, shot := range digArray(base, 78, 0) {
		if src := digString(shot, 3, 2); src != "" {
			app.Screenshots = append(app.Screenshots, src)
		}
	}
	return app
}

// developerIDFromLink extracts the id query value from a developer page link.
func developerIDFromLink(link string) string {
	if _, id, ok := strings.Cut(link, "id="); ok {
		if unescaped, err := url.QueryUnescape(id); err == nil {
			return unescaped
		}
		return id
	}
	return ""
}

// parseLinkedData reads the schema.org SoftwareApplication block.
func parseLinkedData(doc *goquery.Document, appID, pageURL string) (*playstore.App, error) {
	var app *playstore.App
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var ld map[string]interface{}
		if err := sonic.UnmarshalString(s.Text(), &ld); err != nil {
			return true
		}
		if ldString(ld, "@type") != "SoftwareApplication" {
			return true
		}
		app = linkedDataApp(ld, appID, pageURL)
		return false
	})
	if app == nil {
		return nil, fmt.Errorf("%w: no listing data on page", playstore.ErrUnexpectedPayload)
	}
	return app, nil
}

func linkedDataApp(ld map[string]interface{}, appID, pageURL string) *playstore.App {
	app := &playstore.App{
		AppID:         appID,
		URL:           pageURL,
		Title:         ldString(ld, "name"),
		Description:   plainText(ldString(ld, "description")),
		Icon:          ldString(ld, "image"),
		Genre:         ldString(ld, "applicationCategory"),
		ContentRating: ldString(ld, "contentRating"),
	}
	if author, ok := ld["author"].(map[string]interface{}); ok {
		app.Developer = ldString(author, "name")
	}
	if rating, ok := ld["aggregateRating"].(map[string]interface{}); ok {
		app.Score = ldFloat(rating, "ratingValue")
		app.ScoreText = ldString(rating, "ratingValue")
		app.Ratings = int64(ldFloat(rating, "ratingCount"))
	}
	if offers, ok := ld["offers"].([]interface{}); ok && len(offers) > 0 {
		if offer, ok := offers[0].(map[string]interface{}); ok {
			app.Price = ldFloat(offer, "price")
			app.Currency = ldString(offer, "priceCurrency")
		}
	}
	app.Free = app.Price == 0
	return app
}

func ldString(m map[string]interface{}, key string) string {
	return digString([]interface{}{m[key]}, 0)
}

func ldFloat(m map[string]interface{}, key string) float64 {
	return digFloat([]interface{}{m[key]}, 0)
}
