package playstore

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

const (
	appAnchorXPath     = `//a[contains(@href, "/store/apps/details?id=")]`
	clusterAnchorXPath = `//a[contains(@href, "/store/apps/collection/cluster")]`
)

var (
	numericDevID = regexp.MustCompile(`^\d+$`)
	priceLabel   = regexp.MustCompile(`^(\p{Lu}{0,2}[^\p{L}\d\s.,])\s?(\d+(?:[.,]\d+)?)$`)
)

// Search runs a store search.
func (p *Provider) Search(ctx context.Context, opts playstore.SearchOptions) ([]*playstore.App, error) {
	if opts.Term == "" {
		return nil, fmt.Errorf("%w: term missing", playstore.ErrInvalidOption)
	}
	num := opts.Num
	if num <= 0 {
		num = playstore.DefaultSearchNum
	}
	if num > playstore.MaxSearchNum {
		return nil, fmt.Errorf("%w: the number of results can't exceed %d", playstore.ErrInvalidOption, playstore.MaxSearchNum)
	}
	locale := opts.Locale.WithDefaults(p.locale)

	query := url.Values{
		"q":     {opts.Term},
		"c":     {"apps"},
		"price": {strconv.Itoa(int(opts.Price))},
		"hl":    {locale.Lang},
		"gl":    {locale.Country},
	}
	apps, err := p.fetchListing(ctx, "search", searchPath, query)
	if err != nil {
		return nil, err
	}
	return p.finish(ctx, window(apps, 0, num), opts.FullDetail, locale)
}

// List fetches a category chart.
func (p *Provider) List(ctx context.Context, opts playstore.ListOptions) ([]*playstore.App, error) {
	num := opts.Num
	if num <= 0 {
		num = playstore.DefaultListNum
	}
	if opts.Start < 0 {
		return nil, fmt.Errorf("%w: start must not be negative", playstore.ErrInvalidOption)
	}
	category := opts.Category
	if category == "" {
		category = playstore.DefaultCategory
	}
	locale := opts.Locale.WithDefaults(p.locale)

	query := url.Values{
		"chart": {opts.Collection.Chart()},
		"hl":    {locale.Lang},
		"gl":    {locale.Country},
	}
	if opts.Age != "" {
		query.Set("age", string(opts.Age))
	}
	apps, err := p.fetchListing(ctx, "list", categoryPath+url.PathEscape(category), query)
	if err != nil {
		return nil, err
	}
	return p.finish(ctx, window(apps, opts.Start, num), opts.FullDetail, locale)
}

// Developer lists a developer's apps.
func (p *Provider) Developer(ctx context.Context, opts playstore.DeveloperOptions) ([]*playstore.App, error) {
	if opts.DevID == "" {
		return nil, fmt.Errorf("%w: devId missing", playstore.ErrInvalidOption)
	}
	num := opts.Num
	if num <= 0 {
		num = playstore.DefaultDeveloperNum
	}
	locale := opts.Locale.WithDefaults(p.locale)

	path := developerPath
	if numericDevID.MatchString(opts.DevID) {
		path = devNumericPath
	}
	query := url.Values{"id": {opts.DevID}, "hl": {locale.Lang}, "gl": {locale.Country}}
	apps, err := p.fetchListing(ctx, "developer", path, query)
	if err != nil {
		return nil, err
	}
	return p.finish(ctx, window(apps, 0, num), opts.FullDetail, locale)
}

// Similar lists apps the store relates to the given one.
func (p *Provider) Similar(ctx context.Context, opts playstore.SimilarOptions) ([]*playstore.App, error) {
	if err := requireAppID(opts.AppID); err != nil {
		return nil, err
	}
	locale := opts.Locale.WithDefaults(p.locale)

	doc, err := p.fetchDetails(ctx, "similar", opts.AppID, locale)
	if err != nil {
		return nil, err
	}

	var apps []*playstore.App
	if cluster := htmlquery.FindOne(nodeOf(doc), clusterAnchorXPath); cluster != nil {
		clusterURL, err := url.Parse(htmlquery.SelectAttr(cluster, "href"))
		if err != nil {
			return nil, fmt.Errorf("%w: bad cluster link: %v", playstore.ErrUnexpectedPayload, err)
		}
		query := clusterURL.Query()
		query.Set("hl", locale.Lang)
		query.Set("gl", locale.Country)
		apps, err = p.fetchListing(ctx, "similar", clusterPath, query)
		if err != nil {
			return nil, err
		}
	} else {
		apps = p.parseListing(doc)
	}

	others := make([]*playstore.App, 0, len(apps))
	for _, app := range apps {
		if app.AppID != opts.AppID {
			others = append(others, app)
		}
	}
	return p.finish(ctx, others, opts.FullDetail, locale)
}

func (p *Provider) finish(ctx context.Context, apps []*playstore.App, fullDetail bool, locale playstore.Locale) ([]*playstore.App, error) {
	if !fullDetail {
		return apps, nil
	}
	return p.expand(ctx, apps, locale)
}

func (p *Provider) fetchListing(ctx context.Context, op, path string, query url.Values) ([]*playstore.App, error) {
	body, err := p.client.get(ctx, op, path, query)
	if err != nil {
		return nil, err
	}
	doc, err := loadDocument(body)
	if err != nil {
		return nil, err
	}
	return p.parseListing(doc), nil
}

// parseListing turns every app card on the page into a summary, first
// occurrence wins.
func (p *Provider) parseListing(doc *goquery.Document) []*playstore.App {
	root := nodeOf(doc)
	if root == nil {
		return nil
	}

	seen := make(map[string]bool)
	apps := []*playstore.App{}
	for _, a := range htmlquery.Find(root, appAnchorXPath) {
		appID := appIDFromHref(htmlquery.SelectAttr(a, "href"))
		if appID == "" || seen[appID] {
			continue
		}
		seen[appID] = true
		apps = append(apps, p.summary(a, appID))
	}
	return apps
}

func (p *Provider) summary(a *html.Node, appID string) *playstore.App {
	app := &playstore.App{
		AppID: appID,
		URL:   p.client.URL(detailsPath, url.Values{"id": {appID}}),
		Free:  true,
	}

	texts := textsOf(a)
	if title := htmlquery.SelectAttr(a, "aria-label"); title != "" {
		app.Title = normalizeSpace(title)
	} else if len(texts) > 0 {
		app.Title = texts[0]
	}
	for _, t := range texts {
		if t == app.Title {
			continue
		}
		if score, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(t, "star")), 64); err == nil {
			if app.Score == 0 && score > 0 && score <= 5 {
				app.Score = score
				app.ScoreText = t
			}
			continue
		}
		if m := priceLabel.FindStringSubmatch(t); m != nil {
			app.PriceText = t
			app.Price, _ = strconv.ParseFloat(strings.Replace(m[2], ",", ".", 1), 64)
			app.Free = app.Price == 0
			continue
		}
		if app.Developer == "" {
			app.Developer = t
		}
	}

	if img := htmlquery.FindOne(a, ".//img"); img != nil {
		src := htmlquery.SelectAttr(img, "src")
		if src == "" {
			src, _, _ = strings.Cut(htmlquery.SelectAttr(img, "srcset"), " ")
		}
		app.Icon = src
	}
	return app
}

// textsOf returns the non-empty text nodes under n in document order.
func textsOf(n *html.Node) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := normalizeSpace(n.Data); t != "" {
				out = append(out, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func appIDFromHref(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return u.Query().Get("id")
}

// window returns apps[start:start+num], clamped to the slice.
func window(apps []*playstore.App, start, num int) []*playstore.App {
	if start >= len(apps) {
		return []*playstore.App{}
	}
	end := start + num
	if end > len(apps) {
		end = len(apps)
	}
	return apps[start:end]
}
