package http

import (
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

// componentEscaper undoes the escapes url.QueryEscape applies beyond
// encodeURIComponent, and writes spaces as %20.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escape percent-encodes a path segment or query component.
func escape(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

// encodeQuery renders values sorted by key, each component escaped.
func encodeQuery(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		for _, v := range values[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(escape(k))
			b.WriteByte('=')
			b.WriteString(escape(v))
		}
	}
	return b.String()
}

// scheme reports the protocol the client used, honouring a TLS-terminating
// proxy's X-Forwarded-Proto.
func scheme(c *gin.Context) string {
	if c.Request.TLS != nil {
		return "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		if first, _, _ := strings.Cut(proto, ","); strings.EqualFold(strings.TrimSpace(first), "https") {
			return "https"
		}
	}
	return "http"
}

// linker builds absolute URLs back into this API.
type linker struct {
	c        *gin.Context
	basePath string
}

// url joins host, base path and subpath. A trailing slash on subpath is kept.
func (l linker) url(subpath string) string {
	joined := path.Join(l.c.Request.Host, l.basePath, subpath)
	if strings.HasSuffix(subpath, "/") && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	return scheme(l.c) + "://" + joined
}

// withQuery appends an encoded query string to the URL of subpath.
func (l linker) withQuery(subpath string, query url.Values) string {
	return l.url(subpath) + "?" + encodeQuery(query)
}

type developerLink struct {
	DevID string `json:"devId"`
	URL   string `json:"url"`
}

// appResource is an App with its links rewritten to point at this API. The
// outer fields shadow the App fields of the same JSON name.
type appResource struct {
	*playstore.App
	PlaystoreURL string        `json:"playstoreUrl"`
	URL          string        `json:"url"`
	Permissions  string        `json:"permissions"`
	Similar      string        `json:"similar"`
	Reviews      string        `json:"reviews"`
	DataSafety   string        `json:"datasafety"`
	Developer    developerLink `json:"developer"`
	Categories   string        `json:"categories"`
}

func (l linker) app(app *playstore.App) appResource {
	base := "apps/" + app.AppID
	return appResource{
		App:          app,
		PlaystoreURL: app.URL,
		URL:          l.url(base),
		Permissions:  l.url(base + "/permissions"),
		Similar:      l.url(base + "/similar"),
		Reviews:      l.url(base + "/reviews"),
		DataSafety:   l.url(base + "/datasafety"),
		Developer: developerLink{
			DevID: app.Developer,
			URL:   l.url("developers/" + escape(app.Developer)),
		},
		Categories: l.url("categories/"),
	}
}

func (l linker) apps(apps []*playstore.App) []appResource {
	out := make([]appResource, 0, len(apps))
	for _, app := range apps {
		out = append(out, l.app(app))
	}
	return out
}
