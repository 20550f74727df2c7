package playstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/logging"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/resilience"
)

// Store page paths.
const (
	detailsPath    = "/store/apps/details"
	searchPath     = "/store/search"
	categoryPath   = "/store/apps/category/"
	devNumericPath = "/store/apps/dev"
	developerPath  = "/store/apps/developer"
	dataSafetyPath = "/store/apps/datasafety"
	clusterPath    = "/store/apps/collection/cluster"
)

// Provider implements playstore.Scraper against the live store.
type Provider struct {
	client *Client
	locale playstore.Locale
	logger *logging.Logger
}

var _ playstore.Scraper = (*Provider)(nil)

// New creates a provider. locale supplies the defaults for requests that do
// not set lang or country.
func New(client *Client, locale playstore.Locale, logger *logging.Logger) *Provider {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Provider{
		client: client,
		locale: locale.WithDefaults(playstore.Locale{}),
		logger: logger.Named("playstore"),
	}
}

// BreakerState reports the health of the upstream circuit.
func (p *Provider) BreakerState() resilience.State {
	return p.client.BreakerState()
}

func requireAppID(appID string) error {
	if appID == "" {
		return fmt.Errorf("%w: appId missing", playstore.ErrInvalidOption)
	}
	return nil
}

// expand replaces summaries with full records, one request at a time.
func (p *Provider) expand(ctx context.Context, apps []*playstore.App, locale playstore.Locale) ([]*playstore.App, error) {
	full := make([]*playstore.App, 0, len(apps))
	for _, summary := range apps {
		app, err := p.App(ctx, playstore.AppOptions{Locale: locale, AppID: summary.AppID})
		if err != nil {
			p.logger.ForContext(ctx).Warn("Full detail fetch failed",
				zap.String("app_id", summary.AppID),
				zap.Error(err),
			)
			return nil, err
		}
		full = append(full, app)
	}
	return full, nil
}
