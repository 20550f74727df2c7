package playstore

import (
	"context"
	"net/url"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

// DataSafety fetches the data safety section of a listing.
func (p *Provider) DataSafety(ctx context.Context, opts playstore.DataSafetyOptions) (*playstore.DataSafety, error) {
	if err := requireAppID(opts.AppID); err != nil {
		return nil, err
	}
	locale := opts.Locale.WithDefaults(p.locale)

	body, err := p.client.get(ctx, "datasafety", dataSafetyPath, url.Values{"id": {opts.AppID}, "hl": {locale.Lang}})
	if err != nil {
		return nil, err
	}
	doc, err := loadDocument(body)
	if err != nil {
		return nil, err
	}
	data, err := extractInitData(doc).decode("ds:3")
	if err != nil {
		return nil, err
	}
	return mapDataSafety(dig(data, 1, 2)), nil
}

func mapDataSafety(base interface{}) *playstore.DataSafety {
	safety := &playstore.DataSafety{
		SharedData:        mapDataEntries(digArray(base, 137, 4, 0, 0)),
		CollectedData:     mapDataEntries(digArray(base, 137, 4, 1, 0)),
		SecurityPractices: []playstore.SecurityPractice{},
		PrivacyPolicyURL:  digString(base, 99, 0, 5, 2),
	}
	for _, practice := range digArray(base, 137, 9, 2) {
		safety.SecurityPractices = append(safety.SecurityPractices, playstore.SecurityPractice{
			Practice:    digString(practice, 1),
			Description: digString(practice, 2, 1),
		})
	}
	return safety
}

func mapDataEntries(groups []interface{}) []playstore.DataEntry {
	entries := []playstore.DataEntry{}
	for _, group := range groups {
		groupType := digString(group, 0, 1)
		for _, detail := range digArray(group, 4) {
			entries = append(entries, playstore.DataEntry{
				Data:     digString(detail, 0),
				Optional: digBool(detail, 1),
				Purpose:  digString(detail, 2),
				Type:     groupType,
			})
		}
	}
	return entries
}
