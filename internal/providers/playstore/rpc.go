package playstore

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

// suggestLimit is how many completions the store is asked for.
const suggestLimit = 10

// Suggest returns search completions for a partial term.
func (p *Provider) Suggest(ctx context.Context, opts playstore.SuggestOptions) ([]string, error) {
	if opts.Term == "" {
		return nil, fmt.Errorf("%w: term missing", playstore.ErrInvalidOption)
	}
	locale := opts.Locale.WithDefaults(p.locale)

	args := []interface{}{
		[]interface{}{nil, []interface{}{opts.Term}, []interface{}{suggestLimit}, []interface{}{2}, 4},
	}
	data, err := p.batchExecute(ctx, "suggest", rpcSuggest, args, locale)
	if err != nil {
		return nil, err
	}

	terms := []string{}
	for _, entry := range digArray(data, 0, 0) {
		if term := digString(entry, 0); term != "" {
			terms = append(terms, term)
		}
	}
	return terms, nil
}

// Permission groups in the xdSrCf payload.
const (
	permissionsCommon = 0
	permissionsOther  = 1
)

// Permissions lists what an app may access. With Short set only the group
// names are returned, once each, in Permission.Permission.
func (p *Provider) Permissions(ctx context.Context, opts playstore.PermissionsOptions) ([]playstore.Permission, error) {
	if err := requireAppID(opts.AppID); err != nil {
		return nil, err
	}
	locale := opts.Locale.WithDefaults(p.locale)

	args := []interface{}{
		[]interface{}{nil, []interface{}{opts.AppID, 7}, []interface{}{}},
	}
	data, err := p.batchExecute(ctx, "permissions", rpcPermissions, args, locale)
	if err != nil {
		return nil, err
	}
	return mapPermissions(data, opts.Short), nil
}

func mapPermissions(data interface{}, short bool) []playstore.Permission {
	out := []playstore.Permission{}
	if short {
		seen := make(map[string]bool)
		for _, group := range digArray(data, permissionsCommon) {
			name := digString(group, 0)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, playstore.Permission{Permission: name})
		}
		return out
	}

	for _, section := range []int{permissionsCommon, permissionsOther} {
		for _, group := range digArray(data, section) {
			groupType := digString(group, 0)
			for _, item := range digArray(group, 2) {
				out = append(out, playstore.Permission{
					Permission: digString(item, 1),
					Type:       groupType,
				})
			}
		}
	}
	return out
}
