package playstore

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

const (
	batchExecutePath = "/_/PlayStoreUi/data/batchexecute"
	xssiPrefix       = ")]}'"
)

// RPC ids understood by the batchexecute endpoint.
const (
	rpcSuggest     = "IJ4APc"
	rpcReviews     = "UsvDTd"
	rpcPermissions = "xdSrCf"
)

// batchExecute calls one RPC and returns its decoded payload. A nil payload
// with a nil error means the store answered with no data.
func (p *Provider) batchExecute(ctx context.Context, op, rpcID string, args interface{}, locale playstore.Locale) (interface{}, error) {
	inner, err := sonic.MarshalString(args)
	if err != nil {
		return nil, fmt.Errorf("encode %s arguments: %w", rpcID, err)
	}
	freq, err := sonic.MarshalString([]interface{}{
		[]interface{}{
			[]interface{}{rpcID, inner, nil, "generic"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", rpcID, err)
	}

	query := url.Values{
		"rpcids":       {rpcID},
		"hl":           {locale.Lang},
		"gl":           {locale.Country},
		"authuser":     {""},
		"soc-app":      {"121"},
		"soc-platform": {"1"},
		"soc-device":   {"1"},
	}
	body, err := p.client.postForm(ctx, op, batchExecutePath, query, url.Values{"f.req": {freq}})
	if err != nil {
		return nil, err
	}
	return decodeBatchResponse(body, rpcID)
}

// decodeBatchResponse finds the wrb.fr envelope for rpcID and decodes its
// payload string.
func decodeBatchResponse(body []byte, rpcID string) (interface{}, error) {
	body = bytes.TrimPrefix(bytes.TrimSpace(body), []byte(xssiPrefix))

	candidates := []string{strings.TrimSpace(string(body))}
	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), MaxPageSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			candidates = append(candidates, line)
		}
	}

	for _, candidate := range candidates {
		var envelopes []interface{}
		if err := sonic.UnmarshalString(candidate, &envelopes); err != nil {
			continue
		}
		for _, e := range envelopes {
			if digString(e, 0) != "wrb.fr" || digString(e, 1) != rpcID {
				continue
			}
			payload, ok := dig(e, 2).(string)
			if !ok || payload == "" {
				return nil, nil
			}
			var data interface{}
			if err := sonic.UnmarshalString(payload, &data); err != nil {
				return nil, fmt.Errorf("%w: decode %s payload: %v", playstore.ErrUnexpectedPayload, rpcID, err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: no %s envelope in response", playstore.ErrUnexpectedPayload, rpcID)
}
