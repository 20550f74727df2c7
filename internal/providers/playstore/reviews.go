package playstore

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

// Reviews fetches one batch of reviews. Pass the previous page's
// NextPaginationToken in opts.Token to continue.
func (p *Provider) Reviews(ctx context.Context, opts playstore.ReviewsOptions) (*playstore.ReviewPage, error) {
	if err := requireAppID(opts.AppID); err != nil {
		return nil, err
	}
	num := opts.Num
	if num <= 0 {
		num = playstore.DefaultReviewsNum
	}
	sort := opts.Sort
	if sort == 0 {
		sort = playstore.SortNewest
	}
	locale := opts.Locale.WithDefaults(p.locale)

	var token interface{}
	if opts.Token != "" {
		token = opts.Token
	}
	args := []interface{}{
		nil,
		nil,
		[]interface{}{2, int(sort), []interface{}{num, nil, token}, nil, []interface{}{}},
		[]interface{}{opts.AppID, 7},
	}
	data, err := p.batchExecute(ctx, "reviews", rpcReviews, args, locale)
	if err != nil {
		return nil, err
	}

	page := &playstore.ReviewPage{
		Data:                []playstore.Review{},
		NextPaginationToken: digString(data, 1, 1),
	}
	for _, r := range digArray(data, 0) {
		page.Data = append(page.Data, p.mapReview(r, opts.AppID))
	}
	return page, nil
}

func (p *Provider) mapReview(r interface{}, appID string) playstore.Review {
	id := digString(r, 0)
	score := int(digInt(r, 2))
	return playstore.Review{
		ID:        id,
		UserName:  digString(r, 1, 0),
		UserImage: digString(r, 1, 1, 3, 2),
		Date:      unixDate(digInt(r, 5, 0)),
		Score:     score,
		ScoreText: strconv.Itoa(score),
		URL:       p.client.URL(detailsPath, url.Values{"id": {appID}, "reviewId": {id}}),
		Text:      digString(r, 4),
		ReplyDate: unixDate(digInt(r, 7, 2, 0)),
		ReplyText: digString(r, 7, 1),
		Version:   digString(r, 10),
		ThumbsUp:  digInt(r, 6),
	}
}

// unixDate renders epoch seconds as RFC 3339, or "" when unset.
func unixDate(seconds int64) string {
	if seconds == 0 {
		return ""
	}
	return time.Unix(seconds, 0).UTC().Format(time.RFC3339)
}
