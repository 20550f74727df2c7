package playstore

import (
	"fmt"
	"strings"
)

// Defaults applied when an option is left at its zero value.
const (
	DefaultLang    = "en"
	DefaultCountry = "us"

	DefaultSearchNum    = 20
	MaxSearchNum        = 250
	DefaultListNum      = 60
	DefaultDeveloperNum = 60
	DefaultReviewsNum   = 150
	DefaultCategory     = "APPLICATION"
)

// Locale selects the store language and country.
type Locale struct {
	Lang    string
	Country string
}

// WithDefaults fills empty fields from the given fallback, then from the
// package defaults.
func (l Locale) WithDefaults(fallback Locale) Locale {
	if l.Lang == "" {
		l.Lang = fallback.Lang
	}
	if l.Country == "" {
		l.Country = fallback.Country
	}
	if l.Lang == "" {
		l.Lang = DefaultLang
	}
	if l.Country == "" {
		l.Country = DefaultCountry
	}
	return l
}

// Collection is a top chart.
type Collection string

const (
	CollectionTopFree  Collection = "TOP_FREE"
	CollectionTopPaid  Collection = "TOP_PAID"
	CollectionGrossing Collection = "GROSSING"
)

// Chart returns the store's chart identifier for the collection.
func (c Collection) Chart() string {
	switch c {
	case CollectionTopPaid:
		return "topselling_paid"
	case CollectionGrossing:
		return "topgrossing"
	default:
		return "topselling_free"
	}
}

// ParseCollection accepts an empty string as TOP_FREE.
func ParseCollection(s string) (Collection, error) {
	switch c := Collection(strings.ToUpper(s)); c {
	case "":
		return CollectionTopFree, nil
	case CollectionTopFree, CollectionTopPaid, CollectionGrossing:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown collection %q", ErrInvalidOption, s)
	}
}

// Sort orders reviews. Values are the store's wire codes.
type Sort int

const (
	SortHelpfulness Sort = 1
	SortNewest      Sort = 2
	SortRating      Sort = 3
)

// ParseSort accepts names (NEWEST, RATING, HELPFULNESS) or wire codes.
func ParseSort(s string) (Sort, error) {
	switch strings.ToUpper(s) {
	case "", "NEWEST", "2":
		return SortNewest, nil
	case "RATING", "3":
		return SortRating, nil
	case "HELPFULNESS", "1":
		return SortHelpfulness, nil
	default:
		return 0, fmt.Errorf("%w: unknown sort %q", ErrInvalidOption, s)
	}
}

// Price filters search results.
type Price int

const (
	PriceAll  Price = 0
	PriceFree Price = 1
	PricePaid Price = 2
)

// ParsePrice accepts all, free or paid.
func ParsePrice(s string) (Price, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return PriceAll, nil
	case "free":
		return PriceFree, nil
	case "paid":
		return PricePaid, nil
	default:
		return 0, fmt.Errorf("%w: unknown price %q", ErrInvalidOption, s)
	}
}

// Age is a family age range filter.
type Age string

const (
	AgeFiveAndUnder Age = "AGE_RANGE1"
	AgeSixToEight   Age = "AGE_RANGE2"
	AgeNineAndUp    Age = "AGE_RANGE3"
)

// ParseAge accepts an empty string as no filter.
func ParseAge(s string) (Age, error) {
	switch a := Age(strings.ToUpper(s)); a {
	case "", AgeFiveAndUnder, AgeSixToEight, AgeNineAndUp:
		return a, nil
	default:
		return "", fmt.Errorf("%w: unknown age %q", ErrInvalidOption, s)
	}
}

// AppOptions selects one listing.
type AppOptions struct {
	Locale
	AppID string
}

// SearchOptions configures a store search. Num of zero means DefaultSearchNum.
type SearchOptions struct {
	Locale
	Term       string
	Num        int
	Price      Price
	FullDetail bool
}

// SuggestOptions asks for search completions of Term.
type SuggestOptions struct {
	Locale
	Term string
}

// ListOptions selects a window of a category chart.
type ListOptions struct {
	Locale
	Collection Collection
	Category   string
	Age        Age
	Num        int
	Start      int
	FullDetail bool
}

// SimilarOptions selects the apps related to AppID.
type SimilarOptions struct {
	Locale
	AppID      string
	FullDetail bool
}

// DeveloperOptions selects a developer's apps. DevID is either the numeric
// store id or the developer name.
type DeveloperOptions struct {
	Locale
	DevID      string
	Num        int
	FullDetail bool
}

// ReviewsOptions selects one batch of reviews.
type ReviewsOptions struct {
	Locale
	AppID string
	Sort  Sort
	Num   int
	// Token continues from a previous ReviewPage.
	Token string
}

// PermissionsOptions selects the declared permissions of a listing.
type PermissionsOptions struct {
	Locale
	AppID string
	// Short returns only the permission names, deduplicated.
	Short bool
}

// DataSafetyOptions selects the data safety section of a listing.
type DataSafetyOptions struct {
	Locale
	AppID string
}
