package playstore

// App is a store listing. Summaries coming from listing pages only fill
// appId, url, title, icon, developer and score.
type App struct {
	AppID            string   `json:"appId"`
	URL              string   `json:"url"`
	Title            string   `json:"title"`
	Summary          string   `json:"summary,omitempty"`
	Description      string   `json:"description,omitempty"`
	DescriptionHTML  string   `json:"descriptionHTML,omitempty"`
	Installs         string   `json:"installs,omitempty"`
	MinInstalls      int64    `json:"minInstalls,omitempty"`
	MaxInstalls      int64    `json:"maxInstalls,omitempty"`
	Score            float64  `json:"score,omitempty"`
	ScoreText        string   `json:"scoreText,omitempty"`
	Ratings          int64    `json:"ratings,omitempty"`
	Reviews          int64    `json:"reviews,omitempty"`
	Price            float64  `json:"price"`
	Free             bool     `json:"free"`
	Currency         string   `json:"currency,omitempty"`
	PriceText        string   `json:"priceText,omitempty"`
	Available        bool     `json:"available,omitempty"`
	OffersIAP        bool     `json:"offersIAP,omitempty"`
	IAPRange         string   `json:"IAPRange,omitempty"`
	AndroidVersion   string   `json:"androidVersion,omitempty"`
	Developer        string   `json:"developer"`
	DeveloperID      string   `json:"developerId,omitempty"`
	DeveloperEmail   string   `json:"developerEmail,omitempty"`
	DeveloperWebsite string   `json:"developerWebsite,omitempty"`
	DeveloperAddress string   `json:"developerAddress,omitempty"`
	PrivacyPolicy    string   `json:"privacyPolicy,omitempty"`
	Genre            string   `json:"genre,omitempty"`
	GenreID          string   `json:"genreId,omitempty"`
	Icon             string   `json:"icon,omitempty"`
	HeaderImage      string   `json:"headerImage,omitempty"`
	Screenshots      []string `json:"screenshots,omitempty"`
	Video            string   `json:"video,omitempty"`
	ContentRating    string   `json:"contentRating,omitempty"`
	AdSupported      bool     `json:"adSupported,omitempty"`
	Released         string   `json:"released,omitempty"`
	Updated          int64    `json:"updated,omitempty"`
	Version          string   `json:"version,omitempty"`
	RecentChanges    string   `json:"recentChanges,omitempty"`
}

// Review is a single user review.
type Review struct {
	ID        string  `json:"id"`
	UserName  string  `json:"userName"`
	UserImage string  `json:"userImage,omitempty"`
	Date      string  `json:"date,omitempty"`
	Score     int     `json:"score"`
	ScoreText string  `json:"scoreText"`
	URL       string  `json:"url"`
	Title     *string `json:"title"`
	Text      string  `json:"text"`
	ReplyDate string  `json:"replyDate,omitempty"`
	ReplyText string  `json:"replyText,omitempty"`
	Version   string  `json:"version,omitempty"`
	ThumbsUp  int64   `json:"thumbsUp"`
}

// ReviewPage is one batch of reviews plus the token for the following batch.
// An empty token means there are no further reviews.
type ReviewPage struct {
	Data                []Review `json:"data"`
	NextPaginationToken string   `json:"nextPaginationToken,omitempty"`
}

// Permission is a single declared permission and the group it belongs to.
type Permission struct {
	Permission string `json:"permission"`
	Type       string `json:"type"`
}

// DataEntry describes one kind of data an app shares or collects.
type DataEntry struct {
	Data     string `json:"data"`
	Optional bool   `json:"optional"`
	Purpose  string `json:"purpose"`
	Type     string `json:"type"`
}

// SecurityPractice is one entry of the data safety security section.
type SecurityPractice struct {
	Practice    string `json:"practice"`
	Description string `json:"description"`
}

// DataSafety is the data safety section of a listing.
type DataSafety struct {
	SharedData        []DataEntry        `json:"sharedData"`
	CollectedData     []DataEntry        `json:"collectedData"`
	SecurityPractices []SecurityPractice `json:"securityPractices"`
	PrivacyPolicyURL  string             `json:"privacyPolicyUrl,omitempty"`
}

// Category is an entry of the store taxonomy.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	NamePtBr string `json:"namePtBr"`
}
