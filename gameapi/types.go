package gameapi

// Tag is a game classification label.
type Tag struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Publisher is a game publisher profile.
type Publisher struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	ContactInfo string `json:"contact_info,omitempty"`
}

// Game is the list representation of a game.
type Game struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	NameEN        string  `json:"name_en,omitempty"`
	Category      string  `json:"category"`
	PublisherID   int64   `json:"publisher"`
	PublisherName string  `json:"publisher_name,omitempty"`
	Tags          []Tag   `json:"tags,omitempty"`
	Rating        float64 `json:"rating"`
	DownloadCount int64   `json:"download_count"`
	FollowCount   int64   `json:"follow_count"`
	ReviewCount   int64   `json:"review_count"`
	CoverImage    string  `json:"cover_image,omitempty"`
	HeatTotal     float64 `json:"heat_total"`
	ReleaseDate   string  `json:"release_date,omitempty"`
	IsCollected   bool    `json:"is_collected,omitempty"`
}

// Screenshot is one uploaded game screenshot.
type Screenshot struct {
	ID          int64  `json:"id"`
	Image       string `json:"image"`
	ImageURL    string `json:"image_url,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order,omitempty"`
}

// Detail is the full representation returned by the detail endpoint.
type Detail struct {
	Game
	Publisher   Publisher    `json:"publisher"`
	Screenshots []Screenshot `json:"screenshots,omitempty"`
	Description string       `json:"description,omitempty"`
	HeatStatic  float64      `json:"heat_static,omitempty"`
	HeatDynamic float64      `json:"heat_dynamic,omitempty"`
	OnlineTime  string       `json:"online_time,omitempty"`
	Version     string       `json:"version,omitempty"`
	CreatedAt   string       `json:"created_at,omitempty"`
	UpdatedAt   string       `json:"updated_at,omitempty"`
}

// Form carries the fields for creating or editing a game.
type Form struct {
	Name        string  `json:"name"`
	NameEN      string  `json:"name_en,omitempty"`
	Category    string  `json:"category"`
	PublisherID int64   `json:"publisher"`
	Description string  `json:"description,omitempty"`
	TagIDs      []int64 `json:"tags,omitempty"`
	CoverImage  string  `json:"cover_image,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Version     string  `json:"version,omitempty"`
}

// Query selects and orders a game listing.
type Query struct {
	Page     int
	PageSize int
	Search   string
	Category string
	Ordering string
}

// RankingEntry is one row of the external single-player ranking feed.
type RankingEntry struct {
	ID            int64    `json:"id,omitempty"`
	Source        string   `json:"source"`
	Rank          int      `json:"rank"`
	Name          string   `json:"name"`
	EnglishName   string   `json:"english_name,omitempty"`
	Developer     string   `json:"developer,omitempty"`
	PublisherName string   `json:"publisher_name,omitempty"`
	Genre         string   `json:"genre,omitempty"`
	Platforms     string   `json:"platforms,omitempty"`
	Language      string   `json:"language,omitempty"`
	ReleaseDate   string   `json:"release_date,omitempty"`
	Score         *float64 `json:"score,omitempty"`
	RatingCount   int      `json:"rating_count,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	CoverURL      string   `json:"cover_url,omitempty"`
	DetailURL     string   `json:"detail_url,omitempty"`
	GameID        *int64   `json:"game,omitempty"`
	FetchedAt     string   `json:"fetched_at,omitempty"`
}
