package models

// TrendingRepo is one entry parsed from the trending listing page.
type TrendingRepo struct {
	Author   string `json:"author"`   // Owner login (e.g. "octocat")
	Repo     string `json:"repo"`     // Repository name (e.g. "Hello-World")
	Stars    string `json:"stars"`    // Total stars as digits, separators stripped ("1234")
	Language string `json:"language"` // Primary language label, "" when unspecified
}

