// Package trending fetches and parses the GitHub trending listing page.
//
// The page has no API; everything here depends on its markup. Selectors live
// in one place so a markup change is a local fix. Parsing never fails: rows
// that cannot be read are skipped and an unreadable document yields nothing.
package trending

import (
	"bytes"
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ahmednasr/trending-hub/server/internal/models"
)

const (
	rowSelector      = "article.Box-row"
	titleSelector    = ".h3 > a"
	altTitleSelector = "h2 a"
	starsSelector    = `a[href*="/stargazers"]`
	languageSelector = `[itemprop="programmingLanguage"]`
)

var starsReplacer = strings.NewReplacer(",", "", " ", "", "\u00a0", "", "\u202f", "", "\n", "", "\t", "")

// Parse returns the trending rows of markup in document order.
// The sequence may be ranged over any number of times.
func Parse(markup []byte) iter.Seq[models.TrendingRepo] {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return func(func(models.TrendingRepo) bool) {}
	}
	rows := doc.Find(rowSelector)

	return func(yield func(models.TrendingRepo) bool) {
		rows.EachWithBreak(func(_ int, row *goquery.Selection) bool {
			repo, ok := parseRow(row)
			if !ok {
				return true
			}
			return yield(repo)
		})
	}
}

// ParseAll collects Parse into a slice. The result is never nil.
func ParseAll(markup []byte) []models.TrendingRepo {
	repos := []models.TrendingRepo{}
	for r := range Parse(markup) {
		repos = append(repos, r)
	}
	return repos
}

func parseRow(row *goquery.Selection) (models.TrendingRepo, bool) {
	title := row.Find(titleSelector).First()
	if title.Length() == 0 {
		title = row.Find(altTitleSelector).First()
	}

	author, repo := splitTitle(title.Text())
	if author == "" || repo == "" {
		return models.TrendingRepo{}, false
	}

	return models.TrendingRepo{
		Author:   author,
		Repo:     repo,
		Stars:    starsReplacer.Replace(strings.TrimSpace(row.Find(starsSelector).First().Text())),
		Language: strings.TrimSpace(row.Find(languageSelector).First().Text()),
	}, true
}

// splitTitle turns "octocat /\n   Hello-World" into ("octocat", "Hello-World").
func splitTitle(title string) (author, repo string) {
	parts := strings.Split(strings.TrimSpace(title), "/")
	if len(parts) < 2 {
		return "", ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
