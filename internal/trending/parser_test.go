package trending

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmednasr/trending-hub/server/internal/models"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestParseAll_Fixture(t *testing.T) {
	repos := ParseAll(readFixture(t, "trending.html"))

	want := []models.TrendingRepo{
		{Author: "octocat", Repo: "Hello-World", Stars: "12345", Language: "JavaScript"},
		{Author: "torvalds", Repo: "linux", Stars: "187654", Language: "C"},
		{Author: "awesome", Repo: "list", Stars: "9001", Language: ""},
	}
	assert.Equal(t, want, repos)
}

func TestParseAll_MalformedRowDropped(t *testing.T) {
	markup := []byte(`
<article class="Box-row">
  <h2 class="h3"><a href="/octocat/Hello-World">octocat / Hello-World</a></h2>
  <span itemprop="programmingLanguage">JavaScript</span>
  <a href="/octocat/Hello-World/stargazers">1,234</a>
</article>
<article class="Box-row">
  <h2 class="h3"><a href="/"></a></h2>
  <a href="/x/y/stargazers">99</a>
</article>`)

	repos := ParseAll(markup)

	require.Len(t, repos, 1)
	assert.Equal(t, models.TrendingRepo{
		Author:   "octocat",
		Repo:     "Hello-World",
		Stars:    "1234",
		Language: "JavaScript",
	}, repos[0])
}

func TestParseAll_Empty(t *testing.T) {
	tests := map[string][]byte{
		"nil":         nil,
		"no rows":     []byte(`<html><body><p>Nothing trending</p></body></html>`),
		"not html":    []byte(`{"message":"rate limited"}`),
		"binary junk": {0x00, 0xff, 0x13, 0x37},
	}

	for name, markup := range tests {
		t.Run(name, func(t *testing.T) {
			repos := ParseAll(markup)
			assert.NotNil(t, repos)
			assert.Empty(t, repos)
		})
	}
}

func TestParseAll_KeepsDuplicates(t *testing.T) {
	row := `<article class="Box-row"><h2 class="h3"><a>a / b</a></h2></article>`
	repos := ParseAll([]byte(row + row))

	require.Len(t, repos, 2)
	assert.Equal(t, repos[0], repos[1])
}

func TestParse_Idempotent(t *testing.T) {
	markup := readFixture(t, "trending.html")

	assert.Equal(t, ParseAll(markup), ParseAll(markup))

	// The same sequence can be ranged over more than once.
	seq := Parse(markup)
	var first, second []models.TrendingRepo
	for r := range seq {
		first = append(first, r)
	}
	for r := range seq {
		second = append(second, r)
	}
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestParse_StopsEarly(t *testing.T) {
	var got []models.TrendingRepo
	for r := range Parse(readFixture(t, "trending.html")) {
		got = append(got, r)
		break
	}
	require.Len(t, got, 1)
	assert.Equal(t, "octocat", got[0].Author)
}

func TestSplitTitle(t *testing.T) {
	tests := []struct {
		title, author, repo string
	}{
		{"octocat / Hello-World", "octocat", "Hello-World"},
		{"\n  octocat /\n  Hello-World\n", "octocat", "Hello-World"},
		{"a/b/c", "a", "b"},
		{"no-slash", "", ""},
		{"/repo", "", "repo"},
		{"", "", ""},
	}

	for _, tt := range tests {
		author, repo := splitTitle(tt.title)
		assert.Equal(t, tt.author, author, "title %q", tt.title)
		assert.Equal(t, tt.repo, repo, "title %q", tt.title)
	}
}
