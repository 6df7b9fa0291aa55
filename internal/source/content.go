package source

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// Content is the kind of media a source provides.
type Content string

const (
	ContentTVShows Content = "tvshows"
	ContentMovies  Content = "movies"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a "did you mean" hint.
const suggestThreshold = 0.8

var scrapers = map[Content]string{
	ContentTVShows: "metadata.tvshows.themoviedb.org",
	ContentMovies:  "metadata.themoviedb.org",
}

// Settings blobs use Kodi's version 2 scraper settings schema. Stored verbatim.
var settings = map[Content]string{
	ContentTVShows: `<settings version="2"><setting id="alsoimdb" default="true">false</setting><setting id="certprefix" default="true"></setting><setting id="fallback">true</setting><setting id="fanarttvart">true</setting><setting id="keeporiginaltitle" default="true">false</setting><setting id="language" default="true">en</setting><setting id="RatingS" default="true">Themoviedb</setting><setting id="tmdbart">true</setting><setting id="tmdbcertcountry" default="true">us</setting><setting id="tvdbwidebanners">true</setting></settings>`,
	ContentMovies:  `<settings version="2"><setting id="certprefix" default="true">Rated </setting><setting id="fanart">true</setting><setting id="imdbanyway" default="true">false</setting><setting id="keeporiginaltitle" default="true">false</setting><setting id="language" default="true">en</setting><setting id="RatingS" default="true">TMDb</setting><setting id="tmdbcertcountry" default="true">us</setting><setting id="trailer">true</setting></settings>`,
}

// Contents returns the supported content types in sorted order.
func Contents() []string {
	out := make([]string, 0, len(scrapers))
	for c := range scrapers {
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}

// ParseContent validates s against the supported content types.
func ParseContent(s string) (Content, error) {
	c := Content(s)
	_, hasScraper := scrapers[c]
	_, hasSettings := settings[c]
	if hasScraper && hasSettings {
		return c, nil
	}
	return "", &ConfigError{
		Field:      "content",
		Message:    "unsupported content type " + quote(s) + " (want one of " + joinQuoted(Contents()) + ")",
		Suggestion: suggestContent(s),
	}
}

// Scraper returns the scraper add-on id for c.
func (c Content) Scraper() string { return scrapers[c] }

// Settings returns the scraper settings blob for c.
func (c Content) Settings() string { return settings[c] }

func suggestContent(s string) string {
	best, bestScore := "", float32(0)
	for _, candidate := range Contents() {
		score := edlib.JaroWinklerSimilarity(s, candidate)
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore < suggestThreshold {
		return ""
	}
	return best
}
