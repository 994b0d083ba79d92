package tvdb

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"bahnarchiv/internal/catalog"
)

var (
	codePattern       = regexp.MustCompile(`S(\d{1,4})E(\d{1,3})`)
	specialPattern    = regexp.MustCompile(`(?i)S\s*0+\s*E\s*(\d{1,3})`)
	episodeWordFallbk = regexp.MustCompile(`(?i)\bEpisode\s+(\d{1,3})\b`)
	englishDate       = regexp.MustCompile(`[A-Za-z]+ \d{1,2}, \d{4}`)
)

// parseListing extracts episodes from an "all seasons" page. Each episode
// link's surrounding list item carries the S<season>E<episode> code and the
// English air date.
func parseListing(r io.Reader, hrefMarker string) ([]catalog.Episode, error) {
	anchors, err := episodeAnchors(r, hrefMarker)
	if err != nil {
		return nil, err
	}

	var episodes []catalog.Episode
	for _, a := range anchors {
		m := codePattern.FindStringSubmatch(a.context)
		if m == nil {
			continue
		}
		seasonRaw, _ := strconv.Atoi(m[1])
		epInSeason, _ := strconv.Atoi(m[2])

		episodes = append(episodes, catalog.Episode{
			SeasonEpisodeCode: fmt.Sprintf("S%04dE%02d", seasonRaw, epInSeason),
			SeasonRaw:         seasonRaw,
			EpInSeason:        epInSeason,
			Title:             a.title,
			AirDateISO:        parseDateEN(englishDate.FindString(a.context)),
		})
	}
	return episodes, nil
}

// parseSpecials extracts episodes from the season-0 page. Specials are
// forced to the season code 0000. When the visible text omits the S0E..
// prefix the "Episode <n>" label is used instead.
func parseSpecials(r io.Reader, hrefMarker string) ([]catalog.Episode, error) {
	anchors, err := episodeAnchors(r, hrefMarker)
	if err != nil {
		return nil, err
	}

	type specialKey struct {
		ep    int
		title string
	}
	seen := make(map[specialKey]struct{})

	var episodes []catalog.Episode
	for _, a := range anchors {
		var epInSeason int
		if m := specialPattern.FindStringSubmatch(a.context); m != nil {
			epInSeason, _ = strconv.Atoi(m[1])
		} else if m := episodeWordFallbk.FindStringSubmatch(a.context); m != nil {
			epInSeason, _ = strconv.Atoi(m[1])
		} else {
			continue
		}

		key := specialKey{ep: epInSeason, title: a.title}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		episodes = append(episodes, catalog.Episode{
			SeasonEpisodeCode: fmt.Sprintf("S%04dE%02d", 0, epInSeason),
			SeasonRaw:         0,
			EpInSeason:        epInSeason,
			Title:             a.title,
			AirDateISO:        parseDateEN(englishDate.FindString(a.context)),
		})
	}
	return episodes, nil
}

// anchor is one episode link with its visible title and the text of its
// surrounding list item or table row.
type anchor struct {
	title   string
	context string
}

func episodeAnchors(r io.Reader, hrefMarker string) ([]anchor, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse listing html: %w", err)
	}

	seen := make(map[string]struct{})
	var anchors []anchor

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			href := attrValue(n, "href")
			if href != "" && strings.Contains(href, hrefMarker) {
				if _, dup := seen[href]; !dup {
					seen[href] = struct{}{}
					ctx := n
					if container := findAncestor(n, "li", "tr", "div"); container != nil {
						ctx = container
					}
					anchors = append(anchors, anchor{
						title:   collapseSpace(nodeText(n)),
						context: collapseSpace(nodeText(ctx)),
					})
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return anchors, nil
}

func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

func findAncestor(n *html.Node, names ...string) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		for _, name := range names {
			if p.Data == name {
				return p
			}
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// parseDateEN converts an English date like "April 7, 1991" to ISO form.
// Returns "" when the date cannot be parsed.
func parseDateEN(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range []string{"January 2, 2006", "Jan 2, 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
