// ABOUTME: Feed parser built on gofeed that maps RSS, Atom and JSON feeds to domain feeds
// ABOUTME: Reports HTML pages as a distinct parse kind so callers can run feed discovery

package feedparser

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"

	"feed-resolver/core/domain"
	coreerrors "feed-resolver/core/errors"
	"feed-resolver/core/interfaces"
	htmlutil "feed-resolver/pkg/utils/html"
	timeutil "feed-resolver/pkg/utils/time"
)

// ErrEmptyContent is returned for blank documents
var ErrEmptyContent = errors.New("empty document")

// Parser implements interfaces.FeedParser
type Parser struct{}

// NewParser creates a feed parser
func NewParser() *Parser {
	return &Parser{}
}

var _ interfaces.FeedParser = (*Parser)(nil)

// Parse detects the document type and maps feeds into domain.Feed.
// sourceURL is the URL the content was fetched from.
func (p *Parser) Parse(ctx context.Context, content string, sourceURL string) (interfaces.ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.ParseResult{}, err
	}
	if strings.TrimSpace(content) == "" {
		return interfaces.ParseResult{}, ErrEmptyContent
	}

	if gofeed.DetectFeedType(strings.NewReader(content)) == gofeed.FeedTypeUnknown {
		if looksLikeHTML(content) {
			return interfaces.ParseResult{Kind: interfaces.ParseKindHTML}, nil
		}
		return interfaces.ParseResult{}, gofeed.ErrFeedTypeNotDetected
	}

	// gofeed.Parser keeps per-parse state, so each call gets its own
	parsed, err := gofeed.NewParser().ParseString(content)
	if err != nil {
		return interfaces.ParseResult{}, coreerrors.WrapError(err, "failed to parse feed")
	}

	return interfaces.ParseResult{
		Kind: interfaces.ParseKindFeed,
		Feed: toDomain(parsed, sourceURL),
	}, nil
}

// looksLikeHTML reports whether the first meaningful token is an HTML doctype
// or one of the html, head or body elements.
func looksLikeHTML(content string) bool {
	z := html.NewTokenizer(strings.NewReader(content))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.DoctypeToken:
			return strings.HasPrefix(strings.ToLower(strings.TrimSpace(string(z.Text()))), "html")
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			return htmlRoots[string(name)]
		case html.TextToken:
			if strings.TrimSpace(string(z.Text())) != "" {
				return false
			}
		case html.CommentToken, html.EndTagToken:
			// the tokenizer reports an <?xml ?> prologue as a comment
		}
	}
}

// htmlRoots are elements that open real-world HTML pages, including ones
// that omit <html> and <head>.
var htmlRoots = map[string]bool{
	"html": true, "head": true, "body": true, "meta": true, "title": true,
	"link": true, "script": true, "style": true, "div": true, "header": true,
}

func toDomain(parsed *gofeed.Feed, sourceURL string) *domain.Feed {
	source, _ := url.Parse(sourceURL)

	homepage := resolveAgainst(source, strings.TrimSpace(parsed.Link))
	if homepage == "" {
		homepage = sourceURL
	}
	home, _ := url.Parse(homepage)

	feed := &domain.Feed{
		Title:        htmlutil.StripHTML(parsed.Title),
		Link:         sourceURL,
		HomepageLink: homepage,
		Description:  htmlutil.StripHTML(parsed.Description),
		Icon:         feedIcon(parsed, home),
	}
	if feed.Title == "" && source != nil {
		feed.Title = source.Host
	}

	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		link := resolveAgainst(home, itemLink(item))
		if link == "" {
			continue
		}

		description := item.Description
		if strings.TrimSpace(description) == "" {
			description = item.Content
		}

		feed.Posts = append(feed.Posts, domain.Post{
			Title:       htmlutil.StripHTML(item.Title),
			Link:        link,
			Description: htmlutil.StripHTML(description),
			ImageURL:    resolveAgainst(home, itemImage(item)),
			Date:        itemDate(item),
		})
	}

	return feed
}

func itemLink(item *gofeed.Item) string {
	if link := strings.TrimSpace(item.Link); link != "" {
		return link
	}
	for _, l := range item.Links {
		if l = strings.TrimSpace(l); l != "" {
			return l
		}
	}
	return ""
}

// itemImage prefers the item image, then an image enclosure, then the iTunes
// image, then the first <img> in the body.
func itemImage(item *gofeed.Item) string {
	if item.Image != nil && strings.TrimSpace(item.Image.URL) != "" {
		return strings.TrimSpace(item.Image.URL)
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	if item.ITunesExt != nil && item.ITunesExt.Image != "" {
		return item.ITunesExt.Image
	}
	if src := htmlutil.FirstImage(item.Content); src != "" {
		return src
	}
	return htmlutil.FirstImage(item.Description)
}

func itemDate(item *gofeed.Item) time.Time {
	if t := timeutil.FirstValid(item.PublishedParsed, item.UpdatedParsed); !t.IsZero() {
		return t
	}
	if t := timeutil.ParseFeedDate(item.Published); !t.IsZero() {
		return t
	}
	return timeutil.ParseFeedDate(item.Updated)
}

func feedIcon(parsed *gofeed.Feed, home *url.URL) string {
	if parsed.Image != nil && strings.TrimSpace(parsed.Image.URL) != "" {
		return resolveAgainst(home, strings.TrimSpace(parsed.Image.URL))
	}
	if parsed.ITunesExt != nil && parsed.ITunesExt.Image != "" {
		return resolveAgainst(home, parsed.ITunesExt.Image)
	}
	if home == nil || home.Host == "" {
		return ""
	}
	return "https://" + home.Host + "/favicon.ico"
}

// resolveAgainst makes ref absolute relative to base. Unparsable or empty
// references resolve to "".
func resolveAgainst(base *url.URL, ref string) string {
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if u.IsAbs() || base == nil {
		return u.String()
	}
	return base.ResolveReference(u).String()
}
