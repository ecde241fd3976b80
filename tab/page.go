package tab

import (
	"bytes"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
)

const (
	storeClass = "js-store"
	storeAttr  = "data-content"
	tabView    = "store.page.data.tab_view"
)

// Page is the song data embedded in a saved tab page.
type Page struct {
	Title   string
	Artist  string
	Content string
}

// ExtractPage reads the JSON store that the tab site embeds in its pages.
// A page without the store degrades to an empty Page.
func ExtractPage(doc []byte) (Page, []Warning) {
	var page Page
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return page, []Warning{{Kind: MissingPayload, Detail: "page is not html: " + err.Error()}}
	}

	data, ok := findStore(root)
	if !ok {
		return page, []Warning{{Kind: MissingPayload, Detail: "page has no " + storeClass + " element"}}
	}
	if !gjson.Valid(data) {
		return page, []Warning{{Kind: MissingPayload, Detail: storeAttr + " is not valid json"}}
	}

	view := gjson.Get(data, tabView)
	page.Content = view.Get("wiki_tab.content").String()
	page.Title = view.Get("versions.0.song_name").String()
	page.Artist = view.Get("versions.0.artist_name").String()
	return page, nil
}

func findStore(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "div" {
		var class, content string
		var hasContent bool
		for _, attr := range n.Attr {
			switch attr.Key {
			case "class":
				class = attr.Val
			case storeAttr:
				content, hasContent = attr.Val, true
			}
		}
		if hasContent && hasClass(class, storeClass) {
			return content, true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if content, ok := findStore(c); ok {
			return content, true
		}
	}
	return "", false
}

func hasClass(classes, name string) bool {
	for _, class := range strings.Fields(classes) {
		if class == name {
			return true
		}
	}
	return false
}

// NormalizePage extracts and normalizes a saved tab page.
func NormalizePage(doc []byte) Result {
	page, warnings := ExtractPage(doc)
	res := Normalize(page.Content, page.Title, page.Artist)
	res.Warnings = append(warnings, res.Warnings...)
	return res
}

func ReadPage(path string) (Result, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return Result{}, errors.Wrapf(err, "could not read tab page %v", path)
	}
	return NormalizePage(doc), nil
}
