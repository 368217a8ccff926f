// The NOAA/STAR online archive of operational files.

package vaod

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// A StarArchive speaks HTTP to the STAR online archive. Existence is a HEAD
// request, transfer is a plain GET, and directory contents are discovered by
// parsing the archive's HTML index pages.
type StarArchive struct {
	Root   string
	Client *http.Client
	Log    zerolog.Logger
}

func NewStarArchive(root string, log zerolog.Logger) *StarArchive {
	return &StarArchive{Root: root, Client: http.DefaultClient, Log: log}
}

// Exists reports whether a HEAD of the URL returns HTTP 200. A transport
// error counts as "does not exist"; see the note on probe conflation in
// probe.go.
func (a *StarArchive) Exists(rawURL string) bool {
	resp, err := a.Client.Head(rawURL)
	if err != nil {
		a.Log.Debug().Err(err).Str("url", rawURL).Msg("HEAD failed")
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Fetch GETs the URL and copies the body to w.
func (a *StarArchive) Fetch(rawURL string, w io.Writer) error {
	resp, err := a.Client.Get(rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error fetching %v: HTTP %d", rawURL, resp.StatusCode)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

// Pattern matching gridded AOD file names in index pages.
var starFilePattern = regexp.MustCompile(`^viirs_(eps|aod)_.*\.nc$`)

// List fetches the archive's HTML index for a satellite's daily directory in
// the given year and returns the gridded AOD file names found there, sorted.
func (a *StarArchive) List(sat Satellite, year int) ([]string, error) {
	indexURL := fmt.Sprintf("%s%s/aod/eps/%d/", a.Root, sat.StarPath, year)
	doc, err := a.getAndParse(indexURL)
	if err != nil {
		return nil, err
	}

	var names []string
	walkNodeTree(doc, func(node *html.Node) {
		name, ok := matchFileNode(node)
		if ok {
			names = append(names, name)
		}
	})
	sort.Strings(names)
	return names, nil
}

// matchFileNode inspects one node of an index parse tree looking for an
// anchor pointing to a gridded AOD file.
func matchFileNode(node *html.Node) (string, bool) {
	if node.Type != html.ElementNode || node.Data != "a" {
		return "", false
	}
	for _, attr := range node.Attr {
		if attr.Key != "href" {
			continue
		}
		ref, err := url.Parse(attr.Val)
		if err != nil {
			continue
		}
		name := strings.TrimRight(ref.Path, "/")
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
		if starFilePattern.MatchString(name) {
			return name, true
		}
	}
	return "", false
}

// Fetch data from a URL interpreting the result as HTML and return the root
// of the HTML parse tree.
func (a *StarArchive) getAndParse(rawURL string) (*html.Node, error) {
	a.Log.Debug().Str("url", rawURL).Msg("fetching index")
	resp, err := a.Client.Get(rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error fetching %v: HTTP %d", rawURL, resp.StatusCode)
	}

	return html.Parse(resp.Body)
}

// Walk a HTML parse tree in a depth first manner calling nodeFn for each
// node.
func walkNodeTree(root *html.Node, nodeFn func(*html.Node)) {
	nodeFn(root)
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		walkNodeTree(c, nodeFn)
	}
}
