package kodi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/vmunix/kodisrc/internal/source"
)

const storeMediaSources = "mediasources"

const defaultMediaSourcesXML = xmlDeclaration + `<mediasources><network></network></mediasources>`

// Location is a <location> entry of the network section.
type Location struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// MediaSourcesFile is userdata/mediasources.xml.
type MediaSourcesFile struct {
	path string
}

// NewMediaSourcesFile returns a MediaSourcesFile for the document at path.
func NewMediaSourcesFile(path string) *MediaSourcesFile {
	return &MediaSourcesFile{path: path}
}

// Path returns the document location.
func (f *MediaSourcesFile) Path() string { return f.path }

// Add appends a network location for src unless one with the same path
// exists. New locations get the next free numeric id, starting at 0.
// Returns the id of the new or existing location and whether the document
// changed.
func (f *MediaSourcesFile) Add(src source.Source) (id string, added bool, err error) {
	d, _, err := loadDocument(storeMediaSources, f.path, "mediasources", defaultMediaSourcesXML)
	if err != nil {
		return "", false, err
	}

	network := d.section("network")
	locations := childElements(network, "location")
	for _, n := range locations {
		if textOf(n) == src.Path() {
			return n.SelectAttr("id"), false, nil
		}
	}

	next, err := nextLocationID(locations)
	if err != nil {
		return "", false, storageError(storeMediaSources, f.path, err)
	}

	id = strconv.Itoa(next)
	appendElement(network, "location", src.Path()).SetAttr("id", id)

	if err := d.save(); err != nil {
		return "", false, err
	}
	return id, true, nil
}

// Locations returns the entries of the network section.
func (f *MediaSourcesFile) Locations() ([]Location, error) {
	d, created, err := loadDocument(storeMediaSources, f.path, "mediasources", defaultMediaSourcesXML)
	if err != nil || created {
		return nil, err
	}

	network := firstElement(d.root, "network")
	if network == nil {
		return nil, nil
	}

	var out []Location
	for _, n := range childElements(network, "location") {
		out = append(out, Location{ID: n.SelectAttr("id"), Path: textOf(n)})
	}
	return out, nil
}

// nextLocationID returns one past the highest id in use, or 0 when no
// location carries an id.
func nextLocationID(locations []*xmlquery.Node) (int, error) {
	highest := -1
	for _, n := range locations {
		raw := strings.TrimSpace(n.SelectAttr("id"))
		if raw == "" {
			continue
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("location %q has non-numeric id %q", textOf(n), raw)
		}
		highest = max(highest, id)
	}
	return highest + 1, nil
}
