package kodi

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/vmunix/kodisrc/internal/source"
)

const storeSources = "sources"

// sourceCategories are the sections Kodi writes into a new sources.xml.
var sourceCategories = []string{"programs", "video", "music", "pictures", "files", "games"}

var defaultSourcesXML = func() string {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString("<sources>")
	for _, c := range sourceCategories {
		b.WriteString("<" + c + `><default pathversion="1"></default></` + c + ">")
	}
	b.WriteString("</sources>")
	return b.String()
}()

// VideoSource is a <source> entry of the video section.
type VideoSource struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// SourcesFile is userdata/sources.xml.
type SourcesFile struct {
	path string
}

// NewSourcesFile returns a SourcesFile for the document at path.
func NewSourcesFile(path string) *SourcesFile {
	return &SourcesFile{path: path}
}

// Path returns the document location.
func (f *SourcesFile) Path() string { return f.path }

// Add appends src to the video section unless a source with the same path
// is already there. A missing document is created first. Reports whether
// the document changed.
func (f *SourcesFile) Add(src source.Source) (bool, error) {
	d, _, err := loadDocument(storeSources, f.path, "sources", defaultSourcesXML)
	if err != nil {
		return false, err
	}

	video := d.section("video")
	if findVideoSource(video, src.Path()) != nil {
		return false, nil
	}

	entry := appendElement(video, "source", "")
	appendElement(entry, "name", src.Name())
	appendElement(entry, "path", src.Path()).SetAttr("pathversion", "1")
	appendElement(entry, "allowsharing", "true")

	if err := d.save(); err != nil {
		return false, err
	}
	return true, nil
}

// ClearVideo removes every source from the video section and returns how
// many were removed. Other sections are not touched. A missing document is
// not created.
func (f *SourcesFile) ClearVideo() (int, error) {
	d, created, err := loadDocument(storeSources, f.path, "sources", defaultSourcesXML)
	if err != nil || created {
		return 0, err
	}

	video := firstElement(d.root, "video")
	if video == nil {
		return 0, nil
	}

	entries := childElements(video, "source")
	if len(entries) == 0 {
		return 0, nil
	}
	for _, n := range entries {
		removeElement(n)
	}

	if err := d.save(); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// VideoSources returns the entries of the video section.
func (f *SourcesFile) VideoSources() ([]VideoSource, error) {
	d, created, err := loadDocument(storeSources, f.path, "sources", defaultSourcesXML)
	if err != nil || created {
		return nil, err
	}

	video := firstElement(d.root, "video")
	if video == nil {
		return nil, nil
	}

	var out []VideoSource
	for _, n := range childElements(video, "source") {
		out = append(out, VideoSource{
			Name: textOf(firstElement(n, "name")),
			Path: textOf(firstElement(n, "path")),
		})
	}
	return out, nil
}

func findVideoSource(video *xmlquery.Node, path string) *xmlquery.Node {
	for _, n := range childElements(video, "source") {
		if textOf(firstElement(n, "path")) == path {
			return n
		}
	}
	return nil
}
