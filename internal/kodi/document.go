package kodi

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/antchfx/xmlquery"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

// document is an XML file loaded whole, edited as a tree and written back whole.
type document struct {
	store string
	path  string
	doc   *xmlquery.Node
	root  *xmlquery.Node
}

// loadDocument parses the file at path. A missing file yields a document
// parsed from skeleton and created is true; any other read or parse failure,
// or a root element other than rootName, is a *StorageError.
func loadDocument(store, path, rootName, skeleton string) (d *document, created bool, err error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		data, created = []byte(skeleton), true
	case err != nil:
		return nil, false, storageError(store, path, err)
	}

	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, false, storageError(store, path, fmt.Errorf("parse: %w", err))
	}

	root, err := rootElement(doc)
	if err != nil {
		return nil, false, storageError(store, path, err)
	}
	if root.Data != rootName {
		return nil, false, storageError(store, path, fmt.Errorf("root element is <%s>, want <%s>", root.Data, rootName))
	}

	return &document{store: store, path: path, doc: doc, root: root}, created, nil
}

// rootElement returns the single top-level element of doc. Only
// declarations, comments and whitespace may surround it. The parser hangs
// content that precedes any declaration off doc's siblings, so those count
// as top level too.
func rootElement(doc *xmlquery.Node) (*xmlquery.Node, error) {
	var top []*xmlquery.Node
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		top = append(top, n)
	}
	for n := doc.NextSibling; n != nil; n = n.NextSibling {
		top = append(top, n)
	}

	var root *xmlquery.Node
	for _, n := range top {
		switch n.Type {
		case xmlquery.ElementNode:
			if root != nil {
				return nil, fmt.Errorf("second top-level element <%s> after <%s>", n.Data, root.Data)
			}
			root = n
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if strings.TrimSpace(n.Data) != "" {
				return nil, fmt.Errorf("text %q outside the root element", strings.TrimSpace(n.Data))
			}
		case xmlquery.DeclarationNode, xmlquery.CommentNode, xmlquery.NotationNode:
		default:
			return nil, fmt.Errorf("unexpected top-level node %q", n.Data)
		}
	}
	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}

// section returns the child of the root element called name, adding it if absent.
func (d *document) section(name string) *xmlquery.Node {
	if n := firstElement(d.root, name); n != nil {
		return n
	}
	return appendElement(d.root, name, "")
}

func (d *document) save() error {
	return storageError(d.store, d.path, writeFileAtomic(d.path, []byte(d.doc.OutputXML(true))))
}

// firstElement returns the first element child of parent named name, or the
// first element child of any name when name is empty.
func firstElement(parent *xmlquery.Node, name string) *xmlquery.Node {
	for n := parent.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode && (name == "" || n.Data == name) {
			return n
		}
	}
	return nil
}

func childElements(parent *xmlquery.Node, name string) []*xmlquery.Node {
	var out []*xmlquery.Node
	for n := parent.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode && n.Data == name {
			out = append(out, n)
		}
	}
	return out
}

// appendElement adds <name>text</name> as the last element of parent. In an
// indented document it gets the indentation of the element before it and
// the closing tag keeps its own.
func appendElement(parent *xmlquery.Node, name, text string) *xmlquery.Node {
	el := &xmlquery.Node{Type: xmlquery.ElementNode, Data: name}
	if text != "" {
		xmlquery.AddChild(el, &xmlquery.Node{Type: xmlquery.TextNode, Data: text})
	}

	closing := parent.LastChild
	if closing == nil || !isBlank(closing) || !strings.Contains(closing.Data, "\n") {
		xmlquery.AddChild(parent, el)
		return el
	}

	xmlquery.RemoveFromTree(closing)
	xmlquery.AddChild(parent, &xmlquery.Node{Type: xmlquery.TextNode, Data: indentBefore(parent, closing.Data)})
	xmlquery.AddChild(parent, el)
	xmlquery.AddChild(parent, closing)
	return el
}

// indentBefore returns the whitespace in front of the last element child of
// parent, or closing plus four spaces when there is none.
func indentBefore(parent *xmlquery.Node, closing string) string {
	for n := parent.LastChild; n != nil; n = n.PrevSibling {
		if n.Type != xmlquery.ElementNode {
			continue
		}
		if prev := n.PrevSibling; prev != nil && isBlank(prev) {
			return prev.Data
		}
		break
	}
	return closing + "    "
}

func isBlank(n *xmlquery.Node) bool {
	return n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) == ""
}

// removeElement detaches n along with the indentation text in front of it.
func removeElement(n *xmlquery.Node) {
	if prev := n.PrevSibling; prev != nil && isBlank(prev) {
		xmlquery.RemoveFromTree(prev)
	}
	xmlquery.RemoveFromTree(n)
}

// textOf returns the text content of n as written, whitespace included.
func textOf(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	return n.InnerText()
}

// writeFileAtomic replaces path through a temporary file in the same
// directory, keeping the existing file mode.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
