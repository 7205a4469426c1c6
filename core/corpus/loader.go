package corpus

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/ulikunitz/xz"

	"github.com/versewright/versed/core/errors"
)

// wordQuery selects every word record in a corpus document. Compiled once;
// corpus loads reuse it.
var wordQuery = xpath.MustCompile("//word")

// xzMagic is the 6-byte header of an XZ stream.
var xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// LoadFile reads a corpus file and parses it. The file may be plain XML
// or an xz-compressed XML stream; compression is detected by magic bytes,
// not file extension.
func LoadFile(path string) ([]Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return Parse(data, path)
}

// Parse decodes corpus XML into words. The path argument is used only in
// error messages.
func Parse(data []byte, path string) ([]Word, error) {
	if bytes.HasPrefix(data, xzMagic) {
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, &errors.ParseError{Format: "xz", Path: path, Message: "corrupt stream header", Err: err}
		}
		data, err = io.ReadAll(r)
		if err != nil {
			return nil, &errors.ParseError{Format: "xz", Path: path, Message: "corrupt stream body", Err: err}
		}
	}

	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &errors.ParseError{Format: "XML", Path: path, Message: "not well-formed", Err: err}
	}

	nodes := xmlquery.QuerySelectorAll(doc, wordQuery)
	if len(nodes) == 0 {
		return nil, errors.NewParse("corpus", path, "no word records")
	}

	words := make([]Word, 0, len(nodes))
	for i, n := range nodes {
		w, err := wordFromNode(n)
		if err != nil {
			return nil, errors.Wrapf(err, "word record %d in %s", i+1, path)
		}
		if err := w.Validate(); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

func wordFromNode(n *xmlquery.Node) (Word, error) {
	var w Word
	var err error

	if w.Book, err = intAttr(n, "book"); err != nil {
		return w, err
	}
	if w.Chapter, err = intAttr(n, "chapter"); err != nil {
		return w, err
	}
	if w.Verse, err = intAttr(n, "verse"); err != nil {
		return w, err
	}
	if w.Position, err = intAttr(n, "pos"); err != nil {
		return w, err
	}
	w.Text = n.SelectAttr("text")
	w.Punct = n.SelectAttr("punct")
	if w.Italic, err = boolAttr(n, "italic"); err != nil {
		return w, err
	}
	if w.Open, err = boolAttr(n, "open"); err != nil {
		return w, err
	}
	if w.Close, err = boolAttr(n, "close"); err != nil {
		return w, err
	}
	return w, nil
}

func intAttr(n *xmlquery.Node, name string) (int, error) {
	raw := n.SelectAttr(name)
	if raw == "" {
		return 0, errors.NewValidation(name, "attribute missing")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidation(name, fmt.Sprintf("not a number: %q", raw))
	}
	return v, nil
}

func boolAttr(n *xmlquery.Node, name string) (bool, error) {
	switch raw := n.SelectAttr(name); raw {
	case "", "false", "0":
		return false, nil
	case "true", "1":
		return true, nil
	default:
		return false, errors.NewValidation(name, fmt.Sprintf("not a boolean: %q", raw))
	}
}
