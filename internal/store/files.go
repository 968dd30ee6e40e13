package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/pelletier/go-toml/v2"

	"todo-cli/internal/model"
)

// Files reads and writes documents as TOML files on the local filesystem.
type Files struct{}

// Load reads the document at path. The document's Path is set from the
// argument; it is never read from the file.
func (Files) Load(path string) (*model.Document, error) {
	path = filepath.Clean(strings.TrimSpace(path))
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	doc, err := Decode(b)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	doc.Path = path
	if doc.Name == "" {
		doc.Name = Stem(path)
	}
	glog.V(1).Infof("loaded %s (%d top-level items)", path, len(doc.Items))
	return doc, nil
}

// Save writes doc to doc.Path atomically, creating the parent directory.
func (Files) Save(doc *model.Document) error {
	if doc == nil {
		return &IoError{Op: "save", Err: errors.New("nil document")}
	}
	path := strings.TrimSpace(doc.Path)
	if path == "" {
		return &IoError{Op: "save", Err: errors.New("document has no path")}
	}
	b, err := Encode(doc)
	if err != nil {
		return &IoError{Op: "save", Path: path, Err: err}
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IoError{Op: "save", Path: path, Err: err}
	}
	if err := atomicWriteFile(dir, filepath.Base(path)+".*.tmp", path, b, 0o644); err != nil {
		return &IoError{Op: "save", Path: path, Err: err}
	}
	glog.V(1).Infof("saved %s", path)
	return nil
}

func (Files) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return &IoError{Op: "remove", Path: path, Err: err}
	}
	glog.V(1).Infof("removed %s", path)
	return nil
}

// Create writes a new empty document at path, refusing to overwrite an
// existing file.
func (Files) Create(path, name string) (*model.Document, error) {
	doc := model.NewDocument(name, path)
	b, err := Encode(doc)
	if err != nil {
		return nil, &IoError{Op: "create", Path: path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &IoError{Op: "create", Path: path, Err: err}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, &IoError{Op: "create", Path: path, Err: fs.ErrExist}
		}
		return nil, &IoError{Op: "create", Path: path, Err: err}
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return nil, &IoError{Op: "create", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return nil, &IoError{Op: "create", Path: path, Err: err}
	}
	return doc, nil
}

// Decode parses a TOML document. Missing lists decode as empty.
func Decode(b []byte) (*model.Document, error) {
	var doc model.Document
	if err := toml.Unmarshal(b, &doc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("line %d column %d: %w", row, col, err)
		}
		return nil, err
	}
	doc.Name = strings.TrimSpace(doc.Name)
	if doc.Items == nil {
		doc.Items = []model.Node{}
	}
	return &doc, nil
}

func Encode(doc *model.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Stem is the file name without directory and extension.
func Stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// CanonicalPath resolves name inside dir to an absolute "<dir>/<name>.todo".
func CanonicalPath(dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("name is empty")
	}
	if strings.ContainsRune(name, filepath.Separator) {
		return "", fmt.Errorf("name %q must not contain a path separator", name)
	}
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	dir = ExpandHome(dir)
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	return abs, nil
}
