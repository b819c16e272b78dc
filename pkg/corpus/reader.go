package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// ListFiles returns the full paths of all regular files in folder. The
// order is whatever the directory enumeration yields; callers must not
// rely on it.
func ListFiles(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder %s: %v", folder, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(folder, entry.Name()))
	}

	return files, nil
}

// WordsInFile returns every whitespace-separated word in the file at
// path. The file is decoded as ISO-8859-1, where every byte value is a
// valid character, so decoding itself cannot fail on any input.
func WordsInFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	reader := charmap.ISO8859_1.NewDecoder().Reader(f)
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}

	return strings.Fields(string(data)), nil
}

// ReadDocument tokenizes the file at path into a document.
func ReadDocument(path string) (Document, error) {
	words, err := WordsInFile(path)
	if err != nil {
		return nil, err
	}
	return NewDocument(words), nil
}

// ReadFolder tokenizes every file in folder into a document.
func ReadFolder(folder string) ([]Document, error) {
	files, err := ListFiles(folder)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(files))
	for _, file := range files {
		doc, err := ReadDocument(file)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
