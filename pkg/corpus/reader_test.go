package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestNewDocumentCollapsesDuplicates(t *testing.T) {
	doc := NewDocument([]string{"free", "money", "free", "free"})

	if doc.Len() != 2 {
		t.Errorf("Len = %d, expected 2", doc.Len())
	}
	if !doc.Contains("free") || !doc.Contains("money") {
		t.Error("expected both distinct words to be present")
	}
	if doc.Contains("meeting") {
		t.Error("unexpected word in document")
	}
}

func TestWordsInFileSplitsOnWhitespace(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mail.txt", []byte("free  money\nwin\tnow\nfree"))

	words, err := WordsInFile(path)
	if err != nil {
		t.Fatalf("WordsInFile: %v", err)
	}

	expected := []string{"free", "money", "win", "now", "free"}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("words = %v, expected %v", words, expected)
	}
}

func TestWordsInFileLatin1(t *testing.T) {
	// Every byte value is a valid ISO-8859-1 character, so arbitrary
	// byte content must decode without error. 0xE9 is é.
	dir := t.TempDir()
	path := writeFile(t, dir, "mail.txt", []byte{'c', 'a', 'f', 0xE9, ' ', 0xFF})

	words, err := WordsInFile(path)
	if err != nil {
		t.Fatalf("WordsInFile: %v", err)
	}

	expected := []string{"café", "ÿ"}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("words = %v, expected %v", words, expected)
	}
}

func TestWordsInFileMissing(t *testing.T) {
	if _, err := WordsInFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "spam1.txt", []byte("a"))
	writeFile(t, dir, "ham1.txt", []byte("b"))
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := ListFiles(dir)
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}

	sort.Strings(files)
	expected := []string{
		filepath.Join(dir, "ham1.txt"),
		filepath.Join(dir, "spam1.txt"),
	}
	if !reflect.DeepEqual(files, expected) {
		t.Errorf("files = %v, expected %v", files, expected)
	}
}

func TestListFilesMissingFolder(t *testing.T) {
	if _, err := ListFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing folder")
	}
}

func TestReadFolder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.txt", []byte("free money free"))
	writeFile(t, dir, "two.txt", []byte("meeting"))

	docs, err := ReadFolder(dir)
	if err != nil {
		t.Fatalf("ReadFolder: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("got %d documents, expected 2", len(docs))
	}

	total := 0
	for _, doc := range docs {
		total += doc.Len()
	}
	// "free" collapses inside its document.
	if total != 3 {
		t.Errorf("total distinct words = %d, expected 3", total)
	}
}
