package corpus

// Document is the set of distinct words appearing in one email. Word
// multiplicity inside a file is ignored: a word that shows up five times
// still counts as a single feature.
type Document map[string]struct{}

// NewDocument builds a document from a word list, collapsing duplicates.
func NewDocument(words []string) Document {
	doc := make(Document, len(words))
	for _, word := range words {
		doc[word] = struct{}{}
	}
	return doc
}

// Contains reports whether the document holds the given word.
func (d Document) Contains(word string) bool {
	_, ok := d[word]
	return ok
}

// Len returns the number of distinct words in the document.
func (d Document) Len() int {
	return len(d)
}
