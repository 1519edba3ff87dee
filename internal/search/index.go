package search

import (
	"sort"
	"strings"
	"sync"
)

// DocumentMeta carries the destination fields the retriever needs to turn a
// matched document back into a search result.
type DocumentMeta struct {
	Name       string
	Country    string
	Latitude   float64
	Longitude  float64
	Population int64
	Activities []string
	Tags       []string
	BudgetTier string
	Type       string
}

type Document struct {
	Content string
	Meta    DocumentMeta
}

// Index is an in-memory keyword index over destination documents. Reads take
// the read lock; Replace swaps the whole document set under the write lock, so
// a refresh never races an in-flight search.
type Index struct {
	mu   sync.RWMutex
	docs []Document
}

func NewIndex() *Index {
	return &Index{}
}

// Replace installs a new document set atomically. Used by the out-of-band
// refresh, never on the request path.
func (idx *Index) Replace(docs []Document) {
	copied := make([]Document, len(docs))
	copy(copied, docs)

	idx.mu.Lock()
	idx.docs = copied
	idx.mu.Unlock()
}

func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.docs)
}

type scoredDoc struct {
	doc   Document
	score float64
	pos   int
}

// Search scores documents by token overlap between the query and the document
// content plus its name and tags. Name hits weigh double; ties keep insertion
// order so results stay deterministic.
func (idx *Index) Search(query string, topK int) []Document {
	if topK <= 0 {
		return nil
	}

	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var scored []scoredDoc
	for i, doc := range idx.docs {
		contentTokens := tokenize(doc.Content)
		nameTokens := tokenize(doc.Meta.Name)
		tagSet := make(map[string]bool, len(doc.Meta.Tags))
		for _, tag := range doc.Meta.Tags {
			tagSet[strings.ToLower(tag)] = true
		}

		var score float64
		for tok := range queryTokens {
			if nameTokens[tok] {
				score += 2
			}
			if contentTokens[tok] {
				score++
			}
			if tagSet[tok] {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, scoredDoc{doc: doc, score: score / float64(len(queryTokens)), pos: i})
		}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		if scored[a].score != scored[b].score {
			return scored[a].score > scored[b].score
		}
		return scored[a].pos < scored[b].pos
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}

	out := make([]Document, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.doc)
	}
	return out
}

func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, field := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if len(field) > 1 {
			tokens[field] = true
		}
	}
	return tokens
}
