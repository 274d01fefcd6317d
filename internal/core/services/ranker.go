package services

import (
	"sort"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
)

// rankCorpus scores every vector of an indexed corpus against the
// query vector and returns the top k matches. Ordering is fully
// deterministic: score descending, ties broken by ordinal ascending.
// If the corpus holds fewer than k sections, all of them are returned.
func rankCorpus(ic *IndexedCorpus, query []float32, k int) ([]domain.Match, error) {
	if ic.Len() == 0 {
		return []domain.Match{}, nil
	}

	if len(query) != ic.Dimensions() {
		return nil, &domain.DimensionMismatchError{
			Corpus: ic.Sections[0].Corpus,
			Got:    len(query),
			Want:   ic.Dimensions(),
		}
	}

	type scored struct {
		pos   int
		score float64
	}

	scores := make([]scored, ic.Len())
	for i, vec := range ic.Vectors {
		scores[i] = scored{pos: i, score: Cosine(query, vec)}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return ic.Sections[scores[i].pos].Ordinal < ic.Sections[scores[j].pos].Ordinal
	})

	if k > len(scores) {
		k = len(scores)
	}

	matches := make([]domain.Match, k)
	for i := 0; i < k; i++ {
		sec := ic.Sections[scores[i].pos]
		matches[i] = domain.Match{
			Corpus:      sec.Corpus,
			Number:      sec.Number,
			Title:       sec.Title,
			Description: sec.Description,
			Score:       scores[i].score,
			Ordinal:     sec.Ordinal,
		}
	}

	return matches, nil
}

// mergeMatches sorts concatenated per-corpus match lists into one
// global ranking and cuts it to k. Ties are broken by corpus
// identifier, then ordinal, so the merged order is deterministic.
func mergeMatches(matches []domain.Match, k int) []domain.Match {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Corpus != matches[j].Corpus {
			return matches[i].Corpus < matches[j].Corpus
		}
		return matches[i].Ordinal < matches[j].Ordinal
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches
}
