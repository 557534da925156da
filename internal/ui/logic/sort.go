package logic

import (
	"sort"
	"strings"

	"storygrip/internal/domain"
)

// Sort keys accepted by StorySorter. The empty key keeps the order the
// search API returned.
const (
	SortByRelevance = ""
	SortByPoints    = "points"
	SortByComments  = "comments"
	SortByRecent    = "recent"
	SortByTitle     = "title"
)

// StorySorter orders a display index slice over a backing story list.
// The backing list itself is never reordered.
type StorySorter struct {
	stories []domain.Story
}

// NewStorySorter creates a new story sorter
func NewStorySorter(stories []domain.Story) *StorySorter {
	return &StorySorter{
		stories: stories,
	}
}

// Sort reorders the given index slice according to the sort key.
// Ties keep the order the search returned.
func (s *StorySorter) Sort(indexes []int, key string) {
	switch key {
	case SortByPoints:
		s.sortDescInt(indexes, func(st domain.Story) int { return st.Points })
	case SortByComments:
		s.sortDescInt(indexes, func(st domain.Story) int { return st.CommentCount })
	case SortByRecent:
		sort.SliceStable(indexes, func(i, j int) bool {
			return s.stories[indexes[i]].CreatedAt.After(s.stories[indexes[j]].CreatedAt)
		})
	case SortByTitle:
		sort.SliceStable(indexes, func(i, j int) bool {
			return strings.ToLower(s.stories[indexes[i]].Title) < strings.ToLower(s.stories[indexes[j]].Title)
		})
	default:
		// Relevance: the API order, i.e. ascending backing index
		sort.Ints(indexes)
	}
}

func (s *StorySorter) sortDescInt(indexes []int, value func(domain.Story) int) {
	sort.SliceStable(indexes, func(i, j int) bool {
		return value(s.stories[indexes[i]]) > value(s.stories[indexes[j]])
	})
}
