package items

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Tag marks an item with a behavior
type Tag string

// Item tags
const (
	TagWeapon                        Tag = "WEAPON"
	TagFood                          Tag = "FOOD"
	TagClock                         Tag = "CLOCK"
	TagBook                          Tag = "BOOK"
	TagDecomposes                    Tag = "DECOMPOSES"
	TagRepairable                    Tag = "REPAIRABLE"
	TagWeightProportionalToIntegrity Tag = "WEIGHT_PROPORTIONAL_TO_INTEGRITY"
)

var knownTags = map[Tag]struct{}{
	TagWeapon:                        {},
	TagFood:                          {},
	TagClock:                         {},
	TagBook:                          {},
	TagDecomposes:                    {},
	TagRepairable:                    {},
	TagWeightProportionalToIntegrity: {},
}

// ParseTag resolves a tag name case-insensitively
func ParseTag(name string) (Tag, error) {
	tag := Tag(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := knownTags[tag]; !ok {
		return "", errors.InvalidArgumentf("unknown item tag %q", name)
	}
	return tag, nil
}

// TagSet is an immutable set of tags
type TagSet struct {
	tags map[Tag]struct{}
}

// NewTagSet builds a set from tags
func NewTagSet(tags ...Tag) TagSet {
	set := TagSet{tags: make(map[Tag]struct{}, len(tags))}
	for _, t := range tags {
		set.tags[t] = struct{}{}
	}
	return set
}

// Has reports whether the tag is present
func (s TagSet) Has(tag Tag) bool {
	_, ok := s.tags[tag]
	return ok
}

// List returns the tags in lexical order
func (s TagSet) List() []Tag {
	out := make([]Tag, 0, len(s.tags))
	for t := range s.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
