package lexicon

import "strings"

// MatchesRegion reports whether a target location refers to the source region.
// An empty target matches every region. Otherwise the lower-cased target must
// contain one of the region's aliases; regions without aliases never match.
func (l *Lexicon) MatchesRegion(sourceRegion, targetLocation string) bool {
	if strings.TrimSpace(targetLocation) == "" {
		return true
	}

	aliases, ok := l.Regions[l.Normalize(sourceRegion)]
	if !ok {
		return false
	}

	return ContainsAny(l.Normalize(targetLocation), aliases)
}
