// SPDX-License-Identifier: LGPL-3.0-or-later

// Package matcher scores peers against a capability query, per spec.md
// section 4.7: a weighted sum of per-capability type/name/version/
// metadata scores, averaged over the best match per required capability,
// with a preferredPeers bump and reputation tie-break on near-equal
// scores.
package matcher

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ecco-mesh/ecco/state"
)

// Weights used by Score, per spec.md section 4.7.
const (
	weightType     = 0.3
	weightName     = 0.3
	weightVersion  = 0.1
	weightFeature  = 0.2
	weightMetadata = 0.1
)

// minRequiredScore is the floor a required capability's best peer match
// must clear for that peer to be included in results at all.
const minRequiredScore = 0.5

// preferredBump is added (capped at 1.0) when a peer is in preferredPeers.
const preferredBump = 0.1

// tieEpsilon is the score delta below which two peers are tie-broken by
// reputation instead of score ordering.
const tieEpsilon = 0.01

// Query is the input to Match, per spec.md section 4.7.
type Query struct {
	RequiredCapabilities []state.Capability
	PreferredPeers       []string
}

// Result pairs a peer with its computed match score.
type Result struct {
	Peer  state.PeerInfo
	Score float64
}

// Match scores every peer against query and returns the peers that clear
// the inclusion bar, sorted descending by score with reputation as the
// tie-break, per spec.md section 4.7.
func Match(peers []state.PeerInfo, query Query) []Result {
	preferred := make(map[string]bool, len(query.PreferredPeers))
	for _, id := range query.PreferredPeers {
		preferred[id] = true
	}

	results := make([]Result, 0, len(peers))
	for _, peer := range peers {
		score, include := scorePeer(peer, query.RequiredCapabilities)
		if !include {
			continue
		}
		if preferred[peer.ID] {
			score += preferredBump
			if score > 1.0 {
				score = 1.0
			}
		}
		results = append(results, Result{Peer: peer, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		delta := results[i].Score - results[j].Score
		if delta < 0 {
			delta = -delta
		}
		if delta <= tieEpsilon {
			return reputationOf(results[i].Peer) > reputationOf(results[j].Peer)
		}
		return results[i].Score > results[j].Score
	})
	return results
}

// SelfMatches reports whether a synthetic self-peer carrying
// selfCapabilities satisfies at least one required capability, per
// spec.md section 4.6's "matcher against a synthetic self-peer".
func SelfMatches(selfCapabilities []state.Capability, required []state.Capability) bool {
	self := state.PeerInfo{ID: "self", Capabilities: selfCapabilities}
	_, include := scorePeer(self, required)
	return include
}

func reputationOf(p state.PeerInfo) float64 {
	if p.Reputation == nil {
		return 0
	}
	return p.Reputation.Score
}

// scorePeer computes the final peer score: sum of best-per-required ÷
// count(required). The peer is included only if the best required match
// is ≥ minRequiredScore and at least one required capability scored
// positive.
func scorePeer(peer state.PeerInfo, required []state.Capability) (float64, bool) {
	if len(required) == 0 {
		return 0, false
	}

	var sum float64
	bestOverall := 0.0
	anyPositive := false
	for _, req := range required {
		best := 0.0
		for _, have := range peer.Capabilities {
			if s := capabilityScore(req, have); s > best {
				best = s
			}
		}
		if best > 0 {
			anyPositive = true
		}
		if best > bestOverall {
			bestOverall = best
		}
		sum += best
	}

	if bestOverall < minRequiredScore || !anyPositive {
		return 0, false
	}
	return sum / float64(len(required)), true
}

// capabilityScore computes the weighted match score between a required
// and an offered capability, per spec.md section 4.7.
func capabilityScore(required, have state.Capability) float64 {
	if required.Type != have.Type {
		return 0
	}

	nameScore := nameMatchScore(required.Name, have.Name)
	if nameScore == 0 {
		return 0
	}

	versionScore := versionMatchScore(required.Version, have.Version)
	metaScore := metadataMatchScore(required.Metadata, have.Metadata)

	return weightType*1.0 +
		weightName*nameScore +
		weightVersion*versionScore +
		weightFeature*metaScore +
		weightMetadata*metaScore
}

func nameMatchScore(required, have string) float64 {
	if required == have {
		return 1.0
	}
	rn, hn := normalizeAlnum(required), normalizeAlnum(have)
	if rn == "" || hn == "" {
		return 0
	}
	if strings.Contains(hn, rn) || strings.Contains(rn, hn) {
		return 0.7
	}
	if levenshteinSimilarity(rn, hn) > 0.7 {
		return 0.7
	}
	return 0
}

func normalizeAlnum(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// versionMatchScore parses X.Y.Z and scores closeness, per spec.md
// section 4.7; unparseable inputs score 0.5.
func versionMatchScore(required, have string) float64 {
	rMaj, rMin, rPatch, rOk := parseSemVer(required)
	hMaj, hMin, hPatch, hOk := parseSemVer(have)
	if !rOk || !hOk {
		return 0.5
	}
	if rMaj == hMaj && rMin == hMin && rPatch == hPatch {
		return 1.0
	}
	if rMaj == hMaj && rMin == hMin {
		return 0.9
	}
	if rMaj == hMaj && hMin > rMin {
		return 0.7
	}
	if rMaj == hMaj {
		return 0.5
	}
	return 0.2
}

func parseSemVer(v string) (major, minor, patch int, ok bool) {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var err error
	if major, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, false
	}
	if minor, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, false
	}
	if patch, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, false
	}
	return major, minor, patch, true
}

// metadataMatchScore averages per-key scores: exact match → 1, fuzzy
// string match → 0.7, "features" arrays → overlap fraction.
func metadataMatchScore(required, have map[string]interface{}) float64 {
	if len(required) == 0 {
		return 1.0
	}
	if have == nil {
		return 0
	}

	var total float64
	for key, reqVal := range required {
		haveVal, ok := have[key]
		if !ok {
			continue
		}
		if key == "features" {
			total += featureOverlap(reqVal, haveVal)
			continue
		}
		total += scalarMatchScore(reqVal, haveVal)
	}
	return total / float64(len(required))
}

func scalarMatchScore(a, b interface{}) float64 {
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		if as == bs {
			return 1.0
		}
		if levenshteinSimilarity(strings.ToLower(as), strings.ToLower(bs)) > 0.7 {
			return 0.7
		}
		return 0
	}
	if a == b {
		return 1.0
	}
	return 0
}

func featureOverlap(a, b interface{}) float64 {
	af, aok := toStringSlice(a)
	bf, bok := toStringSlice(b)
	if !aok || !bok || len(af) == 0 {
		return 0
	}
	bset := make(map[string]bool, len(bf))
	for _, v := range bf {
		bset[v] = true
	}
	matched := 0
	for _, v := range af {
		if bset[v] {
			matched++
		}
	}
	return float64(matched) / float64(len(af))
}

func toStringSlice(v interface{}) ([]string, bool) {
	arr, ok := v.([]interface{})
	if !ok {
		if ss, ok := v.([]string); ok {
			return ss, true
		}
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
