package sandhika

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// JoinCandidate reconstructs the surface string a candidate decomposes,
// folding boundaries left to right: a boundary attributed to a sandhi rule
// is rejoined with that rule's forward transformation, an unattributed
// boundary (lexical scan, no-split) is a plain concatenation. Returns
// ok=false only if candidate has no parts, a recorded rule ID no longer
// resolves in kb, or its
// forward application no longer applies — which should never happen for a
// candidate GenerateCandidates itself produced, but Verify checks it
// rather than assuming it.
func JoinCandidate(kb *KB, candidate SplitCandidate) (string, bool) {
	if len(candidate.Parts) == 0 {
		return "", false
	}
	joined := candidate.Parts[0]
	for i := 1; i < len(candidate.Parts); i++ {
		ruleID := ""
		if i-1 < len(candidate.RuleIDs) {
			ruleID = candidate.RuleIDs[i-1]
		}
		if ruleID == "" {
			joined += candidate.Parts[i]
			continue
		}
		rule, ok := kb.RuleByID(ruleID)
		if !ok {
			return "", false
		}
		next, ok := sandhiApplyForward(rule, joined, candidate.Parts[i])
		if !ok {
			return "", false
		}
		joined = next
	}
	return joined, true
}

// Verifier checks the byte-exact reversibility invariant of spec §4.8 and
// falls back to the always-safe no-split candidate when the chosen
// candidate does not reconstruct the original word. It tracks both an in-process
// Statistics() snapshot and Prometheus counters for embedding hosts,
// mirroring the metrics wiring in
// _examples/23skdu-longbow-fletcher/internal/device/metrics.go.
type Verifier struct {
	logger zerolog.Logger

	totalCalls    int64
	fallbackCount int64
	candidateSum  int64

	ruleMatchMu    sync.Mutex
	ruleMatchCount map[string]int64

	verifyTotal   prometheus.Counter
	fallbackTotal prometheus.Counter
	ruleMatches   *prometheus.CounterVec
}

// NewVerifier builds a Verifier, registering its Prometheus collectors
// against reg. A nil registry skips Prometheus registration entirely
// (Statistics() still works), so library consumers who don't run a
// registry pay nothing extra.
func NewVerifier(logger zerolog.Logger, reg prometheus.Registerer) *Verifier {
	v := &Verifier{
		logger:         logger,
		ruleMatchCount: make(map[string]int64),
	}

	factory := promauto.With(reg)
	v.verifyTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "sandhika_verify_total",
		Help: "Total number of word-level tokenization verification attempts.",
	})
	v.fallbackTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "sandhika_verify_fallback_total",
		Help: "Total number of times verification fell back to the no-split candidate.",
	})
	v.ruleMatches = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "sandhika_sandhi_rule_matches_total",
		Help: "Count of accepted splits attributed to each sandhi rule id.",
	}, []string{"rule_id"})

	return v
}

// Verify checks candidate against original, recording statistics either
// way. It returns the candidate unchanged if it round-trips, or the
// always-safe no-split candidate ({original}) if it does not.
func (v *Verifier) Verify(kb *KB, original string, candidate SplitCandidate) SplitCandidate {
	atomic.AddInt64(&v.totalCalls, 1)
	v.verifyTotal.Inc()

	joined, ok := JoinCandidate(kb, candidate)
	if ok && joined == original {
		v.recordRuleMatches(candidate)
		return candidate
	}

	v.logger.Warn().
		Str("word", original).
		Int("candidate_parts", len(candidate.Parts)).
		Str("strategy", candidate.Strategy).
		Msg("sandhi candidate failed round-trip verification, falling back to no-split")

	atomic.AddInt64(&v.fallbackCount, 1)
	v.fallbackTotal.Inc()
	return SafeSplit(original)
}

// SafeSplit returns the trivially reconstructible no-split candidate for
// word: it always exists and Verify always accepts it, guaranteeing
// Tokenize/Detokenize round-trips even under a completely empty or
// misconfigured KB.
func SafeSplit(word string) SplitCandidate {
	return SplitCandidate{Parts: []string{word}, Strategy: "no-split"}
}

func (v *Verifier) recordRuleMatches(candidate SplitCandidate) {
	for _, id := range candidate.RuleIDs {
		if id == "" {
			continue
		}
		v.ruleMatchMu.Lock()
		v.ruleMatchCount[id]++
		v.ruleMatchMu.Unlock()
		v.ruleMatches.WithLabelValues(id).Inc()
	}
}

// recordCandidateCount folds the number of candidates considered for a
// word into the running average reported by Statistics().
func (v *Verifier) recordCandidateCount(n int) {
	atomic.AddInt64(&v.candidateSum, int64(n))
}

// snapshot returns the verifier's contribution to Statistics().
func (v *Verifier) snapshot() (totalCalls, fallbackCount int64, avgCandidates float64, ruleMatches map[string]int64) {
	totalCalls = atomic.LoadInt64(&v.totalCalls)
	fallbackCount = atomic.LoadInt64(&v.fallbackCount)
	sum := atomic.LoadInt64(&v.candidateSum)
	if totalCalls > 0 {
		avgCandidates = float64(sum) / float64(totalCalls)
	}

	v.ruleMatchMu.Lock()
	defer v.ruleMatchMu.Unlock()
	ruleMatches = make(map[string]int64, len(v.ruleMatchCount))
	for k, val := range v.ruleMatchCount {
		ruleMatches[k] = val
	}
	return
}
