// Package model holds the pre-trained probability tables of the boundary
// classifier and scores fragments against them.
//
// Three tables make up a model:
//   - joint features: class-conditional weights keyed "<class>,<feature>",
//     including the class priors under the feature "<prior>"
//   - lowercase words: how often a word occurs lowercased
//   - non-abbreviation words: how often a word occurs without a final period
//
// A Model is immutable once built and safe for concurrent use.
package model

import (
	"fmt"
	"math"
	"strings"
)

const (
	// PriorFeature is the joint feature holding the class priors.
	PriorFeature = "<prior>"

	// PriorExponent weights the prior against the per-feature evidence.
	PriorExponent = 4
)

// Tables is the persisted, untyped form of a model.
type Tables struct {
	JointFeatures        map[string]float64
	LowercaseWords       map[string]float64
	NonAbbreviationWords map[string]float64
}

// Weights are the class-conditional weights of one feature. A class missing
// from the persisted tables carries the neutral weight 1.
type Weights struct {
	Class0 float64
	Class1 float64
}

// Model is a loaded boundary classifier.
type Model struct {
	joint   map[string]Weights
	lower   map[string]float64
	nonAbbr map[string]float64

	// Priors are kept in log space; prior^4 overflows for large counts.
	logPrior0 float64
	logPrior1 float64
}

// New builds a Model from tables. Joint keys must carry a "0," or "1,"
// class prefix, weights must be finite and non-negative, and both priors must
// be present.
func New(t Tables) (*Model, error) {
	m := &Model{
		joint:   make(map[string]Weights, len(t.JointFeatures)/2),
		lower:   copyCounts(t.LowercaseWords),
		nonAbbr: copyCounts(t.NonAbbreviationWords),
	}

	var prior [2]float64
	var havePrior [2]bool

	for key, v := range t.JointFeatures {
		class, feature, ok := splitJointKey(key)
		if !ok {
			return nil, fmt.Errorf("%w: joint feature key %q has no class prefix", ErrInvalidModel, key)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("%w: joint feature %q has weight %v", ErrInvalidModel, key, v)
		}

		if feature == PriorFeature {
			prior[class] = v
			havePrior[class] = true
			continue
		}

		w, seen := m.joint[feature]
		if !seen {
			w = Weights{Class0: 1, Class1: 1}
		}
		if class == 0 {
			w.Class0 = v
		} else {
			w.Class1 = v
		}
		m.joint[feature] = w
	}

	for class, ok := range havePrior {
		if !ok {
			return nil, fmt.Errorf("%w: missing %d,%s", ErrInvalidModel, class, PriorFeature)
		}
	}

	m.logPrior0 = PriorExponent * math.Log(prior[0])
	m.logPrior1 = PriorExponent * math.Log(prior[1])

	return m, nil
}

// splitJointKey splits "<class>,<feature>". Features may themselves contain
// commas, so only the first one separates.
func splitJointKey(key string) (class int, feature string, ok bool) {
	prefix, feature, found := strings.Cut(key, ",")
	if !found {
		return 0, "", false
	}
	switch prefix {
	case "0":
		return 0, feature, true
	case "1":
		return 1, feature, true
	}
	return 0, "", false
}

func copyCounts(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Feature returns the class weights of a feature.
func (m *Model) Feature(name string) (Weights, bool) {
	w, ok := m.joint[name]
	return w, ok
}

// LowercaseCount returns how often word occurs lowercased.
func (m *Model) LowercaseCount(word string) (float64, bool) {
	v, ok := m.lower[word]
	return v, ok
}

// NonAbbreviationCount returns how often word occurs without a final period.
func (m *Model) NonAbbreviationCount(word string) (float64, bool) {
	v, ok := m.nonAbbr[word]
	return v, ok
}

// Priors returns the smoothed class priors (the stored priors raised to
// PriorExponent).
func (m *Model) Priors() (prior0, prior1 float64) {
	return math.Exp(m.logPrior0), math.Exp(m.logPrior1)
}

// Stats summarizes table sizes.
type Stats struct {
	JointFeatures        int
	LowercaseWords       int
	NonAbbreviationWords int
}

// Stats returns the number of entries in each table.
func (m *Model) Stats() Stats {
	return Stats{
		JointFeatures:        len(m.joint),
		LowercaseWords:       len(m.lower),
		NonAbbreviationWords: len(m.nonAbbr),
	}
}
