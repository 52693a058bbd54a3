// Package forest evaluates a random-forest classifier exported from
// scikit-learn. The artifact mirrors each estimator's tree_ arrays.
package forest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
)

const FormatV1 = "plantcare-forest/v1"

const leaf = -1

var ErrFeatureCount = errors.New("feature vector length does not match model")

type Tree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

type Artifact struct {
	Format       string   `json:"format"`
	FeatureNames []string `json:"feature_names"`
	Classes      []string `json:"classes"`
	Trees        []Tree   `json:"trees"`
}

type Forest struct {
	features []string
	classes  []string
	trees    []Tree
}

type Prediction struct {
	Label         string
	Probabilities map[string]float64
}

// Load reads an artifact from path and checks it against the expected
// feature order.
func Load(path string, features []string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	return New(a, features)
}

func New(a Artifact, features []string) (*Forest, error) {
	if a.Format != "" && a.Format != FormatV1 {
		return nil, fmt.Errorf("unsupported artifact format %q", a.Format)
	}
	if len(a.FeatureNames) != len(features) {
		return nil, fmt.Errorf("model has %d features, expected %d", len(a.FeatureNames), len(features))
	}
	for i, name := range features {
		if a.FeatureNames[i] != name {
			return nil, fmt.Errorf("feature %d is %q, expected %q", i, a.FeatureNames[i], name)
		}
	}
	if len(a.Classes) == 0 {
		return nil, errors.New("model has no classes")
	}
	if len(a.Trees) == 0 {
		return nil, errors.New("model has no trees")
	}
	for i := range a.Trees {
		if err := validateTree(&a.Trees[i], len(features), len(a.Classes)); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}

	return &Forest{
		features: append([]string(nil), a.FeatureNames...),
		classes:  append([]string(nil), a.Classes...),
		trees:    a.Trees,
	}, nil
}

func validateTree(t *Tree, nFeatures, nClasses int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return errors.New("empty tree")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return errors.New("node arrays have different lengths")
	}
	for i := 0; i < n; i++ {
		if len(t.Value[i]) != nClasses {
			return fmt.Errorf("node %d has %d class values, expected %d", i, len(t.Value[i]), nClasses)
		}
		l, r := t.ChildrenLeft[i], t.ChildrenRight[i]
		if l == leaf && r == leaf {
			if floats.Sum(t.Value[i]) <= 0 {
				return fmt.Errorf("leaf %d has no samples", i)
			}
			continue
		}
		if l <= i || r <= i || l >= n || r >= n {
			return fmt.Errorf("node %d has invalid children %d/%d", i, l, r)
		}
		if f := t.Feature[i]; f < 0 || f >= nFeatures {
			return fmt.Errorf("node %d splits on unknown feature %d", i, f)
		}
	}
	return nil
}

func (f *Forest) Classes() []string {
	return append([]string(nil), f.classes...)
}

func (f *Forest) Features() []string {
	return append([]string(nil), f.features...)
}

func (f *Forest) NumTrees() int {
	return len(f.trees)
}

// PredictProba averages the normalized leaf distributions of every tree.
func (f *Forest) PredictProba(x []float64) ([]float64, error) {
	if len(x) != len(f.features) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(x), len(f.features))
	}
	proba := make([]float64, len(f.classes))
	for i := range f.trees {
		dist := f.trees[i].leafValue(x)
		floats.AddScaled(proba, 1/floats.Sum(dist), dist)
	}
	floats.Scale(1/float64(len(f.trees)), proba)
	return proba, nil
}

// Predict returns the most probable label (first on ties) and the full
// distribution keyed by label.
func (f *Forest) Predict(x []float64) (Prediction, error) {
	proba, err := f.PredictProba(x)
	if err != nil {
		return Prediction{}, err
	}
	probs := make(map[string]float64, len(f.classes))
	for i, c := range f.classes {
		probs[c] = proba[i]
	}
	return Prediction{
		Label:         f.classes[floats.MaxIdx(proba)],
		Probabilities: probs,
	}, nil
}

func (t *Tree) leafValue(x []float64) []float64 {
	node := 0
	for t.ChildrenLeft[node] != leaf {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}
