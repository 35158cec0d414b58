package backend

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/gradecast/internal/features"
)

// ForestFormatMajor is the artifact format major version this build reads.
const ForestFormatMajor = "v1"

//go:embed forest_schema.json
var forestSchemaJSON []byte

var forestSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(forestSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse artifact schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	const url = "schema://tree-ensemble.json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add artifact schema: %w", err)
	}
	return c.Compile(url)
})

// forestArtifact is the on-disk JSON export of a trained tree ensemble.
type forestArtifact struct {
	FormatVersion string       `json:"format_version"`
	Name          string       `json:"name"`
	Algorithm     string       `json:"algorithm"`
	Accuracy      float64      `json:"accuracy"`
	Features      []string     `json:"features"`
	Classes       []string     `json:"classes"`
	Trees         []forestTree `json:"trees"`
}

type forestTree struct {
	Nodes []forestNode `json:"nodes"`
}

// forestNode is either a split (Feature set) or a leaf (Value set).
// Splits send x[Feature] <= Threshold to Left, everything else to Right.
type forestNode struct {
	Feature   *int      `json:"feature,omitempty"`
	Threshold float64   `json:"threshold,omitempty"`
	Left      int       `json:"left,omitempty"`
	Right     int       `json:"right,omitempty"`
	Value     []float64 `json:"value,omitempty"`
}

// Forest is a tree-ensemble classifier loaded from a JSON artifact.
// Each tree votes with its normalized leaf distribution and the class with
// the highest mean probability wins. Safe for concurrent use.
type Forest struct {
	info  ModelInfo
	trees []forestTree
}

var _ Backend = (*Forest)(nil)

// LoadForest reads and checks the artifact at path. Any problem is
// reported as a *StartupError.
func LoadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StartupError{Backend: "forest", Source: path, Err: err}
	}
	f, err := ParseForest(data)
	if err != nil {
		return nil, &StartupError{Backend: "forest", Source: path, Err: err}
	}
	return f, nil
}

// ParseForest decodes and checks an artifact held in memory.
func ParseForest(data []byte) (*Forest, error) {
	schema, err := forestSchema()
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("artifact does not match schema: %w", err)
	}

	var art forestArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}

	if !semver.IsValid(art.FormatVersion) {
		return nil, fmt.Errorf("invalid format_version %q", art.FormatVersion)
	}
	if major := semver.Major(art.FormatVersion); major != ForestFormatMajor {
		return nil, fmt.Errorf("unsupported format_version %s (want %s.x)", art.FormatVersion, ForestFormatMajor)
	}
	if !slices.Equal(art.Features, features.Columns()) {
		return nil, fmt.Errorf("feature order %v does not match %v", art.Features, features.Columns())
	}
	for i, t := range art.Trees {
		if err := checkTree(t, len(art.Classes)); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}

	name := art.Name
	if name == "" {
		name = "Tree Ensemble"
	}
	algorithm := art.Algorithm
	if algorithm == "" {
		algorithm = "Random Forest"
	}

	return &Forest{
		info: ModelInfo{
			Name:      name,
			Algorithm: algorithm,
			Accuracy:  art.Accuracy,
			Classes:   slices.Clone(art.Classes),
		},
		trees: art.Trees,
	}, nil
}

// checkTree enforces that every split points forward to existing nodes,
// which also rules out cycles, and that leaves carry one weight per class.
func checkTree(t forestTree, numClasses int) error {
	for i, n := range t.Nodes {
		if n.Feature == nil {
			if len(n.Value) != numClasses {
				return fmt.Errorf("node %d: leaf has %d weights, want %d", i, len(n.Value), numClasses)
			}
			var sum float64
			for _, v := range n.Value {
				sum += v
			}
			if sum <= 0 {
				return fmt.Errorf("node %d: leaf weights sum to zero", i)
			}
			continue
		}
		if *n.Feature >= features.NumFields {
			return fmt.Errorf("node %d: feature index %d out of range", i, *n.Feature)
		}
		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(t.Nodes) {
				return fmt.Errorf("node %d: child index %d out of range", i, child)
			}
		}
	}
	return nil
}

// Predict returns the class with the highest mean leaf probability.
// Ties go to the class listed first.
func (f *Forest) Predict(ctx context.Context, rec features.Record) (Label, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	probs := f.Probabilities(rec)
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return Label(f.info.Classes[best]), nil
}

// Probabilities returns the mean class distribution over all trees, in the
// order of Info().Classes.
func (f *Forest) Probabilities(rec features.Record) []float64 {
	x := rec.Values()
	probs := make([]float64, len(f.info.Classes))
	for _, t := range f.trees {
		leaf := t.leaf(x)
		var sum float64
		for _, v := range leaf {
			sum += v
		}
		for i, v := range leaf {
			probs[i] += v / sum
		}
	}
	for i := range probs {
		probs[i] /= float64(len(f.trees))
	}
	return probs
}

func (t forestTree) leaf(x []float64) []float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Feature == nil {
			return n.Value
		}
		if x[*n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// Info describes the loaded ensemble.
func (f *Forest) Info() ModelInfo {
	info := f.info
	info.Classes = slices.Clone(f.info.Classes)
	return info
}

// NumTrees returns the ensemble size.
func (f *Forest) NumTrees() int {
	return len(f.trees)
}
