package classifier

import "fmt"

// DecisionTree holds a trained decision tree exported as flat node arrays:
// node i branches left when x[Feature[i]] <= Threshold[i]. Leaves are
// marked with ChildrenLeft[i] == -1 and carry per-class sample counts in
// Value[i].
type DecisionTree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

const leafMarker = -1

func (t *DecisionTree) validate(numFeatures, numClasses int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("tree has no nodes")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("inconsistent tree arrays: %d nodes, %d right, %d feature, %d threshold, %d value",
			n, len(t.ChildrenRight), len(t.Feature), len(t.Threshold), len(t.Value))
	}

	for i := 0; i < n; i++ {
		if len(t.Value[i]) != numClasses {
			return fmt.Errorf("node %d has %d class counts, model has %d classes", i, len(t.Value[i]), numClasses)
		}

		left, right := t.ChildrenLeft[i], t.ChildrenRight[i]
		if left == leafMarker {
			continue
		}
		if right == leafMarker {
			return fmt.Errorf("node %d has a left child but no right child", i)
		}
		if left <= i || left >= n || right <= i || right >= n {
			return fmt.Errorf("node %d has out-of-range children (%d, %d)", i, left, right)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= numFeatures {
			return fmt.Errorf("node %d splits on feature %d, model has %d features", i, t.Feature[i], numFeatures)
		}
	}

	return nil
}

// PredictProba walks the tree for one encoded feature vector and returns
// the class probability distribution from the reached leaf.
func (t *DecisionTree) PredictProba(x []float64) ([]float64, error) {
	i := 0
	for t.ChildrenLeft[i] != leafMarker {
		f := t.Feature[i]
		if f >= len(x) {
			return nil, fmt.Errorf("feature vector has %d values, node %d needs feature %d", len(x), i, f)
		}
		if x[f] <= t.Threshold[i] {
			i = t.ChildrenLeft[i]
		} else {
			i = t.ChildrenRight[i]
		}
	}

	counts := t.Value[i]
	total := 0.0
	for _, c := range counts {
		total += c
	}

	probs := make([]float64, len(counts))
	if total == 0 {
		return probs, nil
	}
	for j, c := range counts {
		probs[j] = c / total
	}

	return probs, nil
}
