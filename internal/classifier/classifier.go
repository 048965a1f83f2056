// Package classifier wraps the trained decision-tree model and its
// encoders behind a probability lookup keyed by supplier name.
package classifier

import "fmt"

type Classifier struct {
	tree         *DecisionTree
	encoders     map[string]*LabelEncoder
	classes      []string
	classIndex   map[string]int
	featureNames []string
}

// FeatureNames returns the ordered feature schema the model expects.
// The order is a contract fixed at training time.
func (c *Classifier) FeatureNames() []string {
	return c.featureNames
}

// Classes returns the supplier names the model can predict.
func (c *Classifier) Classes() []string {
	return c.classes
}

// IsCategorical reports whether the trained encoders cover a field.
func (c *Classifier) IsCategorical(field string) bool {
	_, ok := c.encoders[field]
	return ok
}

// EncodeCategorical maps a raw categorical value through the field's
// learned encoder. Unseen values come back as the sentinel code with
// ok=false; fields without an encoder also report ok=false.
func (c *Classifier) EncodeCategorical(field, value string) (float64, bool) {
	enc, ok := c.encoders[field]
	if !ok {
		return SentinelCode, false
	}
	return enc.Transform(value)
}

// Vectorize orders a named feature map into the model's feature vector.
// A missing field means the caller and the trained schema disagree,
// which is a configuration problem rather than a bad request.
func (c *Classifier) Vectorize(features map[string]float64) ([]float64, error) {
	x := make([]float64, len(c.featureNames))
	for i, name := range c.featureNames {
		v, ok := features[name]
		if !ok {
			return nil, fmt.Errorf("feature %q missing from encoded input", name)
		}
		x[i] = v
	}
	return x, nil
}

// Probabilities predicts class probabilities for one vector, keyed by
// supplier name.
func (c *Classifier) Probabilities(x []float64) (map[string]float64, error) {
	probs, err := c.tree.PredictProba(x)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	out := make(map[string]float64, len(c.classes))
	for i, name := range c.classes {
		out[name] = probs[i]
	}

	return out, nil
}

// ProbabilityFor returns the model probability for one supplier. A
// supplier the model was never trained on gets 0.0, not an error: the
// catalog may list suppliers absent from the training data.
func (c *Classifier) ProbabilityFor(x []float64, supplierName string) (float64, error) {
	probs, err := c.tree.PredictProba(x)
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}

	idx, ok := c.classIndex[supplierName]
	if !ok {
		return 0.0, nil
	}

	return probs[idx], nil
}
