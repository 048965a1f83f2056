package classifier

// LabelEncoder maps one categorical field's string values onto the
// integer codes the model was trained with. Classes keep the order the
// training encoder assigned them, so the code of a value is its index.
type LabelEncoder struct {
	Classes []string `json:"classes"`

	index map[string]int
}

// SentinelCode is substituted for categorical values the trained encoder
// has never seen. Unknown values degrade gracefully instead of failing
// the whole request.
const SentinelCode = 0.0

func (e *LabelEncoder) buildIndex() {
	e.index = make(map[string]int, len(e.Classes))
	for i, c := range e.Classes {
		e.index[c] = i
	}
}

// Transform returns the learned code for value. The second return is
// false when the value was unseen during training and the sentinel code
// was substituted instead.
func (e *LabelEncoder) Transform(value string) (float64, bool) {
	if i, ok := e.index[value]; ok {
		return float64(i), true
	}
	return SentinelCode, false
}
