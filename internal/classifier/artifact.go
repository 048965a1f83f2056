package classifier

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// Artifact file names inside the model directory. All four are produced
// together by the training export and must stay consistent.
const (
	modelFile         = "model.json"
	labelEncodersFile = "label_encoders.json"
	targetEncoderFile = "target_encoder.json"
	featureNamesFile  = "feature_names.json"
)

type targetEncoderArtifact struct {
	Classes []string `json:"classes"`
}

// Load reads the trained classifier artifacts from dir. Any missing or
// malformed file is a startup error; the caller must treat it as fatal.
func Load(dir string) (*Classifier, error) {
	var tree DecisionTree
	if err := readArtifact(dir, modelFile, &tree); err != nil {
		return nil, err
	}

	encoders := map[string]*LabelEncoder{}
	if err := readArtifact(dir, labelEncodersFile, &encoders); err != nil {
		return nil, err
	}

	var target targetEncoderArtifact
	if err := readArtifact(dir, targetEncoderFile, &target); err != nil {
		return nil, err
	}

	var featureNames []string
	if err := readArtifact(dir, featureNamesFile, &featureNames); err != nil {
		return nil, err
	}

	if len(featureNames) == 0 {
		return nil, fmt.Errorf("%s declares no features", featureNamesFile)
	}
	if len(target.Classes) == 0 {
		return nil, fmt.Errorf("%s declares no classes", targetEncoderFile)
	}

	if err := tree.validate(len(featureNames), len(target.Classes)); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", modelFile, err)
	}

	for field, enc := range encoders {
		if enc == nil || len(enc.Classes) == 0 {
			return nil, fmt.Errorf("%s: encoder for %q has no classes", labelEncodersFile, field)
		}
		enc.buildIndex()
	}

	classIndex := make(map[string]int, len(target.Classes))
	for i, name := range target.Classes {
		classIndex[name] = i
	}

	return &Classifier{
		tree:         &tree,
		encoders:     encoders,
		classes:      target.Classes,
		classIndex:   classIndex,
		featureNames: featureNames,
	}, nil
}

func readArtifact(dir, name string, dst any) error {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("read model artifact %s: %w", name, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parse model artifact %s: %w", name, err)
	}

	return nil
}
