package gherkin_parser

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
)

const (
	FeatureExtension = ".feature"
)

// FeatureFile is a parsed feature file with its compiled pickles.
type FeatureFile struct {
	Path     string
	Document *messages.GherkinDocument
	Pickles  []*messages.Pickle
}

func SearchFeatureFilesIn(directories []string) ([]string, error) {
	featureFiles := make([]string, 0)

	for _, directory := range directories {
		err := filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), FeatureExtension) {
				featureFiles = append(featureFiles, filepath.ToSlash(path))
			}
			return nil
		})

		if err != nil {
			return nil, fmt.Errorf("could not search feature files in %s: %w", directory, err)
		}
	}
	return featureFiles, nil
}

func ParseGherkinFile(reader io.Reader) (*messages.GherkinDocument, error) {
	id := (&messages.Incrementing{}).NewId
	document, err := gherkin.ParseGherkinDocument(reader, id)
	if err != nil {
		return nil, err
	}
	return document, nil
}

// LoadFeatureFile parses the feature file at path and compiles its pickles.
// Document and pickle ids come from one generator so they never collide.
func LoadFeatureFile(path string) (*FeatureFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file %s: %w", path, err)
	}

	ids := &messages.Incrementing{}
	document, err := gherkin.ParseGherkinDocument(bytes.NewReader(content), ids.NewId)
	if err != nil {
		return nil, fmt.Errorf("gherkin parse error in file %s: %w", path, err)
	}

	uri := filepath.ToSlash(path)
	document.Uri = uri

	return &FeatureFile{
		Path:     uri,
		Document: document,
		Pickles:  gherkin.Pickles(*document, uri, ids.NewId),
	}, nil
}

// LoadFeatures loads every feature file found in directories, in search
// order.
func LoadFeatures(directories []string) ([]*FeatureFile, error) {
	paths, err := SearchFeatureFilesIn(directories)
	if err != nil {
		return nil, err
	}

	files := make([]*FeatureFile, 0, len(paths))
	for _, path := range paths {
		file, err := LoadFeatureFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}
