package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/guttosm/salinity-service/internal/domain/model"
)

// inputDocument is the file/stdin form: measured ions plus optional assumptions.
type inputDocument struct {
	Inputs      *model.IonMeasurement `json:"inputs"`
	Assumptions json.RawMessage       `json:"assumptions,omitempty"`
}

// inputSource selects where the measurement comes from. Inline JSON wins over
// a document path.
type inputSource struct {
	Path            string
	InputsJSON      string
	AssumptionsJSON string
}

// load resolves the measurement and the assumptions overlaid on base.
// Document assumptions apply first, then --assumptions-json.
func (src inputSource) load(stdin io.Reader, base model.Assumptions) (model.IonMeasurement, model.Assumptions, error) {
	var (
		ions model.IonMeasurement
		raw  json.RawMessage
	)

	switch {
	case src.InputsJSON != "":
		if err := json.Unmarshal([]byte(src.InputsJSON), &ions); err != nil {
			return ions, base, inputError(ErrInputsJSON, "", err)
		}
	case src.Path != "":
		data, err := src.read(stdin)
		if err != nil {
			return ions, base, err
		}
		var doc inputDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return ions, base, inputError(ErrInputDocument, "", err)
		}
		if doc.Inputs == nil {
			return ions, base, inputError(ErrInputDocument, "", fmt.Errorf("missing field `inputs`"))
		}
		ions, raw = *doc.Inputs, doc.Assumptions
	default:
		return ions, base, inputError(ErrMissingInputData, "", nil)
	}

	assumptions, err := base.Overlay(raw)
	if err != nil {
		return ions, base, inputError(ErrInputDocument, "", err)
	}
	if src.AssumptionsJSON != "" {
		assumptions, err = assumptions.Overlay(json.RawMessage(src.AssumptionsJSON))
		if err != nil {
			return ions, base, inputError(ErrAssumptionsJSON, "", err)
		}
	}

	return ions, assumptions, nil
}

func (src inputSource) read(stdin io.Reader) ([]byte, error) {
	if src.Path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, inputError(ErrReadStdin, "", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, inputError(ErrReadFile, fmt.Sprintf("Error reading file '%s'", src.Path), err)
	}
	return data, nil
}
