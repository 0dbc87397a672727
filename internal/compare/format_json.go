package compare

import (
	"encoding/json"
)

// JSONFormatter formats a comparison session as JSON.
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output for a session document.
func (jf *JSONFormatter) Format(doc Document) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
