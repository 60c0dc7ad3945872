package portfolio

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed snapshot.schema.json
var snapshotSchema string

// ValidateSnapshot checks that raw is a structurally sane snapshot. The
// schema only constrains types, never presence, so snapshots written by
// older versions (missing newer fields) still pass.
func ValidateSnapshot(raw []byte) (err error) {
	schemaLoader := gojsonschema.NewStringLoader(snapshotSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		err = errors.Wrap(err, "snapshot schema validation failed to run")
		return err
	}
	if res.Valid() {
		return nil
	}

	// Collect violations into one message
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	err = errors.Errorf("snapshot failed schema validation: %s", strings.Join(msgs, "; "))
	return err
}

// Clone returns a deep copy of the data. Consumers receive clones so the
// store's canonical value can never be mutated from outside.
func (d Data) Clone() (clone Data) {
	raw, err := json.Marshal(d)
	if err != nil {
		// Data contains only plain JSON-compatible fields; marshal cannot
		// fail on a well-formed value. Fall back to the shallow copy.
		clone = d
		return clone
	}
	err = json.Unmarshal(raw, &clone)
	if err != nil {
		clone = d
	}
	return clone
}
