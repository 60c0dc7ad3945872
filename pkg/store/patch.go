package store

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tidwall/sjson"
)

// Patch is a merge-patch: only the keys present in the map are overlaid onto
// the target entity, every other field is left untouched. Keys are the JSON
// field names of the target (e.g. "companyName", "yearsExperience").
type Patch map[string]any

// applyPatch overlays patch onto target by round-tripping through JSON.
// Setting each key individually with sjson gives exact only-provided-fields
// semantics. Keys that do not correspond to a field on the target are
// silently dropped during unmarshal, matching the tolerant merge behavior of
// the original snapshot format.
func applyPatch[T any](target T, patch Patch) (merged T, err error) {
	raw, err := json.Marshal(target)
	if err != nil {
		err = errors.Wrap(err, "failed to serialize patch target")
		return merged, err
	}

	for key, value := range patch {
		raw, err = sjson.SetBytes(raw, key, value)
		if err != nil {
			err = errors.Wrapf(err, "failed to apply patch key: %s", key)
			return merged, err
		}
	}

	err = json.Unmarshal(raw, &merged)
	if err != nil {
		err = errors.Wrap(err, "failed to deserialize patched value")
		return merged, err
	}

	return merged, err
}
