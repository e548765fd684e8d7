package main

import (
	"io"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/pinfergo/pinfer/cpt"
	"github.com/pinfergo/pinfer/itree"
)

// loadObservations reads a YAML document mapping interaction keys to a
// hard-evidence value and resolves each value to itree.Absent or
// itree.Present. A value may be spelled as a bool, a 0/1, or the literal
// strings "present"/"absent" — cast.ToBoolE absorbs the first two forms
// the way the teacher's options readers lean on spf13/cast to absorb
// loosely-typed config values rather than hand-rolling a parser per type.
func loadObservations(r io.Reader) (map[string]cpt.Belief, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read observations file")
	}

	var raw map[string]interface{}
	if err = yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode observations YAML")
	}

	out := make(map[string]cpt.Belief, len(raw))
	for key, v := range raw {
		present, err := observationToPresent(v)
		if err != nil {
			return nil, errors.Wrapf(err, "observation %q", key)
		}
		if present {
			out[key] = itree.Present
		} else {
			out[key] = itree.Absent
		}
	}
	return out, nil
}

func observationToPresent(v interface{}) (bool, error) {
	if s, ok := v.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "present":
			return true, nil
		case "absent":
			return false, nil
		}
	}
	return cast.ToBoolE(v)
}
