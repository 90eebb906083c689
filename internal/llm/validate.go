package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled schemas are cached by schema name; the portal only ever has
// a handful of shapes (hints, activity drafts).
var (
	schemaMu    sync.Mutex
	schemaCache = map[string]*jsonschema.Schema{}
)

// checkReply verifies that raw is JSON conforming to s. A nil schema
// accepts anything. Failures come back as *BadReplyError carrying the
// raw content for the event log.
func checkReply(s *Schema, raw json.RawMessage) error {
	if s == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &BadReplyError{Raw: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}

	compiled, err := compileSchema(s)
	if err != nil {
		return &BadReplyError{Raw: raw, Err: err}
	}
	if err := compiled.Validate(doc); err != nil {
		return &BadReplyError{Raw: raw, Err: fmt.Errorf("schema %q: %w", s.Name, err)}
	}
	return nil
}

func compileSchema(s *Schema) (*jsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if c, ok := schemaCache[s.Name]; ok {
		return c, nil
	}

	// Round-trip the definition through JSON; the compiler wants the
	// plain decoded representation, not arbitrary Go maps.
	defBytes, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", s.Name, err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("decode schema %q: %w", s.Name, err)
	}

	compiler := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := compiler.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("register schema %q: %w", s.Name, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", s.Name, err)
	}

	schemaCache[s.Name] = compiled
	return compiled, nil
}
