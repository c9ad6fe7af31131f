package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/layout.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Layout is the document form of the layout. It is what the schema
// describes and what `manifest --json` prints.
type Layout struct {
	Root     string   `json:"root"`
	Reserved string   `json:"reserved"`
	Entries  []string `json:"entries"`
}

// Current returns the compiled-in layout.
func Current() Layout {
	return Layout{
		Root:     RootMarker,
		Reserved: ReservedPath,
		Entries:  Entries(),
	}
}

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/entries/3", "/root")
	Index   int    // Entry position, or -1 when the issue is not about one entry
	Entry   string // Entry text when Index >= 0
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("layout.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("layout.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// ValidateLayout validates l against the layout schema. The error return is
// for schema compilation or encoding failures; problems with the layout
// itself are returned in the ValidationResult.
func ValidateLayout(l Layout) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr, l.Entries),
	}, nil
}

// Validate checks list as the entries of a layout rooted at RootMarker.
// Each entry must be a clean forward-slash path under the root, must name
// a file, must appear once, and may not be the reserved path.
func Validate(list []string) (*ValidationResult, error) {
	return ValidateLayout(Layout{
		Root:     RootMarker,
		Reserved: ReservedPath,
		Entries:  list,
	})
}

// ValidateEntries validates the compiled-in layout.
func ValidateEntries() (*ValidationResult, error) {
	return ValidateLayout(Current())
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError, list []string) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, list, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{
			Index:   -1,
			Message: ve.Error(),
		}}
	}
	return deduplicateIssues(issues)
}

// collectValidationIssues recursively walks the error tree to find leaf
// errors and maps their instance locations back to entries.
func collectValidationIssues(ve *jsonschema.ValidationError, list []string, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectValidationIssues(cause, list, issues)
		}
		return
	}
	if ve.ErrorKind == nil {
		return
	}

	issue := ValidationIssue{
		Path:    "/" + strings.Join(ve.InstanceLocation, "/"),
		Index:   entryIndex(ve.InstanceLocation),
		Message: ve.ErrorKind.LocalizedString(printer),
	}
	if len(ve.InstanceLocation) == 0 {
		issue.Path = ""
	}
	if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
		issue.Keyword = kw[len(kw)-1]
	}

	switch k := ve.ErrorKind.(type) {
	case *kind.Not:
		// The only negation in the schema excludes the reserved path.
		issue.Keyword = "not"
		issue.Message = "reserved path must not be listed"
	case *kind.UniqueItems:
		issue.Index = k.Duplicates[1]
		issue.Path += "/" + strconv.Itoa(k.Duplicates[1])
		issue.Message = fmt.Sprintf("duplicate of entry %d", k.Duplicates[0])
	}

	switch issue.Keyword {
	case "", "allOf", "$ref":
		return
	}
	if issue.Index >= 0 && issue.Index < len(list) {
		issue.Entry = list[issue.Index]
	}
	*issues = append(*issues, issue)
}

// entryIndex returns the entry position named by loc, or -1.
func entryIndex(loc []string) int {
	if len(loc) != 2 || loc[0] != "entries" {
		return -1
	}
	i, err := strconv.Atoi(loc[1])
	if err != nil {
		return -1
	}
	return i
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
