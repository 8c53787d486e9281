package input

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"tco-calculator/internal/errors"
)

// Section names accepted in scenario documents
var sections = map[string]Side{
	"on_prem": SideOnPrem,
	"onPrem":  SideOnPrem,
	"cloud":   SideCloud,
}

// LoadFile reads a scenario document and overlays it on the default form.
// Supported extensions are .json, .yaml, .yml and .hcl. Keys may be flat
// or grouped under on_prem and cloud sections.
func LoadFile(path string) (*Form, error) {
	form := NewForm()
	if err := form.LoadFile(path); err != nil {
		return nil, err
	}
	return form, nil
}

// LoadFile overlays a scenario document on the form
func (f *Form) LoadFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.TypeInput, "failed to read scenario file", err).WithContext("path", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return f.ApplyJSON(bytes.NewReader(src))
	case ".yaml", ".yml":
		var doc map[string]interface{}
		if err := yaml.Unmarshal(src, &doc); err != nil {
			return errors.Parsing("invalid YAML scenario", err)
		}
		return f.Apply(doc)
	case ".hcl":
		raw, err := decodeHCL(src, path)
		if err != nil {
			return err
		}
		return f.SetAll(raw)
	default:
		return errors.NotSupported("scenario file extension " + filepath.Ext(path))
	}
}

// ApplyJSON decodes a JSON scenario document from r and applies it.
// Numbers are kept as their literal text before coercion.
func (f *Form) ApplyJSON(r io.Reader) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc map[string]interface{}
	if err := dec.Decode(&doc); err != nil {
		return errors.Parsing("invalid JSON scenario", err)
	}
	return f.Apply(doc)
}

// Apply overlays a decoded scenario document on the form
func (f *Form) Apply(doc map[string]interface{}) error {
	raw, err := flatten(doc)
	if err != nil {
		return err
	}
	return f.SetAll(raw)
}

// flatten maps a decoded document onto field keys, checking that grouped
// keys sit under the section they belong to
func flatten(doc map[string]interface{}) (map[string]string, error) {
	out := make(map[string]string, len(doc))
	for key, value := range doc {
		side, isSection := sections[key]
		if !isSection {
			out[key] = Scalar(value)
			continue
		}

		group, ok := value.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.TypeInput, "section %q must be a mapping", key)
		}
		for k, v := range group {
			if err := checkSide(k, side); err != nil {
				return nil, err
			}
			out[k] = Scalar(v)
		}
	}
	return out, nil
}

func decodeHCL(src []byte, filename string) (map[string]string, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid HCL scenario", diags)
	}

	schema := &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{{Name: TimeframeKey}},
	}
	for name := range sections {
		schema.Blocks = append(schema.Blocks, hcl.BlockHeaderSchema{Type: name})
	}
	for _, f := range fields {
		schema.Attributes = append(schema.Attributes, hcl.AttributeSchema{Name: f.Key})
	}

	content, diags := file.Body.Content(schema)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeInput, "unsupported scenario content", diags)
	}

	out := make(map[string]string)
	if err := collectAttributes(content.Attributes, "", out); err != nil {
		return nil, err
	}

	for _, block := range content.Blocks {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, errors.Wrap(errors.TypeInput, "invalid "+block.Type+" block", diags)
		}
		if err := collectAttributes(attrs, sections[block.Type], out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func collectAttributes(attrs hcl.Attributes, side Side, out map[string]string) error {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if side != "" {
			if err := checkSide(name, side); err != nil {
				return err
			}
		}
		val, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return errors.Wrap(errors.TypeInput, "cannot evaluate "+name, diags)
		}
		out[name] = ctyScalar(val)
	}
	return nil
}

func checkSide(key string, side Side) error {
	f, ok := Lookup(key)
	if !ok {
		return errors.NotFound("field", key)
	}
	if f.Side != side {
		return errors.Newf(errors.TypeInput, "field %q belongs to %s, not %s", key, f.Side, side)
	}
	return nil
}

// Scalar renders a decoded document value as the raw text a form would
// hold. Values that are not numbers or strings become empty, which later
// coerces to zero.
func Scalar(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return ""
	}
}

func ctyScalar(v cty.Value) string {
	if !v.IsKnown() || v.IsNull() {
		return ""
	}
	switch v.Type() {
	case cty.Number:
		return v.AsBigFloat().Text('f', -1)
	case cty.String:
		return v.AsString()
	default:
		return ""
	}
}
