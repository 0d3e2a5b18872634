package chart

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/melib/pkg/errors"
)

//go:embed charts.toml
var builtinTOML []byte

// catalogFile is the on-disk shape shared by the TOML and YAML formats.
type catalogFile struct {
	Curves   []Curve   `toml:"curve" yaml:"curve"`
	Surfaces []Surface `toml:"surface" yaml:"surface"`
}

// Catalog is a set of compiled charts addressed by name. Curve and surface
// names share one namespace.
type Catalog struct {
	curves   map[string]*Curve
	surfaces map[string]*Surface
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		curves:   make(map[string]*Curve),
		surfaces: make(map[string]*Surface),
	}
}

// Builtin returns a fresh catalog of the charts compiled into the library.
func Builtin() (*Catalog, error) {
	return LoadTOML(bytes.NewReader(builtinTOML))
}

// BuiltinTOML returns the source of the built-in catalog.
func BuiltinTOML() []byte {
	return append([]byte(nil), builtinTOML...)
}

// LoadTOML reads a catalog in TOML form. Unknown keys are rejected.
func LoadTOML(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read chart catalog")
	}
	var f catalogFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse TOML chart catalog")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown keys in chart catalog: %s", strings.Join(keys, ", "))
	}
	return fromFile(f)
}

// LoadYAML reads a catalog in YAML form. Unknown keys are rejected. An empty
// document yields an empty catalog.
func LoadYAML(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse YAML chart catalog")
	}
	return fromFile(f)
}

// LoadFile reads a catalog from path, choosing the format by extension:
// .toml, .yaml or .yml.
func LoadFile(path string) (*Catalog, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	var load func(io.Reader) (*Catalog, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		load = LoadTOML
	case ".yaml", ".yml":
		load = LoadYAML
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported chart catalog format: %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart catalog %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open chart catalog %s", path)
	}
	defer f.Close()

	cat, err := load(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
	}
	return cat, nil
}

func fromFile(f catalogFile) (*Catalog, error) {
	cat := NewCatalog()
	for i := range f.Curves {
		if err := cat.AddCurve(&f.Curves[i]); err != nil {
			return nil, err
		}
	}
	for i := range f.Surfaces {
		if err := cat.AddSurface(&f.Surfaces[i]); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

func (c *Catalog) has(name string) bool {
	_, isCurve := c.curves[name]
	_, isSurface := c.surfaces[name]
	return isCurve || isSurface
}

// AddCurve compiles c and adds it. Names must be non-empty and unique.
func (c *Catalog) AddCurve(cv *Curve) error {
	if err := errors.ValidateLabel(cv.Name); err != nil {
		return err
	}
	if c.has(cv.Name) {
		return errors.New(errors.ErrCodeInvalidInput, "duplicate chart %q", cv.Name)
	}
	if err := cv.Compile(); err != nil {
		return err
	}
	c.curves[cv.Name] = cv
	return nil
}

// AddSurface compiles s and adds it. Names must be non-empty and unique.
func (c *Catalog) AddSurface(s *Surface) error {
	if err := errors.ValidateLabel(s.Name); err != nil {
		return err
	}
	if c.has(s.Name) {
		return errors.New(errors.ErrCodeInvalidInput, "duplicate chart %q", s.Name)
	}
	if err := s.Compile(); err != nil {
		return err
	}
	c.surfaces[s.Name] = s
	return nil
}

// Merge adds every chart of other. Charts in other replace charts of the
// same name, so later catalogs override earlier ones.
func (c *Catalog) Merge(other *Catalog) {
	for name, cv := range other.curves {
		delete(c.surfaces, name)
		c.curves[name] = cv
	}
	for name, s := range other.surfaces {
		delete(c.curves, name)
		c.surfaces[name] = s
	}
}

// Curve returns the named curve or CHART_NOT_FOUND.
func (c *Catalog) Curve(name string) (*Curve, error) {
	if cv, ok := c.curves[name]; ok {
		return cv, nil
	}
	return nil, errors.New(errors.ErrCodeChartNotFound, "curve %q not found", name)
}

// Surface returns the named surface or CHART_NOT_FOUND.
func (c *Catalog) Surface(name string) (*Surface, error) {
	if s, ok := c.surfaces[name]; ok {
		return s, nil
	}
	return nil, errors.New(errors.ErrCodeChartNotFound, "surface %q not found", name)
}

// Names returns every chart name in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.curves)+len(c.surfaces))
	for n := range c.curves {
		names = append(names, n)
	}
	for n := range c.surfaces {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of charts.
func (c *Catalog) Len() int { return len(c.curves) + len(c.surfaces) }
