package duration

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bytq/bytq/pkg/errcode"
)

// Registry holds loaded language tables and the default language code.
// It is an explicit dependency, not a hidden singleton; the package
// default registry from Default() covers the common case.
//
// A Registry is not internally locked: languages are expected to be
// registered once at startup, after which concurrent readers are safe.
type Registry struct {
	langs   map[string]Lang
	def     string
	plurals map[string]PluralRule
}

func NewRegistry() *Registry {
	return &Registry{
		langs:   make(map[string]Lang),
		plurals: make(map[string]PluralRule),
	}
}

// Add inserts or replaces a language table. The first language ever
// added becomes the default.
func (r *Registry) Add(l Lang) error {
	if l.Code == "" {
		return errcode.New(errcode.CodeInvalidArgument, "language table without a code")
	}
	if l.Plural == nil {
		l.Plural = r.plurals[l.Code]
	}
	r.langs[l.Code] = l
	if r.def == "" {
		r.def = l.Code
	}
	return nil
}

// RegisterPluralRule attaches a plural rule to a language code, for
// tables that arrive from JSON and cannot carry code. Registering
// before loading is sufficient; an already-loaded table is updated.
func (r *Registry) RegisterPluralRule(code string, rule PluralRule) {
	r.plurals[code] = rule
	if l, ok := r.langs[code]; ok {
		l.Plural = rule
		r.langs[code] = l
	}
}

// Load reads one JSON language table and registers it, returning its
// code.
func (r *Registry) Load(rd io.Reader) (string, error) {
	var l Lang
	if err := json.NewDecoder(rd).Decode(&l); err != nil {
		return "", errors.Wrap(err, "decode language table")
	}
	if err := r.Add(l); err != nil {
		return "", err
	}
	return l.Code, nil
}

// LoadFile reads one JSON language table from disk.
func (r *Registry) LoadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "open language table %s", path)
	}
	defer f.Close()

	code, err := r.Load(f)
	if err != nil {
		return "", errors.Wrapf(err, "load language table %s", path)
	}
	return code, nil
}

// LoadDir loads every *.json table in a directory and returns the codes
// loaded, sorted.
func (r *Registry) LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read language dir %s", dir)
	}

	var codes []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		code, err := r.LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{"code": code, "file": entry.Name()}).Debug("Loaded language table")
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// SetDefault selects the fallback language; the code must already be
// loaded.
func (r *Registry) SetDefault(code string) error {
	if !r.IsLoaded(code) {
		return errcode.New(errcode.CodeUnknownLanguage, "%q is not loaded", code)
	}
	r.def = code
	return nil
}

// Default returns the default language code, empty when nothing is
// loaded.
func (r *Registry) Default() string { return r.def }

func (r *Registry) IsLoaded(code string) bool {
	_, ok := r.langs[code]
	return ok
}

// Codes returns the loaded language codes, sorted.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.langs))
	for code := range r.langs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// resolve picks the table for a requested code: the code itself when
// loaded, else the registry default, else English as the built-in
// recovery, else UnknownLanguage.
func (r *Registry) resolve(code string) (Lang, error) {
	if code == "" {
		code = r.def
	}
	if l, ok := r.langs[code]; ok {
		return l, nil
	}
	if l, ok := r.langs["en"]; ok {
		return l, nil
	}
	return Lang{}, errcode.New(errcode.CodeUnknownLanguage, "%q is not loaded and no fallback is available", code)
}
