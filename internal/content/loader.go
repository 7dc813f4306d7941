package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pharmacie-tassigny/site/backend/internal/utils"
)

const (
	PharmacyFile      = "pharmacy.json"
	ServicesFile      = "services.json"
	TeamFile          = "team.json"
	FaqFile           = "faq.json"
	LegalFile         = "legal.json"
	LocalBusinessFile = "localbusiness_jsonld.json"
)

// Files lists every content document the site needs.
var Files = []string{PharmacyFile, ServicesFile, TeamFile, FaqFile, LegalFile, LocalBusinessFile}

// Loader reads content documents from a root directory. Every call reads the
// file again; nothing is cached and nothing is ever written.
type Loader struct {
	root       string
	validate   *validator.Validate
	translator ut.Translator
}

func NewLoader(root string, locale string) (*Loader, error) {
	validate, trans, err := utils.NewValidator(locale)
	if err != nil {
		return nil, err
	}

	return &Loader{
		root:       root,
		validate:   validate,
		translator: trans,
	}, nil
}

func (l *Loader) Root() string {
	return l.root
}

// loadJSON decodes filename into v and validates it. Type mismatches, tag
// violations and the extra checks are gathered into one ValidationError.
func (l *Loader) loadJSON(filename string, v any, checks ...func() []string) error {
	data, err := os.ReadFile(filepath.Join(l.root, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s is missing from %s, run \"content sync\" to populate it", ErrContentNotFound, filename, l.root)
		}
		return fmt.Errorf("read %s: %w", filename, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return malformed(filename, err)
	}
	mismatches := shapeMismatches(raw, reflect.TypeOf(v), "")

	var violations []string
	for _, m := range mismatches {
		violations = append(violations, m.String())
	}

	// the decoder keeps going past a type error, so v is filled wherever the shape fits
	if err := json.Unmarshal(data, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return malformed(filename, err)
		}
		if len(mismatches) == 0 {
			violations = append(violations, describeTypeError(typeErr))
		}
	}

	violations = append(violations, l.check(v, mismatches)...)
	// cross-field checks only make sense on a structurally sound document
	if len(violations) == 0 {
		for _, check := range checks {
			violations = append(violations, check()...)
		}
	}

	if len(violations) > 0 {
		return &ValidationError{File: filename, Violations: violations}
	}

	return nil
}

// check runs the tag rules, leaving out fields already reported as mismatched.
func (l *Loader) check(v any, mismatches []typeMismatch) []string {
	err := l.validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	violations := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		path := fieldPath(fe.Namespace())
		if covered(path, mismatches) {
			continue
		}
		violations = append(violations, fmt.Sprintf("%s: %s", path, fe.Translate(l.translator)))
	}
	return violations
}

// fieldPath drops the root type name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func describeTypeError(err *json.UnmarshalTypeError) string {
	field := err.Field
	if field == "" {
		field = "document"
	}
	return fmt.Sprintf("%s: expected %s, got %s", field, err.Type, err.Value)
}

func malformed(filename string, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("%w: %s at offset %d: %w", ErrContentMalformed, filename, syntaxErr.Offset, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrContentMalformed, filename, err)
}

// CheckAll loads every content document and joins their errors.
func (l *Loader) CheckAll() error {
	loaders := []func() error{
		func() error { _, err := l.LoadPharmacy(); return err },
		func() error { _, err := l.LoadServices(); return err },
		func() error { _, err := l.LoadTeam(); return err },
		func() error { _, err := l.LoadFaq(); return err },
		func() error { _, err := l.LoadLegal(); return err },
		func() error { _, err := l.LoadLocalBusiness(); return err },
	}

	var errs []error
	for _, load := range loaders {
		if err := load(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
