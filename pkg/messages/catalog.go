package messages

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/strcheck/pkg/validator"
)

//go:embed locales/*.yaml
var embedded embed.FS

// DefaultLanguage is used when negotiation finds nothing better.
const DefaultLanguage = "en"

// Option configures New.
type Option func(*config)

type config struct {
	defaultLang string
	fsys        fs.FS
	dir         string
}

// WithDefaultLanguage sets the fallback language. It must have a catalog.
func WithDefaultLanguage(lang string) Option {
	return func(c *config) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithFS loads catalogs from dir in fsys instead of the embedded ones.
func WithFS(fsys fs.FS, dir string) Option {
	return func(c *config) {
		if fsys != nil {
			c.fsys = fsys
			c.dir = dir
		}
	}
}

// Catalog holds flattened message templates per language. It is read-only
// after New and safe for concurrent use.
type Catalog struct {
	defaultLang string
	langs       []string // langs[0] is the default
	matcher     language.Matcher
	messages    map[string]map[string]string
}

// New loads every *.yaml / *.yml catalog from the configured source.
func New(opts ...Option) (*Catalog, error) {
	cfg := &config{
		defaultLang: DefaultLanguage,
		fsys:        embedded,
		dir:         "locales",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	entries, err := fs.ReadDir(cfg.fsys, cfg.dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir %q: %w", cfg.dir, err)
	}

	messages := make(map[string]map[string]string)
	for _, e := range entries {
		ext := path.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		data, err := fs.ReadFile(cfg.fsys, path.Join(cfg.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", e.Name(), err)
		}
		msgs, err := parseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrParseCatalog, e.Name(), err)
		}
		messages[strings.TrimSuffix(e.Name(), ext)] = msgs
	}

	if len(messages) == 0 {
		return nil, ErrNoCatalogs
	}
	if _, ok := messages[cfg.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguage, cfg.defaultLang)
	}

	// The matcher falls back to its first tag, so the default goes first.
	langs := make([]string, 0, len(messages))
	for lang := range messages {
		if lang != cfg.defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	langs = append([]string{cfg.defaultLang}, langs...)

	tags := make([]language.Tag, len(langs))
	for i, lang := range langs {
		tags[i] = language.Make(lang)
	}

	return &Catalog{
		defaultLang: cfg.defaultLang,
		langs:       langs,
		matcher:     language.NewMatcher(tags),
		messages:    messages,
	}, nil
}

// Languages returns the loaded languages, default first.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.langs)
}

// DefaultLanguage returns the fallback language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Match returns the loaded language that best fits an Accept-Language header
// value such as "zh-CN,zh;q=0.9,en;q=0.8".
func (c *Catalog) Match(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return c.defaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.defaultLang
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(c.langs) {
		return c.defaultLang
	}
	return c.langs[idx]
}

// Translate renders verr in lang, falling back to the default language and
// then to verr.Message.
func (c *Catalog) Translate(lang string, verr validator.ValidationError) string {
	tmpl, ok := c.lookup(lang, verr.TranslationKey)
	if !ok {
		return verr.Message
	}
	return render(tmpl, verr.TranslationValues)
}

// TranslateAll renders every error of errs in lang.
func (c *Catalog) TranslateAll(lang string, errs validator.ValidationErrors) []string {
	out := make([]string, len(errs))
	for i, verr := range errs {
		out[i] = c.Translate(lang, verr)
	}
	return out
}

func (c *Catalog) lookup(lang, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	if tmpl, ok := c.messages[lang][key]; ok {
		return tmpl, true
	}
	tmpl, ok := c.messages[c.defaultLang][key]
	return tmpl, ok
}

func render(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(values)*2)
	for name, v := range values {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func parseCatalog(data []byte) (map[string]string, error) {
	var groups map[string]map[string]string
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("empty catalog")
	}

	flat := make(map[string]string)
	for group, entries := range groups {
		for name, tmpl := range entries {
			flat[group+"."+name] = tmpl
		}
	}
	return flat, nil
}
