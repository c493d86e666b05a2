package checkapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/strcheck/pkg/logger"
	"github.com/dmitrymomot/strcheck/pkg/messages"
	"github.com/dmitrymomot/strcheck/pkg/validator"
)

// DefaultMaxBatchItems limits POST /check/batch when no option overrides it.
const DefaultMaxBatchItems = 100

// Handler serves the check API. It holds no mutable state.
type Handler struct {
	catalog  *messages.Catalog
	log      *slog.Logger
	maxItems int
}

type Option func(*Handler)

// WithLogger sets the request logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMaxBatchItems sets the batch size limit. Non-positive values are ignored.
func WithMaxBatchItems(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxItems = n
		}
	}
}

// New returns a Handler rendering messages from catalog.
func New(catalog *messages.Catalog, opts ...Option) *Handler {
	h := &Handler{
		catalog:  catalog,
		log:      logger.Discard(),
		maxItems: DefaultMaxBatchItems,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("checkapi"))
	return h
}

// Router returns the API routes, ready to be mounted.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/kinds", h.kinds)
	r.Post("/check", h.check)
	r.Post("/check/batch", h.checkBatch)
	return r
}

func (h *Handler) kinds(w http.ResponseWriter, r *http.Request) {
	kinds := validator.Kinds()
	resp := KindsResponse{Kinds: make([]string, len(kinds))}
	for i, k := range kinds {
		resp.Kinds[i] = k.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	kind, err := validator.ParseKind(req.Kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnknownKind, err.Error())
		return
	}

	lang := h.language(w, r)
	rule, _ := validator.RuleFor(kind, string(kind), req.Value)
	valid := rule.Check()

	resp := CheckResponse{Kind: kind.String(), Value: req.Value, Valid: valid}
	if !valid {
		resp.Message = h.catalog.Translate(lang, rule.Error)
	} else if kind == validator.KindChineseIDCard {
		if info, err := validator.ParseChineseIDCard(req.Value); err == nil {
			resp.IDCard = idCardJSON(info)
		}
	}

	h.log.DebugContext(r.Context(), "value checked", logger.Kind(kind.String()), logger.Valid(valid), logger.Lang(lang))
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) checkBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	switch {
	case len(req.Items) == 0:
		writeError(w, http.StatusBadRequest, codeEmptyBatch, "items must not be empty")
		return
	case len(req.Items) > h.maxItems:
		err := fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(req.Items), h.maxItems)
		writeError(w, http.StatusBadRequest, codeTooManyItems, err.Error())
		return
	}

	rules := make([]validator.Rule, 0, len(req.Items))
	for i, item := range req.Items {
		field := item.Field
		if field == "" {
			field = "items[" + strconv.Itoa(i) + "]"
		}
		kind, err := validator.ParseKind(item.Kind)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeUnknownKind, fmt.Sprintf("%s: %v", field, err))
			return
		}
		rule, _ := validator.RuleFor(kind, field, item.Value)
		rules = append(rules, rule)
	}

	lang := h.language(w, r)
	resp := BatchResponse{Valid: true}

	if verrs := validator.ExtractValidationErrors(validator.Apply(rules...)); verrs != nil {
		resp.Valid = false
		resp.Errors = make([]FieldError, len(verrs))
		for i, verr := range verrs {
			resp.Errors[i] = FieldError{
				Field:   verr.Field,
				Key:     verr.TranslationKey,
				Message: h.catalog.Translate(lang, verr),
			}
		}
	}

	h.log.DebugContext(r.Context(), "batch checked", logger.Count(len(rules)), logger.Valid(resp.Valid), logger.Lang(lang))
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) language(w http.ResponseWriter, r *http.Request) string {
	lang := h.catalog.Match(r.Header.Get("Accept-Language"))
	w.Header().Set("Content-Language", lang)
	return lang
}

func idCardJSON(info validator.IDCardInfo) *IDCard {
	return &IDCard{
		Region:    info.Region,
		BirthDate: info.BirthDate.Format("2006-01-02"),
		Sequence:  info.Sequence,
		Gender:    string(info.Gender),
		CheckCode: info.CheckCode,
	}
}
