package fuzzyclock

type TranslationHook interface {
	BeforeTranslate(ctx *TranslatorHookContext)
	AfterTranslate(ctx *TranslatorHookContext)
}

// TranslatorHookContext carries one translation through its hooks. Before
// hooks may adjust Snapshot, Level or Options; after hooks may rewrite Result.
type TranslatorHookContext struct {
	Language Language
	Snapshot TimeSnapshot
	Level    FuzzinessLevel
	Options  TranslationOptions
	Result   string
	Metadata map[string]any
}

func (ctx *TranslatorHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *TranslatorHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

type TranslationHookFuncs struct {
	Before func(ctx *TranslatorHookContext)
	After  func(ctx *TranslatorHookContext)
}

func (h TranslationHookFuncs) BeforeTranslate(ctx *TranslatorHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h TranslationHookFuncs) AfterTranslate(ctx *TranslatorHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

var _ Translator = &HookedTranslator{}

type HookedTranslator struct {
	next  Translator
	hooks []TranslationHook
}

func WrapTranslatorWithHooks(next Translator, hooks ...TranslationHook) Translator {
	if next == nil || len(hooks) == 0 {
		return next
	}

	filtered := make([]TranslationHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}

	if len(filtered) == 0 {
		return next
	}

	return &HookedTranslator{next: next, hooks: filtered}
}

// Unwrap returns the decorated translator.
func (t *HookedTranslator) Unwrap() Translator {
	return t.next
}

func (t *HookedTranslator) Language() Language {
	return t.next.Language()
}

func (t *HookedTranslator) Translate(snapshot TimeSnapshot, level FuzzinessLevel, opts TranslationOptions) string {
	ctx := &TranslatorHookContext{
		Language: t.next.Language(),
		Snapshot: snapshot,
		Level:    level,
		Options:  opts,
	}

	for _, hook := range t.hooks {
		hook.BeforeTranslate(ctx)
	}

	ctx.Result = t.next.Translate(ctx.Snapshot, ctx.Level, ctx.Options)

	for _, hook := range t.hooks {
		hook.AfterTranslate(ctx)
	}

	return ctx.Result
}
