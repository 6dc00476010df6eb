package fuzzyclock

import (
	"strings"
	"testing"
)

func TestHookedTranslatorInvokesHooks(t *testing.T) {
	var before, after int
	hook := TranslationHookFuncs{
		Before: func(ctx *TranslatorHookContext) {
			before++
			if ctx.Language != Spanish {
				t.Fatalf("expected spanish, got %v", ctx.Language)
			}
			ctx.SetMetadata("reading", ctx.Snapshot.String())
		},
		After: func(ctx *TranslatorHookContext) {
			after++
			if ctx.Result != "nueve y cuarto AM" {
				t.Fatalf("unexpected result %q", ctx.Result)
			}
			if value, ok := ctx.MetadataValue("reading"); !ok || value != "09:15" {
				t.Fatalf("metadata = %v, %v", value, ok)
			}
		},
	}

	translator := WrapTranslatorWithHooks(NewSpanishTranslator(), hook)
	got := translator.Translate(mustSnapshot(t, 9, 15), Fuzzy, clock12)
	if got != "nueve y cuarto AM" {
		t.Fatalf("Translate() = %q", got)
	}
	if before != 1 || after != 1 {
		t.Fatalf("hooks called before=%d after=%d", before, after)
	}
	if translator.Language() != Spanish {
		t.Fatalf("Language() = %v", translator.Language())
	}
}

func TestHookedTranslatorCanRewrite(t *testing.T) {
	hooks := []TranslationHook{
		TranslationHookFuncs{Before: func(ctx *TranslatorHookContext) {
			ctx.Level = MaxFuzzy
		}},
		TranslationHookFuncs{After: func(ctx *TranslatorHookContext) {
			ctx.Result = strings.ToUpper(ctx.Result)
		}},
	}

	translator := WrapTranslatorWithHooks(NewEnglishTranslator(), hooks...)
	if got := translator.Translate(mustSnapshot(t, 8, 0), Exact, clock12); got != "MORNING" {
		t.Fatalf("Translate() = %q want MORNING", got)
	}
}

func TestWrapTranslatorWithHooksSkipsNil(t *testing.T) {
	base := NewEnglishTranslator()
	if got := WrapTranslatorWithHooks(base); got != Translator(base) {
		t.Fatalf("expected base translator without hooks")
	}
	if got := WrapTranslatorWithHooks(base, nil, nil); got != Translator(base) {
		t.Fatalf("expected base translator with only nil hooks")
	}
	if got := WrapTranslatorWithHooks(nil, TranslationHookFuncs{}); got != nil {
		t.Fatalf("expected nil for nil translator")
	}

	wrapped, ok := WrapTranslatorWithHooks(base, TranslationHookFuncs{}).(*HookedTranslator)
	if !ok {
		t.Fatalf("expected *HookedTranslator")
	}
	if wrapped.Unwrap() != Translator(base) {
		t.Fatalf("Unwrap() did not return the base translator")
	}
}

func TestRegistryHooksApplyToEveryLanguage(t *testing.T) {
	seen := map[Language]int{}
	registry := NewRegistry(WithRegistryHooks(TranslationHookFuncs{
		After: func(ctx *TranslatorHookContext) {
			seen[ctx.Language]++
		},
	}))

	snapshot := mustSnapshot(t, 10, 10)
	for _, lang := range registry.Languages() {
		translator, _ := registry.Translator(lang)
		translator.Translate(snapshot, Fuzzy, clock12)
	}

	for _, lang := range Languages() {
		if seen[lang] != 1 {
			t.Fatalf("hook saw %v %d times", lang, seen[lang])
		}
	}
}
