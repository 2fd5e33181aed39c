package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/xul/internal/app"
)

func TestRunHeadless(t *testing.T) {
	a, err := app.New(app.Options{NoConfig: true})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	var out bytes.Buffer
	if code := runHeadless(a, "i h i esc", &out); code != 0 {
		t.Fatalf("runHeadless() = %d, want 0", code)
	}
	if got := out.String(); got != "hi\n" {
		t.Errorf("output = %q, want hi", got)
	}
}

func TestDumpKeymap(t *testing.T) {
	a, err := app.New(app.Options{NoConfig: true})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	if err := a.Engine().Bind("normal", "ctrl-y", "yank-selection", "1"); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if code := dumpKeymap(a, &out); code != 0 {
		t.Fatalf("dumpKeymap() = %d, want 0", code)
	}
	doc := out.Bytes()
	if !gjson.ValidBytes(doc) {
		t.Fatalf("output is not JSON: %s", doc)
	}
	b := gjson.GetBytes(doc, "bindings.0")
	if b.Get("mode").String() != "normal" || b.Get("command").String() != "yank-selection" {
		t.Errorf("bindings.0 = %s", b.Raw)
	}
	if !strings.Contains(b.Get("keys").String(), "ctrl-y") {
		t.Errorf("keys = %q, want ctrl-y", b.Get("keys").String())
	}
}
