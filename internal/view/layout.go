package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// The view package hand-assembles templ components instead of shipping
// generated code. Every exported function returns a templ.Component so
// handlers can render full pages or patch fragments over SSE with the
// same contract.

// htmlWriter accumulates the first write error so component bodies can
// stay free of per-line error checks.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) rawf(format string, args ...any) {
	if hw.err != nil {
		return
	}
	_, hw.err = fmt.Fprintf(hw.w, format, args...)
}

// text writes s HTML-escaped.
func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func component(body func(hw *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		body(hw)
		return hw.err
	})
}

// page wraps body in the shared document shell.
func page(title string, body func(hw *htmlWriter)) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.rawf(`<title>%s</title>`, templ.EscapeString(title))
		hw.raw(`<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>`)
		hw.raw(`<style>` + baseCSS + `</style>`)
		hw.raw(`</head><body>`)
		body(hw)
		hw.raw(`</body></html>`)
	})
}

const baseCSS = `
body { font-family: system-ui, sans-serif; background: #f3f4f6; margin: 0; }
.container { max-width: 640px; margin: 40px auto; background: #fff; padding: 24px; border-radius: 12px; box-shadow: 0 6px 20px rgba(0,0,0,.1); }
h1 { text-align: center; color: #2563eb; }
input, select, button { width: 100%; padding: 10px; margin: 6px 0; font-size: 16px; border: 1px solid #ccc; border-radius: 8px; box-sizing: border-box; }
button { background: #2563eb; color: #fff; border: none; cursor: pointer; }
button.logout { background: #ef4444; }
.filters { display: flex; flex-wrap: wrap; gap: 8px; margin: 16px 0; }
.filters button { width: auto; background: #f3f4f6; color: #111827; border: 1px solid #d1d5db; padding: 8px 12px; }
.filters button.active { background: #2563eb; color: #fff; }
.task { background: #f0f4ff; padding: 14px; border-radius: 8px; margin-bottom: 12px; }
.task .small { font-size: 14px; color: #4b5563; margin: 4px 0 0; }
.error { color: #b91c1c; margin: 8px 0; }
.toast { background: #ecfdf5; border: 1px solid #10b981; padding: 10px; border-radius: 8px; margin: 8px 0; }
a { color: #2563eb; }
`
