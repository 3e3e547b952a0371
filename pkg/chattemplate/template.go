// Package chattemplate implements C4: rendering a role-tagged message list
// into a single prompt string using a sandboxed, Jinja-family expression
// language. See spec.md §4.4 and §9 ("Chat template engine choice").
package chattemplate

import (
	"fmt"
	"strings"

	"github.com/nikolalohinski/gonja/v2"
	"github.com/nikolalohinski/gonja/v2/exec"
)

// Message is a single role-tagged chat turn, the unit the template ranges
// over as `messages`.
type Message struct {
	Role    string
	Content string
}

// raisedError is returned by the template's raise_exception host function
// and propagates out of Render verbatim (its message is user-visible).
type raisedError struct {
	msg string
}

func (e *raisedError) Error() string { return e.msg }

// ChatTemplate is the compiled form of a ChatTemplateSpec: the two literal
// tokens plus a reusable, thread-safe renderable template. A *ChatTemplate
// is safe to call Render on concurrently from many goroutines — compilation
// happens once, at Compile, and Render never mutates the compiled template.
type ChatTemplate struct {
	BOSToken string
	EOSToken string
	tmpl     *exec.Template
}

// Compile normalizes and compiles template source. Normalization trims
// each line and concatenates with no separator, per spec.md §4.4 — this is
// load-bearing: it lets authors write multi-line templates in YAML without
// the rendered prompt reflecting incidental indentation or line breaks.
// Compilation errors are fatal at config load time.
func Compile(bosToken, eosToken, source string) (*ChatTemplate, error) {
	normalized := normalizeSource(source)
	tmpl, err := gonja.FromString(normalized)
	if err != nil {
		return nil, fmt.Errorf("chat template compile error: %w", err)
	}
	return &ChatTemplate{BOSToken: bosToken, EOSToken: eosToken, tmpl: tmpl}, nil
}

func normalizeSource(source string) string {
	lines := strings.Split(source, "\n")
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(strings.TrimSpace(line))
	}
	return b.String()
}

// Render evaluates the compiled template against a message list, binding
// bos_token, eos_token, add_generation_prompt=true, and messages (each
// exposing .role and .content, plus the host's 0-based loop.index0 in
// iteration). A raise_exception(msg) call from the template aborts
// rendering and surfaces msg as the returned error.
func (t *ChatTemplate) Render(messages []Message) (string, error) {
	msgs := make([]map[string]interface{}, len(messages))
	for i, m := range messages {
		msgs[i] = map[string]interface{}{
			"role":    m.Role,
			"content": m.Content,
		}
	}

	var raised *raisedError
	ctx := exec.NewContext(map[string]interface{}{
		"bos_token":             t.BOSToken,
		"eos_token":             t.EOSToken,
		"add_generation_prompt": true,
		"messages":              msgs,
		"raise_exception": func(msg string) (string, error) {
			raised = &raisedError{msg: msg}
			return "", raised
		},
	})

	out, err := t.tmpl.ExecuteToString(ctx)
	if err != nil {
		if raised != nil {
			return "", raised
		}
		return "", fmt.Errorf("chat template render error: %w", err)
	}
	return out, nil
}
