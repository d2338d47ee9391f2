// Package css reads the small stylesheet subset the viewer panels use:
// class and id selectors with flat "key: value" declarations.
package css

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".panel" or "#menu"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Parse reads content into a Stylesheet. Selector lists ".a, .b" become one
// rule per selector. Rules whose selector is not a plain .class or #id, and
// every at-rule, are skipped.
func Parse(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := tcss.NewParser(parse.NewInputString(content), false)

	var selectors []string
	var props map[string]string
	depth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case tcss.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return sheet, fmt.Errorf("parse css: %w", err)
			}
			return sheet, nil
		case tcss.BeginAtRuleGrammar:
			depth++
		case tcss.EndAtRuleGrammar:
			depth--
		case tcss.QualifiedRuleGrammar:
			selectors = append(selectors, splitSelectors(p.Values())...)
		case tcss.BeginRulesetGrammar:
			selectors = append(selectors, splitSelectors(p.Values())...)
			props = make(map[string]string)
		case tcss.DeclarationGrammar:
			if props != nil {
				props[strings.ToLower(string(data))] = joinTokens(p.Values())
			}
		case tcss.EndRulesetGrammar:
			if depth == 0 {
				for _, sel := range selectors {
					if simpleSelector(sel) {
						sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
					}
				}
			}
			selectors, props = nil, nil
		}
	}
}

func joinTokens(tokens []tcss.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// splitSelectors breaks a selector list on its commas. The tokenizer hands
// ".a, .b" to the ruleset as a single value list.
func splitSelectors(tokens []tcss.Token) []string {
	var out []string
	start := 0
	for i, t := range tokens {
		if t.TokenType == tcss.CommaToken {
			out = append(out, joinTokens(tokens[start:i]))
			start = i + 1
		}
	}
	return append(out, joinTokens(tokens[start:]))
}

func simpleSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " .#>+~:[")
}

// Match returns the merged properties of every rule naming class or id, in
// sheet order so later rules win.
func (s *Stylesheet) Match(class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, rule := range s.Rules {
		name := rule.Selector[1:]
		switch {
		case rule.Selector[0] == '.' && class != "" && name == class,
			rule.Selector[0] == '#' && id != "" && name == id:
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}
