package ast

import (
	"fmt"
	"strings"

	"github.com/jmcph4/solar/token"
)

// joinTokens reconstructs source-shaped text from a raw token run. The
// result is for diagnostics, not round-tripping: original whitespace is
// gone, so spacing follows a few punctuation rules instead.
func joinTokens(tokens []token.Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && !noSpaceBefore(tok.Type) && !noSpaceAfter(tokens[i-1].Type) {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Lexeme)
	}
	return b.String()
}

func noSpaceBefore(tt token.TokenType) bool {
	switch tt {
	case token.COMMA, token.SEMICOLON, token.LPAREN, token.RPAREN, token.RBRACKET, token.DOT, token.LBRACKET:
		return true
	}
	return false
}

func noSpaceAfter(tt token.TokenType) bool {
	switch tt {
	case token.LPAREN, token.LBRACKET, token.DOT:
		return true
	}
	return false
}

func (i *Ident) String() string {
	return i.Value
}

func (s *StrLit) String() string {
	return fmt.Sprintf("%q", s.Value)
}

func (p *Path) String() string {
	parts := make([]string, len(p.Parts))
	for i, part := range p.Parts {
		parts[i] = part.Value
	}
	return strings.Join(parts, ".")
}

func (r *SemverReq) String() string {
	return r.Source
}

func (t *Type) String() string {
	return joinTokens(t.Tokens)
}

func (e *Expr) String() string {
	return joinTokens(e.Tokens)
}

func (b *Block) String() string {
	if len(b.Tokens) == 0 {
		return "{ }"
	}
	return "{ " + joinTokens(b.Tokens) + " }"
}

func (c *CallArgs) String() string {
	if !c.Present {
		return ""
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return "(" + strings.Join(args, ", ") + ")"
}

func (dc *DocComment) String() string {
	return dc.Text
}

func (i *Item) String() string {
	var b strings.Builder
	for _, doc := range i.Docs {
		b.WriteString(doc.Text)
		b.WriteString("\n")
	}
	b.WriteString(i.Kind.String())
	return b.String()
}

func (p *PragmaDirective) String() string {
	return fmt.Sprintf("pragma %s;", p.Tokens.String())
}

func (p *PragmaVersion) String() string {
	return fmt.Sprintf("%s %s", p.Name.Value, p.Req.Source)
}

func (p *PragmaCustom) String() string {
	if p.Value == nil {
		return p.Name.String()
	}
	return fmt.Sprintf("%s %s", p.Name.String(), p.Value.String())
}

func (p *PragmaVerbatim) String() string {
	return joinTokens(p.Tokens)
}

func (d *ImportDirective) String() string {
	switch items := d.Items.(type) {
	case *ImportPlain:
		if items.Alias != nil {
			return fmt.Sprintf("import %s as %s;", d.Path.String(), items.Alias.Value)
		}
		return fmt.Sprintf("import %s;", d.Path.String())
	case *ImportAliases:
		return fmt.Sprintf("import %s from %s;", items.String(), d.Path.String())
	case *ImportGlob:
		return fmt.Sprintf("import %s from %s;", items.String(), d.Path.String())
	}
	return fmt.Sprintf("import %s;", d.Path.String())
}

func (i *ImportPlain) String() string {
	if i.Alias != nil {
		return "as " + i.Alias.Value
	}
	return ""
}

func (i *ImportAliases) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for idx, alias := range i.Aliases {
		if idx > 0 {
			b.WriteString(", ")
		}
		b.WriteString(alias.Name.Value)
		if alias.Alias != nil {
			b.WriteString(" as ")
			b.WriteString(alias.Alias.Value)
		}
	}
	b.WriteString(" }")
	return b.String()
}

func (i *ImportGlob) String() string {
	if i.Alias != nil {
		return "* as " + i.Alias.Value
	}
	return "*"
}

func (u *UsingDirective) String() string {
	var b strings.Builder
	b.WriteString("using ")
	b.WriteString(u.List.String())
	b.WriteString(" for ")
	if u.Ty == nil {
		b.WriteString("*")
	} else {
		b.WriteString(u.Ty.String())
	}
	if u.Global {
		b.WriteString(" global")
	}
	b.WriteString(";")
	return b.String()
}

func (u *UsingSingle) String() string {
	return u.Path.String()
}

func (u *UsingMultiple) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, entry := range u.Entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(entry.Path.String())
		if entry.Operator != nil {
			b.WriteString(" as ")
			b.WriteString(entry.Operator.String())
		}
	}
	b.WriteString(" }")
	return b.String()
}

func (c *ItemContract) String() string {
	var b strings.Builder
	b.WriteString(c.Kind.String())
	b.WriteString(" ")
	b.WriteString(c.Name.Value)
	for i, base := range c.Inheritance {
		if i == 0 {
			b.WriteString(" is ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(base.String())
	}
	b.WriteString(" {\n")
	for _, item := range c.Body {
		b.WriteString("  " + strings.ReplaceAll(item.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (f *ItemFunction) String() string {
	var b strings.Builder
	b.WriteString(f.Kind.String())
	if f.Header.Name != nil {
		b.WriteString(" ")
		b.WriteString(f.Header.Name.Value)
	}
	b.WriteString("(")
	for i, param := range f.Header.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.String())
	}
	b.WriteString(")")

	if f.Header.Visibility != nil {
		b.WriteString(" ")
		b.WriteString(f.Header.Visibility.String())
	}
	if f.Header.StateMutability != nil {
		b.WriteString(" ")
		b.WriteString(f.Header.StateMutability.String())
	}
	if f.Header.Virtual {
		b.WriteString(" virtual")
	}
	if f.Header.Override != nil {
		b.WriteString(" ")
		b.WriteString(f.Header.Override.String())
	}
	for _, mod := range f.Header.Modifiers {
		b.WriteString(" ")
		b.WriteString(mod.String())
	}
	if len(f.Header.Returns) > 0 {
		b.WriteString(" returns (")
		for i, ret := range f.Header.Returns {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(ret.String())
		}
		b.WriteString(")")
	}

	if f.Body == nil {
		b.WriteString(";")
	} else {
		b.WriteString(" ")
		b.WriteString(f.Body.String())
	}
	return b.String()
}

func (m *Modifier) String() string {
	return m.Name.String() + m.Arguments.String()
}

func (o *Override) String() string {
	if len(o.Paths) == 0 {
		return "override"
	}
	paths := make([]string, len(o.Paths))
	for i, p := range o.Paths {
		paths[i] = p.String()
	}
	return "override(" + strings.Join(paths, ", ") + ")"
}

func (v *VariableDeclaration) String() string {
	var b strings.Builder
	b.WriteString(v.Ty.String())
	if v.Storage != nil {
		b.WriteString(" ")
		b.WriteString(v.Storage.String())
	}
	if v.Indexed {
		b.WriteString(" indexed")
	}
	if v.Name != nil {
		b.WriteString(" ")
		b.WriteString(v.Name.Value)
	}
	return b.String()
}

func (v *VariableDefinition) String() string {
	var b strings.Builder
	b.WriteString(v.Ty.String())
	if v.Visibility != nil {
		b.WriteString(" ")
		b.WriteString(v.Visibility.String())
	}
	if v.Mutability != nil {
		b.WriteString(" ")
		b.WriteString(v.Mutability.String())
	}
	if v.Storage != nil {
		b.WriteString(" ")
		b.WriteString(v.Storage.String())
	}
	if v.Override != nil {
		b.WriteString(" ")
		b.WriteString(v.Override.String())
	}
	b.WriteString(" ")
	b.WriteString(v.Name.Value)
	if v.Initializer != nil {
		b.WriteString(" = ")
		b.WriteString(v.Initializer.String())
	}
	b.WriteString(";")
	return b.String()
}

func (s *ItemStruct) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("struct %s { ", s.Name.Value))
	for _, field := range s.Fields {
		b.WriteString(field.String())
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}

func (e *ItemEnum) String() string {
	variants := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		variants[i] = v.Value
	}
	return fmt.Sprintf("enum %s { %s }", e.Name.Value, strings.Join(variants, ", "))
}

func (u *ItemUdvt) String() string {
	return fmt.Sprintf("type %s is %s;", u.Name.Value, u.Ty.String())
}

func (e *ItemError) String() string {
	params := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		params[i] = p.String()
	}
	return fmt.Sprintf("error %s(%s);", e.Name.Value, strings.Join(params, ", "))
}

func (e *ItemEvent) String() string {
	params := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		params[i] = p.String()
	}
	if e.Anonymous {
		return fmt.Sprintf("event %s(%s) anonymous;", e.Name.Value, strings.Join(params, ", "))
	}
	return fmt.Sprintf("event %s(%s);", e.Name.Value, strings.Join(params, ", "))
}
