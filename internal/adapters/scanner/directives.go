package scanner

import (
	"bytes"
	"slices"
	"strings"
)

// Include is one #include, #include_next or #import directive.
type Include struct {
	// Spec is the operand as written: "path.h", <path.h> or a macro name.
	Spec string
	// Next is set for #include_next.
	Next bool
}

// Quoted reports whether the operand is a "path.h" form.
func (i Include) Quoted() bool {
	return strings.HasPrefix(i.Spec, `"`)
}

// Directives is what a single file contributes to dependency analysis.
type Directives struct {
	Includes []Include
	// Defines maps object-like macros to the include operands they may expand to.
	Defines map[string][]string
	// Macros are the macro names the file consults, deduplicated in first-use order.
	Macros []string
}

func (d *Directives) useMacro(name string) {
	if name == "" || slices.Contains(d.Macros, name) {
		return
	}
	d.Macros = append(d.Macros, name)
}

// ScanDirectives scans the preprocessor directives of buf.
// Only lines starting with # are considered; conditionals are not evaluated,
// so every branch contributes includes. Backslash continued lines are joined.
func ScanDirectives(buf []byte) Directives {
	d := Directives{Defines: make(map[string][]string)}
	buf = spliceLines(buf)

	for len(buf) > 0 {
		buf = bytes.TrimSpace(buf)
		if len(buf) == 0 {
			break
		}
		var line []byte
		if i := bytes.IndexByte(buf, '\n'); i < 0 {
			line, buf = buf, nil
		} else {
			line, buf = buf[:i], buf[i+1:]
		}
		if line[0] != '#' {
			continue
		}
		line = bytes.TrimSpace(line[1:])

		name, rest := directiveName(line)
		switch name {
		case "include", "import":
			d.addInclude(rest, false)
		case "include_next":
			d.addInclude(rest, true)
		case "define":
			d.addDefine(rest)
		case "undef", "ifdef", "ifndef":
			d.useMacro(firstIdentifier(rest))
		case "if", "elif":
			for _, ident := range conditionIdentifiers(rest) {
				d.useMacro(ident)
			}
		}
	}

	return d
}

// directiveName splits a directive line after # into its name and operand.
func directiveName(line []byte) (string, []byte) {
	i := 0
	for i < len(line) && isIdentByte(line[i]) {
		i++
	}
	if i == 0 {
		return "", nil
	}
	return string(line[:i]), stripComment(bytes.TrimSpace(line[i:]))
}

func (d *Directives) addInclude(operand []byte, next bool) {
	if len(operand) == 0 {
		return
	}
	var spec string
	switch operand[0] {
	case '"', '<':
		closing := byte('"')
		if operand[0] == '<' {
			closing = '>'
		}
		i := bytes.IndexByte(operand[1:], closing)
		if i < 0 {
			return
		}
		spec = string(operand[:i+2])
	default:
		spec = firstIdentifier(operand)
		if spec == "" {
			return
		}
		d.useMacro(spec)
	}
	d.Includes = append(d.Includes, Include{Spec: spec, Next: next})
}

// addDefine records object-like macros whose value is an include operand or
// another macro name. Function-like macros are ignored.
func (d *Directives) addDefine(operand []byte) {
	i := 0
	for i < len(operand) && isIdentByte(operand[i]) {
		i++
	}
	if i == 0 || (i < len(operand) && operand[i] == '(') {
		return
	}
	macro := string(operand[:i])
	value := bytes.TrimSpace(operand[i:])
	if len(value) == 0 {
		return
	}

	switch value[0] {
	case '"', '<':
		closing := byte('"')
		if value[0] == '<' {
			closing = '>'
		}
		j := bytes.IndexByte(value[1:], closing)
		if j < 0 {
			return
		}
		d.Defines[macro] = append(d.Defines[macro], string(value[:j+2]))
	default:
		if ident := firstIdentifier(value); ident != "" && len(ident) == len(bytes.Fields(value)[0]) {
			d.Defines[macro] = append(d.Defines[macro], ident)
		}
	}
}

// conditionIdentifiers returns the macro names referenced by an #if expression.
func conditionIdentifiers(expr []byte) []string {
	var idents []string
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case isIdentStart(c):
			j := i
			for j < len(expr) && isIdentByte(expr[j]) {
				j++
			}
			ident := string(expr[i:j])
			i = j
			switch {
			case ident == "defined":
			case strings.HasPrefix(ident, "__has_"):
				// The operand of __has_include and friends is not a macro.
				if k := bytes.IndexByte(expr[j:], ')'); k >= 0 {
					i = j + k + 1
				}
			default:
				idents = append(idents, ident)
			}
		case c >= '0' && c <= '9':
			for i < len(expr) && isIdentByte(expr[i]) {
				i++
			}
		case c == '\'' || c == '"':
			j := bytes.IndexByte(expr[i+1:], c)
			if j < 0 {
				return idents
			}
			i += j + 2
		default:
			i++
		}
	}
	return idents
}

func firstIdentifier(b []byte) string {
	b = bytes.TrimLeft(b, " \t(")
	if len(b) == 0 || !isIdentStart(b[0]) {
		return ""
	}
	i := 0
	for i < len(b) && isIdentByte(b[i]) {
		i++
	}
	return string(b[:i])
}

// spliceLines removes backslash-newline pairs.
func spliceLines(buf []byte) []byte {
	if bytes.IndexByte(buf, '\\') < 0 {
		return buf
	}
	buf = bytes.ReplaceAll(buf, []byte("\\\r\n"), nil)
	return bytes.ReplaceAll(buf, []byte("\\\n"), nil)
}

// stripComment cuts a trailing comment. Comment markers inside "..." literals
// and inside a <...> operand are part of the operand.
func stripComment(b []byte) []byte {
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '"':
			if j := bytes.IndexByte(b[i+1:], '"'); j >= 0 {
				i += j + 1
			}
		case '<':
			if operandStart(b[:i]) {
				if j := bytes.IndexByte(b[i+1:], '>'); j >= 0 {
					i += j + 1
				}
			}
		case '/':
			if i+1 < len(b) && (b[i+1] == '/' || b[i+1] == '*') {
				return bytes.TrimSpace(b[:i])
			}
		}
	}
	return bytes.TrimSpace(b)
}

// operandStart reports whether a < following prefix opens an include operand,
// either of #include or as the value of a #define.
func operandStart(prefix []byte) bool {
	prefix = bytes.TrimSpace(prefix)
	for _, c := range prefix {
		if !isIdentByte(c) {
			return false
		}
	}
	return true
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
