package scanner

import (
	"path/filepath"
	"strings"

	"go.trai.ch/depcache/internal/core/domain"
)

// SearchPaths are the include directories of a project part, in search order.
type SearchPaths struct {
	// Quote directories are searched for "path.h" includes only (-iquote).
	Quote []string
	// Project directories come from -I and the configured include paths.
	Project []string
	// System directories come from -isystem and -idirafter.
	System []string
}

// ParseArguments extracts include directories and include-valued macro
// definitions from compiler arguments. Relative directories are resolved
// against base.
func ParseArguments(args []string, base string) (SearchPaths, map[string][]string) {
	var sp SearchPaths
	defines := make(map[string][]string)

	abs := func(dir string) string {
		if dir == "" || filepath.IsAbs(dir) {
			return filepath.Clean(dir)
		}
		return filepath.Join(base, dir)
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-I", "--include-directory", "-isystem", "-iquote", "-idirafter", "-D":
			if i+1 >= len(args) {
				continue
			}
			i++
			value := args[i]
			switch arg {
			case "-isystem", "-idirafter":
				sp.System = append(sp.System, abs(value))
			case "-iquote":
				sp.Quote = append(sp.Quote, abs(value))
			case "-D":
				defineMacro(defines, value)
			default:
				sp.Project = append(sp.Project, abs(value))
			}
			continue
		}
		switch {
		case strings.HasPrefix(arg, "--include-directory="):
			sp.Project = append(sp.Project, abs(strings.TrimPrefix(arg, "--include-directory=")))
		case strings.HasPrefix(arg, "-isystem"):
			sp.System = append(sp.System, abs(strings.TrimPrefix(arg, "-isystem")))
		case strings.HasPrefix(arg, "-idirafter"):
			sp.System = append(sp.System, abs(strings.TrimPrefix(arg, "-idirafter")))
		case strings.HasPrefix(arg, "-iquote"):
			sp.Quote = append(sp.Quote, abs(strings.TrimPrefix(arg, "-iquote")))
		case strings.HasPrefix(arg, "-I"):
			sp.Project = append(sp.Project, abs(strings.TrimPrefix(arg, "-I")))
		case strings.HasPrefix(arg, "-D"):
			defineMacro(defines, strings.TrimPrefix(arg, "-D"))
		}
	}

	return sp, defines
}

// AddCompilerMacros adds the include-valued macros of a project part to defines.
func AddCompilerMacros(defines map[string][]string, macros []domain.CompilerMacro) {
	for _, m := range macros {
		defineMacro(defines, m.Key+"="+m.Value)
	}
}

func defineMacro(defines map[string][]string, arg string) {
	macro, value, ok := strings.Cut(arg, "=")
	if !ok || value == "" {
		return
	}
	switch value[0] {
	case '<', '"':
		defines[macro] = append(defines[macro], value)
	}
}
