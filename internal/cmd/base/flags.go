package base

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// FlagSet wraps a standard flag.FlagSet. Unlike the standard parser it keeps
// going after the first positional argument, so flags may follow positionals:
//
//	endpoints scan "Extract totals" --text "..." --target /receipts/2026
//
// Everything after a bare "--" is positional.
type FlagSet struct {
	*flag.FlagSet

	positionals []string
}

// NewFlagSet wraps f. Parse errors are returned rather than printed.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Parse parses flags and positionals in any order.
func (f *FlagSet) Parse(args []string) error {
	f.positionals = nil

	for {
		if err := f.FlagSet.Parse(args); err != nil {
			return err
		}

		rest := f.FlagSet.Args()
		if len(rest) == 0 {
			return nil
		}

		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			f.positionals = append(f.positionals, rest...)
			return nil
		}

		f.positionals = append(f.positionals, rest[0])
		args = rest[1:]
	}
}

// Args returns the positional arguments.
func (f *FlagSet) Args() []string {
	return f.positionals
}

// NArg returns the number of positional arguments.
func (f *FlagSet) NArg() int {
	return len(f.positionals)
}

// Arg returns the i'th positional argument, or "" if there is none.
func (f *FlagSet) Arg(i int) string {
	if i < 0 || i >= len(f.positionals) {
		return ""
	}
	return f.positionals[i]
}

// StringSliceVar defines a repeatable flag whose values may also be
// comma-separated: "-file a.pdf,b.pdf -file c.pdf".
func (f *FlagSet) StringSliceVar(p *[]string, name, usage string) {
	f.Var((*stringSlice)(p), name, usage)
}

// Help renders the flags for inclusion in a command's help text.
func (f *FlagSet) Help() string {
	var flags []*flag.Flag
	f.VisitAll(func(fl *flag.Flag) {
		flags = append(flags, fl)
	})
	if len(flags) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	for _, fl := range flags {
		b.WriteString("\n  -" + fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		b.WriteString("\n      " + fl.Usage + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

type stringSlice []string

func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*s = append(*s, v)
		}
	}
	return nil
}
