// Package cmdline implements the driver's command-line option parser: a
// registry of options with five value-passing modes, an ordered value list
// per option, and the list of positional (non-option) arguments.
package cmdline

import (
	"fmt"
	"strings"
)

// ValueKind describes how an option accepts its value.
type ValueKind int

const (
	NoValue              ValueKind = iota // flag only: -v
	OptionalValue                         // value may be attached: -Ofast
	ValueAfterSpace                       // value is the next argument: -o file
	ValueAttached                         // value is appended, required: -std=c99
	ValueAttachedOrSpace                  // attached or next argument: -DFOO, -D FOO
)

// Option is one registered option.
type Option struct {
	Short     string
	Long      string
	Help      string
	Kind      ValueKind
	ValueName string // placeholder shown in help text
	index     int
}

// name is the option's primary spelling, used in messages.
func (o *Option) name() string {
	if o.Short != "" {
		return o.Short
	}
	return o.Long
}

// match reports whether arg selects this option and returns the matched
// spelling. Options that take attached values match by prefix so that
// "-DFOO" and "-std=c99" select "-D" and "-std=".
func (o *Option) match(arg string) (string, bool) {
	switch o.Kind {
	case NoValue, ValueAfterSpace:
		if o.Short != "" && arg == o.Short {
			return o.Short, true
		}
		if o.Long != "" && arg == o.Long {
			return o.Long, true
		}
	default:
		if o.Long != "" && strings.HasPrefix(arg, o.Long) {
			return o.Long, true
		}
		if o.Short != "" && strings.HasPrefix(arg, o.Short) {
			return o.Short, true
		}
	}
	return "", false
}

// CmdLine holds the registered options and the result of parsing.
type CmdLine struct {
	options []Option
	values  map[int][]string
	Others  []string // positional arguments, in command-line order
}

func New() *CmdLine {
	return &CmdLine{values: make(map[int][]string)}
}

// Add registers an option. A registration with neither a short nor a long
// spelling, or without help text, is ignored, as is a duplicate of an
// already registered option.
func (c *CmdLine) Add(short, long, help string, kind ValueKind, valueName string) {
	if short == "" && long == "" {
		return
	}
	if help == "" {
		return
	}
	for _, opt := range c.options {
		if opt.Short == short && opt.Long == long {
			return
		}
	}
	if valueName == "" {
		valueName = "value"
	}
	c.options = append(c.options, Option{
		Short:     short,
		Long:      long,
		Help:      help,
		Kind:      kind,
		ValueName: valueName,
		index:     len(c.options),
	})
}

// Parse walks the argument list, filling per-option value lists and the
// Others list. An option whose value mode requires a following argument
// fails when the list ends first.
func (c *CmdLine) Parse(args []string) error {
	pending := false
	pendingIndex := 0

	for _, arg := range args {
		if pending {
			pending = false
			c.values[pendingIndex] = append(c.values[pendingIndex], arg)
			continue
		}

		matched := false
		for i := range c.options {
			opt := &c.options[i]
			name, ok := opt.match(arg)
			if !ok {
				continue
			}
			matched = true

			switch opt.Kind {
			case NoValue:
				c.touch(opt.index)
			case ValueAfterSpace:
				pending = true
				pendingIndex = opt.index
			case OptionalValue:
				if value := strings.TrimPrefix(arg, name); value != "" {
					c.values[opt.index] = append(c.values[opt.index], value)
				} else {
					c.touch(opt.index)
				}
			case ValueAttached:
				value := strings.TrimPrefix(arg, name)
				if value == "" {
					return fmt.Errorf("%s: missing value", opt.name())
				}
				c.values[opt.index] = append(c.values[opt.index], value)
			case ValueAttachedOrSpace:
				value := strings.TrimPrefix(arg, name)
				if value == "" {
					pending = true
					pendingIndex = opt.index
					break
				}
				c.values[opt.index] = append(c.values[opt.index], value)
			}
			break
		}

		if !matched {
			c.Others = append(c.Others, arg)
		}
	}

	if pending {
		return fmt.Errorf("%s: missing value", c.options[pendingIndex].name())
	}
	return nil
}

// touch records that an option occurred without adding a value.
func (c *CmdLine) touch(index int) {
	if _, ok := c.values[index]; !ok {
		c.values[index] = []string{}
	}
}

// Has reports whether the named option occurred on the command line.
func (c *CmdLine) Has(name string) bool {
	if opt := c.lookup(name); opt != nil {
		_, ok := c.values[opt.index]
		return ok
	}
	return false
}

// ValuesOf returns the ordered values collected for the named option and
// whether the option occurred at all.
func (c *CmdLine) ValuesOf(name string) ([]string, bool) {
	if opt := c.lookup(name); opt != nil {
		values, ok := c.values[opt.index]
		return values, ok
	}
	return nil, false
}

func (c *CmdLine) lookup(name string) *Option {
	for i := range c.options {
		if c.options[i].Short == name || c.options[i].Long == name {
			return &c.options[i]
		}
	}
	return nil
}

// Help renders the option table: two columns, help text indented to
// column 25, overlong left columns wrapped onto their own line. No
// trailing newline.
func (c *CmdLine) Help() string {
	var b strings.Builder
	for _, opt := range c.options {
		line := "  "
		if opt.Short != "" {
			line += opt.Short
			if opt.Long != "" {
				line += fmt.Sprintf("(%s)", opt.Long)
			}
		} else {
			line += opt.Long
		}

		switch opt.Kind {
		case OptionalValue:
			line += fmt.Sprintf("[%s]", opt.ValueName)
		case ValueAfterSpace:
			line += fmt.Sprintf(" <%s>", opt.ValueName)
		case ValueAttached:
			line += fmt.Sprintf("<%s>", opt.ValueName)
		case ValueAttachedOrSpace:
			line += fmt.Sprintf("[ ]<%s>", opt.ValueName)
		}

		if len(line) < 24 {
			line += strings.Repeat(" ", 25-len(line))
		} else {
			line += "\n" + strings.Repeat(" ", 25)
		}

		b.WriteString(line)
		b.WriteString(opt.Help)
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}
