package value

// CommandFunc implements a parser-level primitive (spec §3 "command":
// "reads its own trailing input directly from the line rather than
// receiving pre-evaluated arguments"). line is positioned just after the
// command name on entry; the implementation advances *line past
// whatever it consumes, mirroring the parser's own consume-and-return-
// true-or-leave-unchanged-and-return-false convention (spec §6).
// Special forms that need to control evaluation order themselves —
// `if`, `while`, `def`, `catch` — are implemented this way rather than
// as Functions, which always evaluate every argument before the native
// body runs.
type CommandFunc func(f Frame, line *string) (Value, error)

// Command is a named, registered parser-level primitive.
type Command struct {
	Header
	Name string
	Help string
	Fn   CommandFunc
}

// NewCommand registers a command value.
func NewCommand(l *Locals, name, help string, fn CommandFunc) *Command {
	c := &Command{Name: name, Help: help, Fn: fn}
	c.setKind(TCommand)
	if l != nil {
		return Alloc(l, c)
	}
	return c
}

func (c *Command) String(root Value) string { return "<command " + c.Name + ">" }

func printCommand(root, v Value) string { return v.(*Command).String(root) }

func init() { TCommand.Print = printCommand }
