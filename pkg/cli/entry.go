package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/funvibe/either/internal/ast"
	"github.com/funvibe/either/internal/config"
	"github.com/funvibe/either/internal/decls"
	"github.com/funvibe/either/internal/evaluator"
	"github.com/funvibe/either/internal/prettyprinter"
	"github.com/funvibe/either/internal/typesystem"
)

const usage = `Usage: either [flags] [command] [args]

Commands:
  describe              print every declared type, its default value and bound constants (default)
  check                 elaborate the declarations and report problems
  value TYPE [VARIANT]  print a freshly constructed value of TYPE

Flags:
`

// session is one elaborated declaration file.
type session struct {
	path    string
	mod     *ast.Module
	env     *evaluator.Environment
	types   []typesystem.ValueType
	factory *typesystem.Factory
}

func load(path string) (*session, error) {
	if path == "" {
		found, err := decls.Find(".")
		if err != nil {
			return nil, err
		}
		if found == "" {
			return nil, fmt.Errorf("no %s found in this directory or its parents", strings.Join(config.DeclFileNames, " or "))
		}
		path = found
	}
	mod, err := decls.Load(path)
	if err != nil {
		return nil, err
	}
	s := &session{
		path:    path,
		mod:     mod,
		env:     evaluator.NewEnvironment(),
		factory: typesystem.NewFactory(nil),
	}
	s.types, err = evaluator.Elaborate(mod, s.env, s.factory)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Run executes the CLI with args (without the program name) and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) (code int) {
	logger := log.New(stderr, "", 0)

	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			logger.Printf("Internal error: %v", r)
			logger.Println("This is a bug. Please report it.")
			code = 1
		}
	}()

	if os.Getenv("EITHER_TEST_MODE") == "1" {
		config.IsTestMode = true
	}

	fs := flag.NewFlagSet("either", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	file := fs.String("f", "", "declaration file (default: nearest either.yaml)")
	noColor := fs.Bool("no-color", false, "disable colored output")
	width := fs.Int("width", 100, "line width for printed declarations (0 = unlimited)")
	version := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *version {
		fmt.Fprintln(stdout, "either "+config.Version)
		return 0
	}

	out := &printer{w: stdout, color: !*noColor && colorEnabled(stdout), width: *width}

	cmd, rest := "describe", fs.Args()
	if len(rest) > 0 {
		cmd, rest = rest[0], rest[1:]
	}

	switch cmd {
	case "describe", "check", "value":
	default:
		logger.Printf("unknown command %q", cmd)
		fs.Usage()
		return 2
	}

	s, err := load(*file)
	if err != nil {
		logger.Printf("error: %v", err)
		return 1
	}

	switch cmd {
	case "check":
		fmt.Fprintf(stdout, "ok: %d types, %d constants\n", len(s.types), len(s.env.Names()))
	case "value":
		if err := runValue(s, rest, out); err != nil {
			logger.Printf("error: %v", err)
			return 1
		}
	default:
		describe(s, out)
	}
	return 0
}

func runValue(s *session, args []string, out *printer) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.New("value expects TYPE [VARIANT]")
	}
	t, ok := s.factory.Registry().LookupName(args[0])
	if !ok {
		return fmt.Errorf("unknown type: %s", args[0])
	}
	if len(args) == 1 {
		out.line(t.MakeDefaultValue().String())
		return nil
	}
	et, ok := t.(*typesystem.EitherType)
	if !ok {
		return fmt.Errorf("%s is not an either type", t)
	}
	v, err := et.NewValue(args[1])
	if err != nil {
		return err
	}
	out.line(v.String())
	return nil
}

func describe(s *session, out *printer) {
	for i, td := range s.mod.Types {
		p := prettyprinter.NewCodePrinterWithWidth(out.width)
		td.Accept(p)
		out.line(out.bold(p.String()))

		t := s.types[i]
		out.line("  default: " + t.MakeDefaultValue().String())
		if et, ok := t.(*typesystem.EitherType); ok {
			out.line("  variants: " + strings.Join(et.VariantNames(), ", "))
		}
	}

	names := s.env.Names()
	if len(names) == 0 {
		return
	}
	out.line("constants:")
	for _, name := range names {
		v, _ := s.env.Get(name)
		out.line(fmt.Sprintf("  %s = %s : %s", out.cyan(name), v.String(), v.Type()))
	}
}
