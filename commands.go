package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/runenames"

	"github.com/goKeyStuffer/input"
	"github.com/goKeyStuffer/keymaps"
	"github.com/goKeyStuffer/layout"
	"github.com/goKeyStuffer/send"
)

// loadModel resolves the layout the config selects: a YAML description, a
// built-in layout, or the layout of the foreground window.
func (c *rootCommand) loadModel() (*layout.Model, *keymaps.Description, error) {
	logger := c.gs.logger
	var (
		tr   layout.Translator
		id   layout.LayoutID
		desc *keymaps.Description
	)

	name := c.conf.Layout.String
	switch {
	case c.conf.LayoutFile.String != "":
		d, err := keymaps.LoadDescriptionFile(c.conf.LayoutFile.String)
		if err != nil {
			return nil, nil, err
		}
		tr, id, desc = layout.NewStaticTranslator(d), d.ID, d
	case name == "":
		htr, src, err := c.gs.hostLayout()
		if errors.Is(err, input.ErrUnsupported) {
			logger.Warn("Reading the active layout is not supported here, using the built-in us layout")
			name = "us"
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if id, err = src.CurrentLayoutID(); err != nil {
			return nil, nil, err
		}
		tr = htr
		// A built-in description of the same layout tells the uinput
		// backend where its keys sit.
		desc, _ = keymaps.CreateDefaultRegistry().ByID(id)
	}

	if tr == nil {
		r := keymaps.CreateDefaultRegistry()
		d, ok := r.Get(name)
		if !ok {
			return nil, nil, fmt.Errorf("unknown layout %q, built-in layouts: %s", name, strings.Join(r.Names(), ", "))
		}
		tr, id, desc = layout.NewRegistryTranslator(r), d.ID, d
	}

	m, err := layout.Build(tr, id, layout.WithLogger(logger), layout.WithProbePolicy(c.conf.ProbePolicy()))
	if err != nil {
		return nil, nil, err
	}
	return m, desc, nil
}

// typer wires a synthesizer for the selected layout to the injector. The
// returned func releases the injector.
func (c *rootCommand) typer() (*send.Typer, func() error, error) {
	m, desc, err := c.loadModel()
	if err != nil {
		return nil, nil, err
	}

	opts := []send.Option{send.WithLogger(c.gs.logger)}
	if c.conf.Message.Valid {
		msg, err := c.gs.registerMessage(c.conf.Message.String)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, send.WithMessage(msg))
	}

	var (
		inj     input.Injector
		closeFn = func() error { return nil }
	)
	if c.conf.DryRun.Bool {
		rec := &input.Recorder{}
		inj = rec
		closeFn = func() error { return printEvents(c.gs.stdout, rec.Events()) }
	} else {
		inj, closeFn, err = c.gs.openInjector(c.gs.ctx, c.conf, desc, c.gs.logger)
		if err != nil {
			return nil, nil, err
		}
	}

	return &send.Typer{
		Synth:     send.New(m, opts...),
		Injector:  inj,
		ChunkSize: int(c.conf.ChunkSize.Int64),
	}, closeFn, nil
}

func printEvents(w io.Writer, events []input.Input) error {
	for _, ev := range events {
		if _, err := fmt.Fprintln(w, ev); err != nil {
			return err
		}
	}
	return nil
}

func getTypeCmd(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "type [text...]",
		Short: "Type text, read from stdin when no arguments are given",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				text = string(data)
			}

			t, closeFn, err := c.typer()
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, closeFn()) }()

			var sent int
			for _, line := range strings.SplitAfter(text, "\n") {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				n, err := t.Type(line)
				sent += n
				if err != nil {
					return err
				}
			}
			c.gs.logger.WithField("events", sent).Debug("Text typed")
			return nil
		},
	}
}

func getKeyCmd(c *rootCommand) *cobra.Command {
	var down, up bool
	cmd := &cobra.Command{
		Use:   "key name...",
		Short: "Press and release named keys, e.g. RETURN, shift_l, F5",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if down && up {
				return errors.New("--down and --up are mutually exclusive")
			}
			t, closeFn, err := c.typer()
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, closeFn()) }()

			for _, name := range args {
				switch {
				case down:
					err = t.Key(name, true)
				case up:
					err = t.Key(name, false)
				default:
					err = t.Tap(name)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "only press the keys")
	cmd.Flags().BoolVar(&up, "up", false, "only release the keys")
	return cmd
}

func getDumpCmd(c *rootCommand) *cobra.Command {
	var names bool
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Show how every character of the layout is typed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, _, err := c.loadModel()
			if err != nil {
				return err
			}
			if names {
				return dumpNames(cmd.OutOrStdout(), m)
			}
			return dumpChars(cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().BoolVar(&names, "names", false, "list key names instead of characters")
	return cmd
}

var (
	codeColor  = color.New(color.FgCyan)
	chordColor = color.New(color.FgGreen)
	noteColor  = color.New(color.Faint)
)

func dumpChars(w io.Writer, m *layout.Model) error {
	chars := m.Chars()
	runes := make([]rune, 0, len(chars))
	for r := range chars {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	for _, r := range runes {
		glyph := string(r)
		if r < 0x20 || r == 0x7F {
			glyph = fmt.Sprintf("%q", r)
		}
		name := runenames.Name(r)
		if n, ok := keymaps.CharName(r); ok {
			name += " (" + n + ")"
		}
		_, err := fmt.Fprintf(w, "%s %-6s %s %s\n",
			codeColor.Sprintf("U+%04X", r), glyph, chordColor.Sprintf("%-18s", chars[r]), noteColor.Sprint(name))
		if err != nil {
			return err
		}
	}
	return nil
}

func dumpNames(w io.Writer, m *layout.Model) error {
	names := m.Names()
	keys := make([]string, 0, len(names))
	for n := range names {
		keys = append(keys, n)
	}
	sort.Strings(keys)

	for _, n := range keys {
		vk := names[n]
		var notes []string
		if r, ok := keymaps.CharByName(n); ok {
			notes = append(notes, fmt.Sprintf("%q", r))
		}
		if alt, ok := keymaps.AltName(vk); ok && alt != n {
			notes = append(notes, "alt "+alt)
		}
		_, err := fmt.Fprintf(w, "%-24s %-12s %s\n", n, chordColor.Sprint(vk), noteColor.Sprint(strings.Join(notes, ", ")))
		if err != nil {
			return err
		}
	}
	return nil
}

func getLayoutsCmd(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List built-in and installed keyboard layouts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			r := keymaps.CreateDefaultRegistry()
			for _, name := range r.Names() {
				d, _ := r.Get(name)
				fmt.Fprintf(w, "%s %s\n", codeColor.Sprint(d.ID), name)
			}

			ids, err := c.gs.hostLayouts()
			if errors.Is(err, input.ErrUnsupported) {
				return nil
			}
			if err != nil {
				return err
			}
			var current layout.LayoutID
			if _, src, err := c.gs.hostLayout(); err == nil {
				if id, err := src.CurrentLayoutID(); err == nil {
					current = id
				}
			}
			for _, id := range ids {
				note := "installed"
				if id == current {
					note = "installed, active"
				}
				fmt.Fprintf(w, "%s %s\n", codeColor.Sprint(id), noteColor.Sprint(note))
			}
			return nil
		},
	}
}
