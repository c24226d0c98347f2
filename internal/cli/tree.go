package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotuml/pkg/pkgtree"
	"github.com/matzehuels/dotuml/pkg/puml"
)

func (c *CLI) treeCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "tree INPUT.dot",
		Short: "Show the package tree inferred from class names",
		Long: `Show how classes are grouped into packages before converting.

Package names are shaded with the color they will get in the PlantUML output.
Use --interactive to browse large diagrams and expand packages one at a time.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd.Context(), args[0], interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the tree interactively")
	return cmd
}

func (c *CLI) runTree(ctx context.Context, input string, interactive bool) error {
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	result, err := runner.Load(input)
	if err != nil {
		return err
	}
	palette := runner.Config.Palette

	if !interactive {
		fmt.Fprint(c.out, renderTree(result.Tree, palette))
		printStats(c.out, result.Stats.Classes, 0, result.Stats.Packages)
		return nil
	}

	p := tea.NewProgram(newTreeModel(result.Tree, palette), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// =============================================================================
// Static tree
// =============================================================================

var (
	styleBranch = lipgloss.NewStyle().Foreground(colorDim)
	styleClass  = lipgloss.NewStyle().Foreground(colorGray)
)

// packageStyle shades a package name with its depth color. Light shades get
// dark text.
func packageStyle(palette puml.Palette, depth int) lipgloss.Style {
	fg := lipgloss.Color("#FFFFFF")
	if palette.Lightness(depth) >= 50 {
		fg = lipgloss.Color("#000000")
	}
	return lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(palette.Color(depth))).
		Foreground(fg).
		Padding(0, 1)
}

// renderTree draws the package hierarchy below root, one line per package or
// class, with box-drawing branches.
func renderTree(root *pkgtree.Package, palette puml.Palette) string {
	var b strings.Builder
	for _, p := range root.Children() {
		b.WriteString(packageStyle(palette, p.Depth).Render(p.Name))
		b.WriteString("\n")
		writeBranches(&b, p, "", palette)
	}
	return b.String()
}

func writeBranches(w io.StringWriter, p *pkgtree.Package, prefix string, palette puml.Palette) {
	children := p.Children()
	classes := p.Classes()
	total := len(children) + len(classes)

	for i := 0; i < total; i++ {
		last := i == total-1
		branch, indent := "├── ", "│   "
		if last {
			branch, indent = "└── ", "    "
		}
		w.WriteString(prefix + styleBranch.Render(branch))

		if i < len(children) {
			child := children[i]
			w.WriteString(packageStyle(palette, child.Depth).Render(child.Name) + "\n")
			writeBranches(w, child, prefix+styleBranch.Render(indent), palette)
			continue
		}
		w.WriteString(styleClass.Render(classes[i-len(children)].Class.Name) + "\n")
	}
}

// =============================================================================
// Interactive tree
// =============================================================================

var (
	treeTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	treeHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// treeRow is one visible line of the interactive tree.
type treeRow struct {
	path  string // dotted package path, empty for classes
	name  string
	level int
	pkg   *pkgtree.Package
}

func (r treeRow) isPackage() bool { return r.pkg != nil }

// treeModel is the bubbletea model for browsing the package tree.
type treeModel struct {
	root     *pkgtree.Package
	palette  puml.Palette
	expanded map[string]bool
	rows     []treeRow
	cursor   int
	offset   int
	height   int
}

func newTreeModel(root *pkgtree.Package, palette puml.Palette) treeModel {
	m := treeModel{
		root:     root,
		palette:  palette,
		expanded: make(map[string]bool),
		height:   15,
	}
	m.rows = m.flatten()
	return m
}

// flatten lists the packages and classes visible with the current expansion.
func (m treeModel) flatten() []treeRow {
	var rows []treeRow
	var visit func(p *pkgtree.Package, path string, level int)
	visit = func(p *pkgtree.Package, path string, level int) {
		for _, child := range p.Children() {
			childPath := child.Name
			if path != "" {
				childPath = path + "." + child.Name
			}
			rows = append(rows, treeRow{path: childPath, name: child.Name, level: level, pkg: child})
			if m.expanded[childPath] {
				visit(child, childPath, level+1)
			}
		}
		if p.IsRoot() {
			return
		}
		for _, e := range p.Classes() {
			rows = append(rows, treeRow{name: e.Class.Name, level: level})
		}
	}
	visit(m.root, "", 0)
	return rows
}

func (m treeModel) Init() tea.Cmd {
	return nil
}

func (m treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "enter", " ", "right", "left", "l", "h":
			m = m.toggle(msg.String())
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-6, 5)
	}
	m.scroll()
	return m, nil
}

// toggle expands or collapses the package under the cursor. "right" and "l"
// only expand, "left" and "h" only collapse.
func (m treeModel) toggle(key string) treeModel {
	if m.cursor >= len(m.rows) || !m.rows[m.cursor].isPackage() {
		return m
	}
	path := m.rows[m.cursor].path
	open := m.expanded[path]
	switch key {
	case "right", "l":
		open = true
	case "left", "h":
		open = false
	default:
		open = !open
	}

	expanded := make(map[string]bool, len(m.expanded)+1)
	for k, v := range m.expanded {
		expanded[k] = v
	}
	expanded[path] = open
	m.expanded = expanded
	m.rows = m.flatten()
	return m
}

func (m *treeModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m treeModel) View() string {
	var b strings.Builder

	b.WriteString(treeTitleStyle.Render("Packages"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ navigate  ⏎ expand/collapse  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.rows))
	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		marker := "  "
		depth, color, classes := "", "", ""
		if r.isPackage() {
			marker = "+ "
			if m.expanded[r.path] {
				marker = "- "
			}
			depth = fmt.Sprintf("%d", r.pkg.Depth)
			color = m.palette.Color(r.pkg.Depth)
			classes = fmt.Sprintf("%d", len(r.pkg.Classes()))
		}
		name := strings.Repeat("  ", r.level) + marker + r.name
		rows = append(rows, []string{cursor, name, depth, color, classes})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Depth", "Color", "Classes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return treeHeaderStyle
			}
			idx := m.offset + row
			if idx >= len(m.rows) {
				return lipgloss.NewStyle()
			}
			r := m.rows[idx]
			base := lipgloss.NewStyle()
			if idx == m.cursor {
				base = base.Bold(true)
			}
			switch {
			case col == 3 && r.isPackage():
				return base.Foreground(lipgloss.Color(m.palette.Color(r.pkg.Depth)))
			case r.isPackage():
				return base.Foreground(colorWhite)
			default:
				return base.Foreground(colorDim)
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("  [%d/%d]", min(m.cursor+1, len(m.rows)), len(m.rows))))

	return b.String()
}
