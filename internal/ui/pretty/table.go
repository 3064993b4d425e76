package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"

	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/layout"
	"github.com/yaklabco/docnav/pkg/page"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // LINE, KIND, TEXT, TARGET
	minLineWidth     = 4
	minKindWidth     = 8
	minTextWidth     = 16
	minTargetWidth   = 16
	heavySeparator   = "="
	ellipsis         = "…"
	defaultTermWidth = 100
)

// LinkRow represents a single row in the links table.
type LinkRow struct {
	// Line is the zero-based display line of the link.
	Line   int
	Kind   page.ActivationKind
	Text   string
	Target string
}

// LinkRows lists the links of a rendered document in display order.
func LinkRows(tree *doctree.Tree, doc *layout.Document) []LinkRow {
	rows := make([]LinkRow, 0, len(doc.Links))
	for _, ll := range doc.Links {
		n, ok := tree.Node(ll.Node)
		if !ok {
			continue
		}
		link, ok := n.Data().(doctree.Link)
		if !ok {
			continue
		}
		kind, _ := page.Classify(link.Target)
		text := strings.Join(strings.Fields(n.TextContent()), " ")
		if text == "" {
			text = link.Title
		}
		rows = append(rows, LinkRow{
			Line:   ll.Line,
			Kind:   kind,
			Text:   text,
			Target: link.Target.String(),
		})
	}
	return rows
}

// TableFormatter formats link rows as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

type columnWidths struct {
	line   int
	kind   int
	text   int
	target int
}

// FormatLinks formats the links of one document. Lines are shown one-based.
func (t *TableFormatter) FormatLinks(rows []LinkRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	return builder.String()
}

func (t *TableFormatter) calculateColumnWidths(rows []LinkRow) columnWidths {
	widths := columnWidths{
		line:   minLineWidth,
		kind:   minKindWidth,
		text:   minTextWidth,
		target: minTargetWidth,
	}

	for _, row := range rows {
		widths.line = max(widths.line, len(strconv.Itoa(row.Line+1)))
		widths.kind = max(widths.kind, len(row.Kind.String()))
		widths.text = max(widths.text, runewidth.StringWidth(row.Text))
		widths.target = max(widths.target, runewidth.StringWidth(row.Target))
	}

	// Shrink the free-text columns to fit, target first.
	if excess := t.totalWidth(widths) - t.termWidth; excess > 0 {
		widths.target = max(minTargetWidth, widths.target-excess)
	}
	if excess := t.totalWidth(widths) - t.termWidth; excess > 0 {
		widths.text = max(minTextWidth, widths.text-excess)
	}

	return widths
}

func (t *TableFormatter) totalWidth(widths columnWidths) int {
	return widths.line + widths.kind + widths.text + widths.target + tablePadding*tableColumnCount
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %*s  %-*s  %-*s  %-*s ",
		widths.line, "LINE",
		widths.kind, "KIND",
		widths.text, "TEXT",
		widths.target, "TARGET",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, t.totalWidth(widths)))
}

func (t *TableFormatter) formatRow(row LinkRow, widths columnWidths) string {
	line := t.styles.LineNumber.Render(fmt.Sprintf("%*d", widths.line, row.Line+1))
	kind := t.styles.LinkKind(row.Kind).Render(pad(row.Kind.String(), widths.kind))
	text := pad(fit(row.Text, widths.text), widths.text)
	target := fit(row.Target, widths.target)

	return " " + line + "  " + kind + "  " + text + "  " + target
}

// fit truncates s to width cells, marking the cut with an ellipsis.
func fit(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}

// pad right-pads s with spaces to width cells.
func pad(s string, width int) string {
	return padding.String(s, uint(width))
}
