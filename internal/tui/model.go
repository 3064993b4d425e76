package tui

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/fsutil"
	"github.com/yaklabco/docnav/pkg/loader"
	"github.com/yaklabco/docnav/pkg/page"
	"github.com/yaklabco/docnav/pkg/toc"
)

// Initial page size until the terminal reports its own.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

type focus int

const (
	focusPage focus = iota
	focusContents
)

// popup is a message box drawn over the page. Dialogs with a confirm command
// ask a yes/no question.
type popup struct {
	title   string
	message string
	confirm tea.Cmd
}

// Model is the Bubble Tea model of the viewer.
type Model struct {
	ctx    context.Context
	opts   Options
	logger *log.Logger

	path    string
	page    *page.Page
	cursor  *toc.Cursor
	watcher *Watcher
	// snapshot is the state of path when it was last shown.
	snapshot fsutil.Snapshot

	focus  focus
	popup  *popup
	status string

	width  int
	height int

	// reloadSeq identifies the latest file change; older reload ticks are
	// dropped.
	reloadSeq int
	quitting  bool
}

// New creates the model for tree, the parsed contents of opts.Path.
func New(ctx context.Context, tree *doctree.Tree, opts Options) *Model {
	opts = opts.withDefaults()

	p := page.New(tree, defaultWidth, defaultHeight, opts.Layout,
		page.WithLogger(opts.Logger),
		page.WithCacheSize(opts.CacheSize),
		page.WithContents(toc.Options{IncludeTop: opts.IncludeTop}),
	)

	m := &Model{
		ctx:    ctx,
		opts:   opts,
		logger: opts.Logger,
		path:   opts.Path,
		page:   p,
		cursor: toc.NewCursor(p.Contents()),
		width:  defaultWidth,
		height: defaultHeight,
	}
	if opts.Watch && opts.Path != "" {
		m.snapshot, _ = fsutil.Take(ctx, opts.Path)
	}
	m.resize()
	return m
}

// Page exposes the navigation state.
func (m *Model) Page() *page.Page {
	return m.page
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(m.title())}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.wait())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.popup != nil {
			return m.updatePopup(msg)
		}
		if m.focus == focusContents {
			return m.updateContents(msg)
		}
		return m.updatePage(msg)

	case documentLoadedMsg:
		m.loaded(msg)
		return m, tea.SetWindowTitle(m.title())

	case loadFailedMsg:
		m.logger.Warn("load failed", logging.FieldPath, msg.path, logging.FieldError, msg.err)
		m.popup = &popup{title: "Error", message: msg.err.Error()}
		return m, nil

	case fileChangedMsg:
		m.reloadSeq++
		if m.watcher == nil {
			return m, reloadAfter(m.reloadSeq)
		}
		return m, tea.Batch(reloadAfter(m.reloadSeq), m.watcher.wait())

	case reloadMsg:
		if msg.seq != m.reloadSeq {
			return m, nil
		}
		return m, reloadCmd(m.ctx, m.path, m.snapshot, m.opts.Loader)

	case unchangedMsg:
		m.logger.Debug("reload skipped", logging.FieldPath, m.path)
		return m, nil

	case watchErrMsg:
		m.logger.Warn("watch failed", logging.FieldError, msg.err)
		m.status = "watching stopped: " + msg.err.Error()
		return m, nil
	}

	return m, nil
}

func (m *Model) updatePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.page
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "left":
		p.SelectPrev()
	case "right":
		p.SelectNext()
	case "shift+left":
		p.SelectFirst()
	case "shift+right":
		p.SelectLast()
	case "shift+up":
		p.SelectTopLink()
	case "shift+down":
		p.SelectBottomLink()
	case "up", "k":
		p.ScrollBy(-m.opts.ScrollAmount)
	case "down", "j":
		p.ScrollBy(m.opts.ScrollAmount)
	case "ctrl+u", "pgup":
		p.ScrollHalfPage(-1)
	case "ctrl+d", "pgdown":
		p.ScrollHalfPage(1)
	case "g", "home":
		p.ScrollToTop()
	case "G", "end":
		p.ScrollToBottom()
	case "enter":
		return m, m.activate()
	case "tab":
		m.focus = focusContents
		m.resize()
	case "ctrl+r":
		mode := p.NextMode()
		m.status = "render mode: " + mode.String()
	}

	return m, nil
}

func (m *Model) updateContents(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k", "shift+tab":
		m.cursor.Prev()
	case "down", "j":
		m.cursor.Next()
	case "enter":
		m.page.SelectAnchor(m.cursor.Anchor())
		m.focus = focusPage
		m.resize()
	case "tab", "esc":
		m.focus = focusPage
		m.resize()
	}
	return m, nil
}

func (m *Model) updatePopup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.popup

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter", "y":
		m.popup = nil
		if current.confirm != nil {
			return m, current.confirm
		}
	case "esc", "n", "q":
		m.popup = nil
	}
	return m, nil
}

// activate acts on the selected link. Anchors jump directly; other kinds
// open a popup.
func (m *Model) activate() tea.Cmd {
	act := m.page.Activate()

	switch act.Kind {
	case page.ActivateIgnored:
		return nil

	case page.ActivateAnchor:
		target, _ := act.Target.(doctree.AnchorTarget)
		m.page.SelectAnchor(target.Anchor)
		m.status = act.Message
		return nil

	case page.ActivateInternal:
		target, _ := act.Target.(doctree.InternalTarget)
		path, ok := loader.ResolvePage(filepath.Dir(m.path), target.Page)
		if !ok {
			m.popup = &popup{
				title:   "Information",
				message: fmt.Sprintf("The page %q could not be found", target.Page),
			}
			return nil
		}
		m.popup = &popup{
			title:   "Information",
			message: act.Message,
			confirm: loadCmd(m.ctx, path, target.Anchor, false, m.opts.Loader),
		}
		return nil

	case page.ActivateExternal:
		m.popup = &popup{title: "Warning", message: act.Message}
		return nil

	default:
		m.popup = &popup{title: "Information", message: act.Message}
		return nil
	}
}

// loaded swaps in a new document. Reloads of the same file keep the scroll
// offset.
func (m *Model) loaded(msg documentLoadedMsg) {
	y := m.page.Viewport().Y

	m.page.Load(msg.tree)
	m.cursor.Reset(m.page.Contents())
	m.snapshot = msg.snapshot

	if msg.path != m.path {
		m.path = msg.path
		if m.watcher != nil {
			if err := m.watcher.Watch(msg.path); err != nil {
				m.logger.Warn("watch failed", logging.FieldPath, msg.path, logging.FieldError, err)
			}
		}
	}

	switch {
	case msg.anchor != "":
		m.page.SelectAnchor(msg.anchor)
	case msg.reload:
		m.page.ScrollToLine(y)
		m.status = "reloaded"
	}

	m.logger.Debug("document shown", logging.FieldPath, msg.path, logging.FieldNodes, msg.tree.Len())
}

func (m *Model) contentsVisible() bool {
	return m.opts.ShowContents || m.focus == focusContents
}

// contentsWidth returns the sidebar width, or zero when it is hidden.
func (m *Model) contentsWidth() int {
	if !m.contentsVisible() {
		return 0
	}
	width := m.width * m.opts.ContentsWidthPercent / 100
	return min(max(width, minContentsWidth), max(m.width-2, 0))
}

// bodyHeight is the height of the page and sidebar, above the status bar.
func (m *Model) bodyHeight() int {
	return max(m.height-1, 1)
}

// pageWidth is the text width left after the sidebar and the scrollbar.
func (m *Model) pageWidth() int {
	return max(m.width-m.contentsWidth()-1, 1)
}

func (m *Model) resize() {
	m.page.Resize(m.pageWidth(), m.bodyHeight())
}

func (m *Model) title() string {
	if title := m.page.Tree().Title(); title != "" {
		return title
	}
	return filepath.Base(m.path)
}
