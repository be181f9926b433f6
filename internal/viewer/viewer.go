// Package viewer renders incoming log lines and their decoded form in a
// terminal UI.
package viewer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/beccau/fix-mode/internal/decoder"
	"github.com/beccau/fix-mode/internal/dictionary"
	"github.com/beccau/fix-mode/internal/source"
	"github.com/beccau/fix-mode/pkg/log"
)

// separator closes each decoded message in the output pane.
const separator = "----------------------------------------"

// Viewer owns the TUI and pulls lines from a source on a refresh loop.
type Viewer struct {
	app    *tview.Application
	tabs   *tview.Pages
	src    source.Source
	store  *dictionary.Store
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex

	// UI elements cached for updates
	rawText     *tview.TextView
	decodedText *tview.TextView
	statusText  *tview.TextView
	helpText    *tview.TextView

	messages int
}

func New(src source.Source, store *dictionary.Store) *Viewer {
	ctx, cancel := context.WithCancel(context.Background())
	v := &Viewer{
		app:    tview.NewApplication(),
		tabs:   tview.NewPages(),
		src:    src,
		store:  store,
		ctx:    ctx,
		cancel: cancel,
	}
	return v
}

func (v *Viewer) Run() error {
	// start source
	if err := v.src.Start(v.ctx); err != nil {
		return err
	}

	// build UI
	decoded := v.buildDecoded()
	raw := v.buildRaw()

	// header area: title, status, help
	title := tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText("fix-mode - FIX log decoder")
	v.statusText = tview.NewTextView().SetTextAlign(tview.AlignCenter).SetDynamicColors(true)
	v.helpText = tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText("[1 - Decoded] [2 - Raw] [q - Quit]")

	headerFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	headerFlex.AddItem(title, 1, 0, false)
	headerFlex.AddItem(v.statusText, 1, 0, false)
	headerFlex.AddItem(v.helpText, 1, 0, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(headerFlex, 3, 0, false)

	v.tabs.AddPage("decoded", decoded, true, true)
	v.tabs.AddPage("raw", raw, true, false)
	mainFlex.AddItem(v.tabs, 0, 1, true)

	v.app.SetRoot(mainFlex, true)
	v.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q', 'Q':
			v.Shutdown()
			return nil
		case '1':
			v.tabs.SwitchToPage("decoded")
			return nil
		case '2':
			v.tabs.SwitchToPage("raw")
			return nil
		}
		return event
	})

	v.updateStatus()

	// refresh loop
	go v.refreshLoop()

	if err := v.app.Run(); err != nil {
		return err
	}
	return nil
}

func (v *Viewer) Shutdown() {
	v.cancel()
	v.src.Stop()
	v.app.Stop()
}

func (v *Viewer) buildDecoded() *tview.TextView {
	tv := tview.NewTextView().SetScrollable(true)
	tv.SetBorder(true).SetTitle(" decoded ")
	v.decodedText = tv
	return tv
}

func (v *Viewer) buildRaw() *tview.TextView {
	tv := tview.NewTextView().SetScrollable(true)
	tv.SetBorder(true).SetTitle(" raw ")
	v.rawText = tv
	return tv
}

func (v *Viewer) updateStatus() {
	status := "[red]idle[white]"
	if v.src.Connected() {
		status = "[green]receiving[white]"
	}
	versions := strings.Join(v.store.Versions(), ", ")
	if versions == "" {
		versions = "none"
	}
	v.statusText.SetText(fmt.Sprintf("Status: %s | Messages: %d | Dictionaries: %s",
		status, v.messages, versions))
}

func (v *Viewer) refreshLoop() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-v.ctx.Done():
			return
		case <-ticker.C:
			lines, err := v.src.Read()
			if err != nil {
				log.Warn("failed to read from source", zap.Error(err))
				continue
			}
			v.app.QueueUpdateDraw(func() {
				v.mu.Lock()
				defer v.mu.Unlock()
				for _, line := range lines {
					// SOH would garble the terminal, show it as a pipe
					fmt.Fprintln(v.rawText, strings.ReplaceAll(line, decoder.DelimiterSOH, decoder.DelimiterPipe))

					out := decoder.DecodeLine(line, v.store)
					if len(out) == 0 {
						continue
					}
					for _, l := range out {
						fmt.Fprintln(v.decodedText, l)
					}
					fmt.Fprintln(v.decodedText, separator)
					v.messages++
				}
				v.updateStatus()
			})
		}
	}
}
