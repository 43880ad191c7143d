// Package inspect is a read-only terminal browser over a completed
// assembly's symbol table and IR dump: a tview.Application with a Flex
// panel layout and a global tcell key-capture handler that quits on 'q'
// or Ctrl-C. Trimmed to two panels — there is no running VM
// here, so register/memory/stack/breakpoint panels have nothing to
// display.
package inspect

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// View is the two-panel symbol/IR inspector.
type View struct {
	App         *tview.Application
	Layout      *tview.Flex
	SymbolsView *tview.TextView
	IRView      *tview.TextView
}

// New builds an inspector showing symbolText (the "NAME ADDRESS" dump, or
// the xref report) in the left panel and irText (the IR dump, empty when
// not requested) in the right panel.
func New(symbolText, irText string) *View {
	v := &View{App: tview.NewApplication()}

	v.SymbolsView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	v.SymbolsView.SetBorder(true).SetTitle(" Symbols ")
	v.SymbolsView.SetText(symbolText)

	v.IRView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	v.IRView.SetBorder(true).SetTitle(" IR ")
	v.IRView.SetText(irText)

	v.Layout = tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(v.SymbolsView, 0, 1, true).
		AddItem(v.IRView, 0, 1, false)

	v.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyCtrlC:
			v.App.Stop()
			return nil
		case event.Rune() == 'q':
			v.App.Stop()
			return nil
		}
		return event
	})

	return v
}

// Run shows the inspector and blocks until the user quits ('q' or Ctrl-C).
func (v *View) Run() error {
	return v.App.SetRoot(v.Layout, true).SetFocus(v.SymbolsView).Run()
}

// SetScreen overrides the tcell.Screen the application draws to, letting
// tests drive the view with a tcell.SimulationScreen instead of a real
// terminal.
func (v *View) SetScreen(screen tcell.Screen) {
	v.App.SetScreen(screen)
}
