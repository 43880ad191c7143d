package inspect_test

import (
	"testing"

	"arm64asm/internal/inspect"
	"github.com/gdamore/tcell/v2"
)

func newTestView(t *testing.T, symbolText, irText string) (*inspect.View, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}

	v := inspect.New(symbolText, irText)
	v.SetScreen(screen)
	return v, screen
}

func TestNewPopulatesBothPanels(t *testing.T) {
	v, screen := newTestView(t, "start 0\n", "  RET\n")
	defer screen.Fini()

	if v.App == nil {
		t.Fatal("View.App not initialized")
	}
	if v.SymbolsView.GetText(true) != "start 0\n" {
		t.Errorf("SymbolsView text = %q, want %q", v.SymbolsView.GetText(true), "start 0\n")
	}
	if v.IRView.GetText(true) != "  RET\n" {
		t.Errorf("IRView text = %q, want %q", v.IRView.GetText(true), "  RET\n")
	}
}

func TestNewBuildsALayout(t *testing.T) {
	v, screen := newTestView(t, "", "")
	defer screen.Fini()

	if v.Layout == nil {
		t.Fatal("View.Layout not initialized")
	}
	if v.SymbolsView == nil || v.IRView == nil {
		t.Fatal("View panels not initialized")
	}
}
