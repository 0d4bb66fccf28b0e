package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"powledger/ledger"
)

func shortHash(hash string) string {
	if len(hash) <= 16 {
		return hash
	}
	return hash[:16] + "..."
}

func blockBox(b ledger.Block) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1)
	when := time.Unix(b.Timestamp, 0).Format(time.RFC3339)
	content := pterm.Sprintf("Timestamp: %s\nData: %s\nPrev: %s\nNonce: %d\nHash: %s",
		when, b.Data, shortHash(b.PrevHash), b.Nonce, shortHash(b.Hash))
	title := "Block " + strconv.Itoa(b.Index)
	if b.Index == 0 {
		title = "Genesis"
	}
	return pbox.WithTitle(pterm.LightCyan(title)).WithTitleTopLeft().Sprint(content)
}

func renderChain(blocks []ledger.Block) {
	var panels [][]pterm.Panel
	for _, b := range blocks {
		panels = append(panels, []pterm.Panel{{Data: blockBox(b)}})
	}
	pterm.DefaultPanel.WithPanels(panels).Render()
}

func renderSealedBlock(b ledger.Block) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	content := pterm.Sprintf("Index: %d\nNonce: %d\nHash: %s\nLinked to: %s",
		b.Index, b.Nonce, b.Hash, shortHash(b.PrevHash))
	pterm.Println(pbox.WithTitle(pterm.LightGreen("|SEALED|")).WithTitleTopCenter().Sprint(content))
}

func renderVerdict(v ledger.Verdict) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	if v.Valid {
		pterm.Println(pbox.WithTitle(pterm.LightGreen("|CHAIN VALID|")).WithTitleTopCenter().
			Sprint("Every block seals its contents and links to its predecessor."))
		return
	}
	reason := "block data no longer matches its seal"
	if v.Reason == ledger.BrokenLink {
		reason = "block no longer links to its predecessor"
	}
	content := fmt.Sprintf("First corruption at block %d:\n%s (%s)", v.Index, reason, v.Reason)
	pterm.Println(pbox.WithTitle(pterm.LightRed("|CHAIN CORRUPTED|")).WithTitleTopCenter().Sprint(content))
}
