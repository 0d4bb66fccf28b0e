package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"powledger/ledger"
)

const (
	menuAppend   = "Append a block"
	menuValidate = "Validate the chain"
	menuShow     = "Show the chain"
	menuTamper   = "Tamper with a block"
	menuQuit     = "Quit"
)

func main() {
	difficulty := flag.Int("difficulty", 4, "required number of leading zero hex digits per block hash")
	maxIterations := flag.Uint64("max-iterations", 0, "abort mining after this many attempts (0 = unbounded)")
	flag.Parse()

	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Po", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("W ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("L", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("edger", pterm.FgDarkGray.ToStyle()),
	).Render()

	spinner, _ := pterm.DefaultSpinner.Start("Mining the genesis block...")
	bc, err := ledger.NewBlockchain(ctx, *difficulty, capOption(*maxIterations)...)
	if err != nil {
		spinner.Fail()
		logger.Error("could not create the blockchain", "error", err.Error())
		os.Exit(1)
	}
	spinner.Success()

	genesis, _ := bc.Latest()
	pterm.Info.Printfln("Genesis sealed with nonce %d, hash %s", genesis.Nonce, shortHash(genesis.Hash))
	pterm.Println()

	for {
		if ctx.Err() != nil {
			pterm.Warning.Println("Interrupted.")
			return
		}
		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions([]string{menuAppend, menuValidate, menuShow, menuTamper, menuQuit}).
			Show("What next?")
		if err != nil {
			logger.Error("menu failed", "error", err.Error())
			return
		}

		switch choice {
		case menuAppend:
			appendBlock(ctx, bc, *maxIterations, logger)
		case menuValidate:
			renderVerdict(bc.Validate())
		case menuShow:
			renderChain(bc.Blocks())
		case menuTamper:
			tamperBlock(bc, logger)
		case menuQuit:
			return
		}
		pterm.Println()
	}
}

// capOption turns the flag value into mining options, empty when the
// search is unbounded.
func capOption(maxIterations uint64) []ledger.MineOption {
	if maxIterations == 0 {
		return nil
	}
	return []ledger.MineOption{ledger.WithMaxIterations(maxIterations)}
}

// appendBlock reads a payload, mines it onto the chain while streaming
// nonce progress into a spinner, and prints the sealed block.
func appendBlock(ctx context.Context, bc *ledger.Blockchain, maxIterations uint64, logger *slog.Logger) {
	payload, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Block payload").
		Show()
	pterm.Println()

	progress := make(chan ledger.Progress, 1)
	spinner, _ := pterm.DefaultSpinner.Start("Mining...")
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range progress {
			spinner.UpdateText(fmt.Sprintf("Mining... nonce %d, last candidate %s", p.Nonce, shortHash(p.Hash)))
		}
	}()

	opts := append(capOption(maxIterations), ledger.WithProgress(progress))
	block, err := bc.Append(ctx, payload, opts...)
	close(progress)
	<-done

	if err != nil {
		spinner.Fail()
		switch {
		case errors.Is(err, ledger.ErrMiningExhausted):
			logger.Error("mining gave up before finding a valid nonce", "cap", maxIterations)
		case errors.Is(err, context.Canceled):
			logger.Warn("mining cancelled")
		default:
			logger.Error("append failed", "error", err.Error())
		}
		return
	}
	spinner.Success()
	renderSealedBlock(block)
}

// tamperBlock overwrites the payload of a chosen block in place. The
// ledger will happily do it; the point is what Validate says afterwards.
func tamperBlock(bc *ledger.Blockchain, logger *slog.Logger) {
	indices := make([]string, bc.Len())
	for i := range indices {
		indices[i] = strconv.Itoa(i)
	}
	chosen, err := pterm.DefaultInteractiveSelect.
		WithOptions(indices).
		Show("Which block?")
	if err != nil {
		logger.Error("selection failed", "error", err.Error())
		return
	}
	index, _ := strconv.Atoi(chosen)

	data, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Replacement payload").
		Show()
	pterm.Println()

	if err := bc.SetBlockData(index, data); err != nil {
		logger.Error("could not overwrite block data", "error", err.Error())
		return
	}
	pterm.Warning.Printfln("Block %d rewritten in place. The chain is now detectably corrupted.", index)
}
