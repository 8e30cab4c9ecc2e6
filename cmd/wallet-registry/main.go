// wallet-registry is an interactive CLI over the wallet registry manager:
// it prompts for a chain and a desired wallet count, generates any
// shortfall and prints a per-wallet balance report.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"wallet-registry/internal/apperr"
	"wallet-registry/internal/chain"
	"wallet-registry/internal/common"
	"wallet-registry/internal/config"
	"wallet-registry/internal/manager"
	"wallet-registry/internal/model"
	"wallet-registry/internal/store"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		// All failures exit the same way; only the message differs.
		switch apperr.CodeOf(err) {
		case apperr.CodeValidation, apperr.CodeConfiguration:
			fmt.Fprintf(os.Stderr, "input error: %v\n", err)
		case apperr.CodeConnectivity:
			fmt.Fprintf(os.Stderr, "network connection error: %v\n", err)
		case apperr.CodeIO:
			fmt.Fprintf(os.Stderr, "wallet file error: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "unexpected error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := config.Init(); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively")
	}
	reader := bufio.NewReader(os.Stdin)

	token, err := prompt(reader, "Select chain (eth/sol): ")
	if err != nil {
		return err
	}
	selected, err := model.ParseChain(strings.ToLower(token))
	if err != nil {
		return apperr.Wrap(apperr.CodeConfiguration, "main", err)
	}

	ctx := context.Background()
	backend, err := chain.NewBackend(ctx, selected)
	if err != nil {
		return err
	}

	fileStore := store.NewFileStore(map[model.Chain]string{
		model.ChainEth: config.WalletFile(model.ChainEth),
		model.ChainSol: config.WalletFile(model.ChainSol),
	}, log)
	mgr := manager.New(backend, fileStore, log)

	answer, err := prompt(reader, fmt.Sprintf("Enter desired number of %s wallets: ",
		strings.ToUpper(selected.String())))
	if err != nil {
		return err
	}
	requested, err := strconv.Atoi(answer)
	if err != nil {
		return apperr.New(apperr.CodeValidation, "main",
			"wallet count must be a non-negative integer, got %q", answer)
	}

	wallets, err := mgr.EnsureCount(ctx, requested, selected)
	if err != nil {
		return err
	}

	fmt.Printf("\nUsing or created %d %s wallets:\n",
		len(wallets), strings.ToUpper(selected.String()))
	for i, wallet := range wallets {
		balance := mgr.Balance(ctx, wallet.Address, selected)
		fmt.Printf("Wallet %d:\n", i+1)
		fmt.Printf("  Address: %s\n", wallet.Address)
		fmt.Printf("  Balance: %s %s\n", common.FormatAmount(balance.Amount), balance.Unit)
	}
	return nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
