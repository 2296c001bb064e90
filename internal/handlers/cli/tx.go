package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vito-labs/vito/internal/txpool"

	"github.com/urfave/cli/v3"
)

// transactionCommand returns a CLI command that fetches transactions from the
// SafeTxPool contract. With --hash it fetches that single transaction; without
// it, it lists every pending transaction for the Safe, sorted by nonce.
//
// Usage examples:
//
//	vito tx --safe 0xABC123...
//	vito tx --safe 0xABC123... --hash 0xDEF456... --rpc https://rpc.example.org
func transactionCommand(build ServiceBuilder) *cli.Command {
	return &cli.Command{
		Name:        "tx",
		Description: "Fetch a pool transaction by hash, or list all pending transactions for a Safe.",
		Usage:       "Queries the SafeTxPool contract and prints the result as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "safe",
				Usage:    "Safe wallet address the transactions belong to",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "rpc",
				Usage: "JSON-RPC endpoint of an Ethereum-compatible node",
			},
			&cli.StringFlag{
				Name:  "hash",
				Usage: "Transaction hash to fetch; omit to list all pending transactions",
			},
			&cli.StringFlag{
				Name:  "pool",
				Usage: "Custom SafeTxPool contract address, overriding the network default",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := build(c.String("rpc"), c.String("pool"))
			if err != nil {
				return err
			}

			var (
				safe   = c.String("safe")
				txHash = c.String("hash")
			)

			if txHash != "" {
				tx, err := svc.GetTransaction(ctx, safe, txHash)
				if err != nil {
					return err
				}

				return printJSON(c, tx)
			}

			transactions, _, err := svc.ListPendingTransactions(ctx, safe)
			if err != nil {
				return err
			}
			if transactions == nil {
				transactions = []txpool.Transaction{}
			}

			return printJSON(c, transactions)
		},
	}
}

// signedCommand returns a CLI command that reports whether a signer has
// already signed a pool transaction.
//
// Usage example:
//
//	vito signed --safe 0xABC123... --hash 0xDEF456... --signer 0x789ABC...
func signedCommand(build ServiceBuilder) *cli.Command {
	return &cli.Command{
		Name:        "signed",
		Description: "Check whether a signer has already signed a pool transaction.",
		Usage:       "Queries hasSignedTx on the SafeTxPool contract and prints the result as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "safe",
				Usage:    "Safe wallet address the transaction belongs to",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "hash",
				Usage:    "Transaction hash to check",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "signer",
				Usage:    "Signer address to check",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "rpc",
				Usage: "JSON-RPC endpoint of an Ethereum-compatible node",
			},
			&cli.StringFlag{
				Name:  "pool",
				Usage: "Custom SafeTxPool contract address, overriding the network default",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := build(c.String("rpc"), c.String("pool"))
			if err != nil {
				return err
			}

			signed, err := svc.HasSigned(ctx, c.String("safe"), c.String("hash"), c.String("signer"))
			if err != nil {
				return err
			}

			return printJSON(c, map[string]any{
				"hash":   c.String("hash"),
				"signer": c.String("signer"),
				"signed": signed,
			})
		},
	}
}

// printJSON renders v as indented JSON on the command's writer.
func printJSON(c *cli.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.Root().Writer, string(out))
	return err
}
