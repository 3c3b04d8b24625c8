package commands

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/calebcase/cryptounit"
	"github.com/calebcase/cryptounit/compact"
)

// NewParseCmd returns a command that parses decimal literals into raw magnitudes.
func NewParseCmd(p *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <decimal>...",
		Short: "Convert decimal literals to raw magnitudes, decimal strings and keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: p.run(func(arg string) (r Result, err error) {
			u, err := cryptounit.FromDecimal(arg)
			if err != nil {
				return r, err
			}

			r = Result{
				Input:   arg,
				Raw:     u.String(),
				Decimal: u.DecimalString(),
			}

			// Negative and oversized amounts have no key.
			if key, err := u.Bytes(); err == nil {
				r.Key = hex.EncodeToString(key)
			}

			return r, nil
		}),
	}
}

// NewFormatCmd returns a command that formats raw magnitudes as decimal strings.
func NewFormatCmd(p *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "format <raw>...",
		Short: "Format raw magnitudes as decimal strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: p.run(func(arg string) (r Result, err error) {
			u, err := cryptounit.Parse(arg)
			if err != nil {
				return r, err
			}

			return Result{
				Input:   arg,
				Decimal: u.DecimalString(),
			}, nil
		}),
	}
}

// NewKeyCmd returns a command that encodes raw magnitudes as hex keys.
func NewKeyCmd(p *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "key <raw>...",
		Short: "Encode raw magnitudes as 8 byte hex keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: p.run(func(arg string) (r Result, err error) {
			u, err := cryptounit.Parse(arg)
			if err != nil {
				return r, err
			}

			key, err := u.Bytes()
			if err != nil {
				return r, err
			}

			return Result{
				Input: arg,
				Key:   hex.EncodeToString(key),
			}, nil
		}),
	}
}

// NewUnkeyCmd returns a command that decodes hex keys into raw magnitudes.
func NewUnkeyCmd(p *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "unkey <hex>...",
		Short: "Decode 8 byte hex keys to raw magnitudes",
		Args:  cobra.MinimumNArgs(1),
		RunE: p.run(func(arg string) (r Result, err error) {
			key, err := hex.DecodeString(arg)
			if err != nil {
				return r, Error.Wrap(err)
			}

			u, err := cryptounit.FromBytes(key)
			if err != nil {
				return r, err
			}

			return Result{
				Input:   arg,
				Raw:     u.String(),
				Decimal: u.DecimalString(),
			}, nil
		}),
	}
}

// NewCompactCmd returns a command that encodes raw magnitudes with the compact encoding.
func NewCompactCmd(p *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "compact <raw>...",
		Short: "Encode raw magnitudes with the signed compact encoding",
		Args:  cobra.MinimumNArgs(1),
		RunE: p.run(func(arg string) (r Result, err error) {
			u, err := cryptounit.Parse(arg)
			if err != nil {
				return r, err
			}

			return Result{
				Input:   arg,
				Compact: hex.EncodeToString(compact.Encode(u)),
			}, nil
		}),
	}
}
