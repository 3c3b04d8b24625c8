package commands

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
)

// Error is the class of command errors.
var Error = errs.Class("cryptounit")

// Output formats accepted by the output flag.
const (
	// OutputText writes one tab separated line per argument.
	OutputText = "text"
	// OutputJSON writes all results as a single line JSON array.
	OutputJSON = "json"
)

var jsonx = jsoniter.Config{
	EscapeHTML:  true,
	SortMapKeys: true,
}.Froze()

// Result is one converted argument.
type Result struct {
	Input   string `json:"input"`
	Raw     string `json:"raw,omitempty"`
	Decimal string `json:"decimal,omitempty"`
	Key     string `json:"key,omitempty"`
	Compact string `json:"compact,omitempty"`
}

func (r Result) fields() []string {
	fs := []string{r.Input}

	for _, f := range []string{r.Raw, r.Decimal, r.Key, r.Compact} {
		if f != "" {
			fs = append(fs, f)
		}
	}

	return fs
}

type printer struct {
	v *viper.Viper
}

func (p *printer) print(w io.Writer, rs []Result) (err error) {
	defer Error.WrapP(&err)

	switch output := p.v.GetString("output"); output {
	case OutputText:
		for _, r := range rs {
			_, err = fmt.Fprintln(w, strings.Join(r.fields(), "\t"))
			if err != nil {
				return err
			}
		}
	case OutputJSON:
		data, err := jsonx.Marshal(rs)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(data))
		if err != nil {
			return err
		}
	default:
		return Error.New("unknown output format: %q", output)
	}

	return nil
}

// run converts every argument with fn and prints the results.
func (p *printer) run(fn func(arg string) (Result, error)) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		rs := make([]Result, 0, len(args))

		for _, arg := range args {
			r, err := fn(arg)
			if err != nil {
				return err
			}

			rs = append(rs, r)
		}

		return p.print(cmd.OutOrStdout(), rs)
	}
}

const rootLong = `Convert amounts between decimal literals, raw magnitudes and keys.

Negative arguments must follow "--", for example:

  cryptounit parse -- -1.234e-3`

// NewRootCmd returns the cryptounit command with all subcommands attached.
// The output flag may also be set with CRYPTOUNIT_OUTPUT.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CRYPTOUNIT")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "cryptounit",
		Short:         "Convert amounts between decimal literals, raw magnitudes and keys",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP(
		"output",
		"o",
		OutputText,
		"Output format: text or json")

	// Lookup can not fail for a flag defined above.
	_ = v.BindPFlag("output", cmd.PersistentFlags().Lookup("output"))

	p := &printer{v: v}

	cmd.AddCommand(
		NewParseCmd(p),
		NewFormatCmd(p),
		NewKeyCmd(p),
		NewUnkeyCmd(p),
		NewCompactCmd(p),
	)

	return cmd
}
