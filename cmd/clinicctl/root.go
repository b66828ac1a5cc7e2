package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/internal/config"
	"github.com/spf13/cobra"
)

func newRootCmd(load func() (config.Config, error), out, errOut io.Writer) *cobra.Command {
	var (
		a     *app
		trace bool
	)

	root := &cobra.Command{
		Use:           "clinicctl",
		Short:         "Patient client for the ITM infertility clinic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			a, err = newApp(cmd.Context(), cfg, appOptions{
				out:    out,
				errOut: errOut,
				page:   "/" + strings.Join(strings.Fields(cmd.CommandPath())[1:], "/"),
				trace:  trace,
				colour: colourOutput(errOut),
			})
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a != nil {
				a.close()
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVar(&trace, "trace", false, "print every HTTP exchange")

	get := func() *app { return a }
	root.AddCommand(
		newLoginCmd(get),
		newRegisterCmd(get),
		newLogoutCmd(get),
		newWhoamiCmd(get),
		newAppointmentsCmd(get),
		newDoctorsCmd(get),
		newCyclesCmd(get),
		newNotificationsCmd(get),
		newHistoryCmd(get),
	)
	return root
}

// printError shows what the failure toast did not: field errors and
// failures that never reached the API.
func printError(w io.Writer, err error) {
	if fields := client.FieldErrors(err); len(fields) > 0 {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %s\n", name, fields[name])
		}
		return
	}
	if _, ok := client.AsError(err); ok {
		return
	}
	fmt.Fprintf(w, "Lỗi: %s\n", err)
}
