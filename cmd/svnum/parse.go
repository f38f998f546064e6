package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/svlang/svnum"
)

var parseCommand = &cobra.Command{
	Use:   "parse <literal>...",
	Short: "parse literals and print them in every base",
	Long:  ``,
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		for _, lit := range args {
			v, err := svnum.Parse(lit)
			if err != nil {
				log.WithError(err).Errorf("cannot parse %q", lit)
				continue
			}
			log.Debugf("parsed %q", lit)
			fmt.Printf("%s\n", lit)
			fmt.Printf("  width:   %d\n", v.Width())
			fmt.Printf("  signed:  %v\n", v.IsSigned())
			fmt.Printf("  unknown: %v\n", v.HasUnknown())
			fmt.Printf("  binary:  %s\n", v.Text(svnum.Binary))
			fmt.Printf("  octal:   %s\n", v.Text(svnum.Octal))
			fmt.Printf("  decimal: %s\n", v.Text(svnum.Decimal))
			fmt.Printf("  hex:     %s\n", v.Text(svnum.Hex))
			fmt.Printf("  hash:    %#016x\n", v.Hash())
		}
	},
}
