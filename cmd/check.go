package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pillaihoc/phoccy/internal/intent"
	"github.com/pillaihoc/phoccy/internal/kb"
	"github.com/pillaihoc/phoccy/internal/resolver"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config, knowledge base and intent catalog",
	Long:  `Loads the configuration, knowledge base and custom intents, and verifies that every intent in the catalog either has a knowledge-base answer or will be served by the fallback chain.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)

		k, err := kb.Load(cfg.KBPath)
		exitOnError(err)

		catalog := intent.DefaultCatalog()
		extras, err := intent.LoadDir(cfg.IntentsDir)
		exitOnError(err)
		catalog = intent.Merge(catalog, extras)

		res := resolver.New(k)

		inCatalog := make(map[string]bool, len(catalog))
		var unresolvable []string
		for _, in := range catalog {
			inCatalog[in.Name] = true
			for _, trigger := range in.Triggers {
				if trigger != strings.ToLower(trigger) {
					exitOnError(fmt.Errorf("intent %q has a non-lowercase trigger %q", in.Name, trigger))
				}
			}
			if !res.Known(in.Name) {
				unresolvable = append(unresolvable, in.Name)
			}
		}

		names := res.Names()
		sort.Strings(names)
		for _, name := range names {
			if !inCatalog[name] {
				exitOnError(fmt.Errorf("resolver knows %q but no catalog intent triggers it", name))
			}
		}

		fmt.Printf("Config:         %s (port %d)\n", cfgFile, cfg.Port)
		fmt.Printf("Knowledge base: %s\n", cfg.KBPath)
		fmt.Printf("Intents:        %d in catalog (%d custom)\n", len(catalog), len(extras))
		if len(unresolvable) > 0 {
			fmt.Printf("Fallback-only:  %s\n", strings.Join(unresolvable, ", "))
			fmt.Fprintln(os.Stderr, "Note: these intents have no knowledge-base answer; unmatched queries for them go to the generative fallback.")
		}
		fmt.Println("OK")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
